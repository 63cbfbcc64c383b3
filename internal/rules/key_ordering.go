package rules

import (
	"gopkg.in/yaml.v3"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yamllint-go/yamllint/internal/config"
)

const keyOrderingID = "key-ordering"

func init() {
	Register(keyOrderingID, func(cfg *config.LintConfig) (Rule, bool) {
		return keyOrderingRule{locale: cfg.Locale}, true
	})
}

type keyOrderingRule struct{ locale string }

func (keyOrderingRule) ID() string { return keyOrderingID }

func (r keyOrderingRule) Check(doc *Document, level config.RuleLevel) []Problem {
	cmp := keyComparer(r.locale)
	var out []Problem
	walkDocument(doc, nodeVisitor{
		OnMappingStart: func(node *yaml.Node, parent *yaml.Node, depth int) {
			var prevKey string
			havePrev := false
			for i := 0; i+1 < len(node.Content); i += 2 {
				keyNode := node.Content[i]
				if keyNode.Kind != yaml.ScalarNode {
					havePrev = false
					continue
				}
				if havePrev && cmp(keyNode.Value, prevKey) < 0 {
					out = append(out, Problem{
						Line:    keyNode.Line,
						Column:  keyNode.Column,
						Message: "wrong ordering of key \"" + keyNode.Value + "\" in mapping",
					})
				}
				prevKey = keyNode.Value
				havePrev = true
			}
		},
	})
	return out
}

// keyComparer returns a comparison function for mapping keys: a locale-
// aware collator when locale resolves to a known language tag, else a
// plain byte-order comparison.
func keyComparer(locale string) func(a, b string) int {
	if locale == "" {
		return byteCompare
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return byteCompare
	}
	col := collate.New(tag)
	return func(a, b string) int { return col.CompareString(a, b) }
}

func byteCompare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
