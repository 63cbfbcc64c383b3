package rules

import (
	"gopkg.in/yaml.v3"

	"github.com/yamllint-go/yamllint/internal/config"
)

const keyDuplicatesID = "key-duplicates"

func init() {
	Register(keyDuplicatesID, func(cfg *config.LintConfig) (Rule, bool) {
		return keyDuplicatesRule{}, true
	})
}

type keyDuplicatesRule struct{}

func (keyDuplicatesRule) ID() string { return keyDuplicatesID }

func (keyDuplicatesRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	walkDocument(doc, nodeVisitor{
		OnMappingStart: func(node *yaml.Node, parent *yaml.Node, depth int) {
			seen := map[string]bool{}
			for i := 0; i+1 < len(node.Content); i += 2 {
				keyNode := node.Content[i]
				if keyNode.Kind != yaml.ScalarNode {
					continue
				}
				if seen[keyNode.Value] {
					out = append(out, Problem{
						Line:    keyNode.Line,
						Column:  keyNode.Column,
						Message: "duplication of key \"" + keyNode.Value + "\" in mapping",
					})
					continue
				}
				seen[keyNode.Value] = true
			}
		},
	})
	return out
}
