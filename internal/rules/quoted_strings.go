package rules

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yamllint-go/yamllint/internal/config"
)

const quotedStringsID = "quoted-strings"

func init() {
	Register(quotedStringsID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, quotedStringsID)
		return quotedStringsRule{
			quoteType:         optString(opts, "quote-type", "any"),
			required:          optString(opts, "required", "true"),
			extraRequired:     optStringSlice(opts, "extra-required", nil),
			extraAllowed:      optStringSlice(opts, "extra-allowed", nil),
			allowQuotedQuotes: optBool(opts, "allow-quoted-quotes", false),
		}, true
	})
	config.RegisterSchema(quotedStringsID, config.Schema{
		"quote-type":          {Kind: config.OptEnum, Enum: []string{"any", "single", "double"}},
		"required":            {Kind: config.OptString},
		"extra-required":      {Kind: config.OptSeqString},
		"extra-allowed":       {Kind: config.OptSeqString},
		"allow-quoted-quotes": {Kind: config.OptBool},
	})
}

type quotedStringsRule struct {
	quoteType         string
	required          string // "true", "false", "only-when-needed"
	extraRequired     []string
	extraAllowed      []string
	allowQuotedQuotes bool
}

func (quotedStringsRule) ID() string { return quotedStringsID }

func (r quotedStringsRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	walkDocument(doc, nodeVisitor{
		OnScalar: func(node *yaml.Node, parent *yaml.Node, isKey bool, depth int) {
			if isKey {
				return
			}
			quoted := node.Style == yaml.SingleQuotedStyle || node.Style == yaml.DoubleQuotedStyle

			for _, pat := range r.extraRequired {
				if matchSimplePattern(pat, node.Value) && !quoted {
					out = append(out, Problem{Line: node.Line, Column: node.Column, Message: "string value is not quoted"})
					return
				}
			}

			switch r.required {
			case "true":
				if !quoted {
					out = append(out, Problem{Line: node.Line, Column: node.Column, Message: "string value is not quoted"})
					return
				}
			case "only-when-needed":
				if quoted && !needsQuoting(node.Value) && !matchAny(r.extraRequired, node.Value) {
					out = append(out, Problem{Line: node.Line, Column: node.Column, Message: "string value is redundantly quoted"})
					return
				}
			case "false":
				if quoted && !matchAny(r.extraAllowed, node.Value) && !matchAny(r.extraRequired, node.Value) {
					out = append(out, Problem{Line: node.Line, Column: node.Column, Message: "string value is unnecessarily quoted"})
					return
				}
			}

			if quoted && r.quoteType != "any" {
				wantSingle := r.quoteType == "single"
				isSingle := node.Style == yaml.SingleQuotedStyle
				if wantSingle != isSingle {
					out = append(out, Problem{Line: node.Line, Column: node.Column, Message: "string value is not quoted with " + r.quoteType + " quotes"})
				}
			}
		},
	})
	return out
}

func matchAny(patterns []string, value string) bool {
	for _, p := range patterns {
		if matchSimplePattern(p, value) {
			return true
		}
	}
	return false
}

// matchSimplePattern treats pat as a regular expression, the same
// extra-required/extra-allowed contract the reference tool documents.
func matchSimplePattern(pat, value string) bool {
	ok, err := regexp.MatchString(pat, value)
	return err == nil && ok
}

// needsQuoting reports whether value would be re-interpreted as a
// non-string YAML scalar (bool, null, number, truthy token) if left
// unquoted, which is the "only-when-needed" policy's test.
func needsQuoting(value string) bool {
	if value == "" {
		return true
	}
	if isTruthyToken(value) {
		return true
	}
	switch strings.ToLower(value) {
	case "null", "~":
		return true
	}
	if implicitOctalRe.MatchString(value) || explicitOctalRe.MatchString(value) {
		return true
	}
	if scientificFloatRe.MatchString(value) || noNumeralBeforeDot.MatchString(value) || infRe.MatchString(value) || nanRe.MatchString(value) {
		return true
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			goto notPlainInt
		}
	}
	return true
notPlainInt:
	return false
}
