package rules

import (
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/yamllint-go/yamllint/internal/config"
)

const floatValuesID = "float-values"

var (
	scientificFloatRe  = regexp.MustCompile(`(?i)^[-+]?(\d+\.?\d*|\.\d+)e[-+]?\d+$`)
	noNumeralBeforeDot = regexp.MustCompile(`^[-+]?\.\d+$`)
	infRe              = regexp.MustCompile(`(?i)^[-+]?\.inf$`)
	nanRe              = regexp.MustCompile(`(?i)^\.nan$`)
)

func init() {
	Register(floatValuesID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, floatValuesID)
		return floatValuesRule{
			forbidInf:               optBool(opts, "forbid-inf", false),
			forbidNan:               optBool(opts, "forbid-nan", false),
			forbidScientific:        optBool(opts, "forbid-scientific-notation", false),
			requireNumeralBeforeDot: optBool(opts, "require-numeral-before-decimal", false),
		}, true
	})
	config.RegisterSchema(floatValuesID, config.Schema{
		"forbid-inf":                     {Kind: config.OptBool},
		"forbid-nan":                     {Kind: config.OptBool},
		"forbid-scientific-notation":     {Kind: config.OptBool},
		"require-numeral-before-decimal": {Kind: config.OptBool},
	})
}

type floatValuesRule struct {
	forbidInf               bool
	forbidNan               bool
	forbidScientific        bool
	requireNumeralBeforeDot bool
}

func (floatValuesRule) ID() string { return floatValuesID }

func (r floatValuesRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	walkDocument(doc, nodeVisitor{
		OnScalar: func(node *yaml.Node, parent *yaml.Node, isKey bool, depth int) {
			if !isPlainScalar(node) {
				return
			}
			v := node.Value
			if r.forbidInf && infRe.MatchString(v) {
				out = append(out, Problem{Line: node.Line, Column: node.Column, Message: "forbidden value \"" + v + "\""})
				return
			}
			if r.forbidNan && nanRe.MatchString(v) {
				out = append(out, Problem{Line: node.Line, Column: node.Column, Message: "forbidden value \"" + v + "\""})
				return
			}
			if r.forbidScientific && scientificFloatRe.MatchString(v) {
				out = append(out, Problem{Line: node.Line, Column: node.Column, Message: "forbidden scientific notation \"" + v + "\""})
				return
			}
			if r.requireNumeralBeforeDot && noNumeralBeforeDot.MatchString(v) {
				out = append(out, Problem{Line: node.Line, Column: node.Column, Message: "forbidden decimal missing 0 prefix \"" + v + "\""})
			}
		},
	})
	return out
}
