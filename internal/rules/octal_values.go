package rules

import (
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/yamllint-go/yamllint/internal/config"
)

const octalValuesID = "octal-values"

var (
	implicitOctalRe = regexp.MustCompile(`^[-+]?0[0-7]+$`)
	explicitOctalRe = regexp.MustCompile(`^[-+]?0o[0-7]+$`)
)

func init() {
	Register(octalValuesID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, octalValuesID)
		return octalValuesRule{
			forbidImplicit: optBool(opts, "forbid-implicit-octal", true),
			forbidExplicit: optBool(opts, "forbid-explicit-octal", true),
		}, true
	})
	config.RegisterSchema(octalValuesID, config.Schema{
		"forbid-implicit-octal": {Kind: config.OptBool},
		"forbid-explicit-octal": {Kind: config.OptBool},
	})
}

type octalValuesRule struct {
	forbidImplicit bool
	forbidExplicit bool
}

func (octalValuesRule) ID() string { return octalValuesID }

func (r octalValuesRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	walkDocument(doc, nodeVisitor{
		OnScalar: func(node *yaml.Node, parent *yaml.Node, isKey bool, depth int) {
			if !isPlainScalar(node) {
				return
			}
			if r.forbidImplicit && implicitOctalRe.MatchString(node.Value) {
				out = append(out, Problem{Line: node.Line, Column: node.Column, Message: "forbidden implicit octal value \"" + node.Value + "\""})
				return
			}
			if r.forbidExplicit && explicitOctalRe.MatchString(node.Value) {
				out = append(out, Problem{Line: node.Line, Column: node.Column, Message: "forbidden explicit octal value \"" + node.Value + "\""})
			}
		},
	})
	return out
}
