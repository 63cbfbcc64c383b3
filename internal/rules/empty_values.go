package rules

import (
	"gopkg.in/yaml.v3"

	"github.com/yamllint-go/yamllint/internal/config"
)

const emptyValuesID = "empty-values"

func init() {
	Register(emptyValuesID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, emptyValuesID)
		return emptyValuesRule{
			forbidInBlockMappings: optBool(opts, "forbid-in-block-mappings", true),
			forbidInFlowMappings:  optBool(opts, "forbid-in-flow-mappings", true),
		}, true
	})
	config.RegisterSchema(emptyValuesID, config.Schema{
		"forbid-in-block-mappings": {Kind: config.OptBool},
		"forbid-in-flow-mappings":  {Kind: config.OptBool},
	})
}

type emptyValuesRule struct {
	forbidInBlockMappings bool
	forbidInFlowMappings  bool
}

func (emptyValuesRule) ID() string { return emptyValuesID }

func isEmptyScalar(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Style == 0 && node.Value == ""
}

func (r emptyValuesRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	walkDocument(doc, nodeVisitor{
		OnMappingStart: func(node *yaml.Node, parent *yaml.Node, depth int) {
			forbid := r.forbidInBlockMappings
			if node.Style == yaml.FlowStyle {
				forbid = r.forbidInFlowMappings
			}
			if !forbid {
				return
			}
			for i := 0; i+1 < len(node.Content); i += 2 {
				valNode := node.Content[i+1]
				if isEmptyScalar(valNode) {
					out = append(out, Problem{
						Line:    valNode.Line,
						Column:  valNode.Column,
						Message: "empty value in mapping",
					})
				}
			}
		},
	})
	return out
}
