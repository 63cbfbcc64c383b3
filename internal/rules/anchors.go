package rules

import (
	"gopkg.in/yaml.v3"

	"github.com/yamllint-go/yamllint/internal/config"
)

const anchorsID = "anchors"

func init() {
	Register(anchorsID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, anchorsID)
		return anchorsRule{
			forbidUndeclaredAliases: optBool(opts, "forbid-undeclared-aliases", true),
			forbidDuplicatedAnchors: optBool(opts, "forbid-duplicated-anchors", false),
			forbidUnusedAnchors:     optBool(opts, "forbid-unused-anchors", false),
		}, true
	})
	config.RegisterSchema(anchorsID, config.Schema{
		"forbid-undeclared-aliases": {Kind: config.OptBool},
		"forbid-duplicated-anchors": {Kind: config.OptBool},
		"forbid-unused-anchors":     {Kind: config.OptBool},
	})
}

type anchorsRule struct {
	forbidUndeclaredAliases bool
	forbidDuplicatedAnchors bool
	forbidUnusedAnchors     bool
}

func (anchorsRule) ID() string { return anchorsID }

type anchorDecl struct {
	line, column int
	used         bool
}

func (r anchorsRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem

	for _, root := range doc.Docs {
		declared := map[string]*anchorDecl{}

		var visit func(node *yaml.Node)
		visit = func(node *yaml.Node) {
			if node == nil {
				return
			}
			if node.Anchor != "" {
				if existing, ok := declared[node.Anchor]; ok && r.forbidDuplicatedAnchors {
					out = append(out, Problem{
						Line:    node.Line,
						Column:  node.Column,
						Message: "duplicated anchor \"" + node.Anchor + "\"",
					})
					_ = existing
				}
				declared[node.Anchor] = &anchorDecl{line: node.Line, column: node.Column}
			}
			if node.Kind == yaml.AliasNode {
				name := node.Value
				if decl, ok := declared[name]; ok {
					decl.used = true
				} else if r.forbidUndeclaredAliases {
					out = append(out, Problem{
						Line:    node.Line,
						Column:  node.Column,
						Message: "found undeclared alias \"" + name + "\"",
					})
				}
				return
			}
			for _, c := range node.Content {
				visit(c)
			}
		}
		visit(root)

		if r.forbidUnusedAnchors {
			for name, decl := range declared {
				if !decl.used {
					out = append(out, Problem{
						Line:    decl.line,
						Column:  decl.column,
						Message: "found unused anchor \"" + name + "\"",
					})
				}
			}
		}
	}
	return out
}
