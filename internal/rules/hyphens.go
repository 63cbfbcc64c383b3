package rules

import (
	"gopkg.in/yaml.v3"

	"github.com/yamllint-go/yamllint/internal/config"
)

const hyphensID = "hyphens"

func init() {
	Register(hyphensID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, hyphensID)
		return hyphensRule{maxSpacesAfter: optInt(opts, "max-spaces-after", 1)}, true
	})
	config.RegisterSchema(hyphensID, config.Schema{
		"max-spaces-after": {Kind: config.OptInt},
	})
}

type hyphensRule struct {
	maxSpacesAfter int
}

func (hyphensRule) ID() string { return hyphensID }

func (r hyphensRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	walkDocument(doc, nodeVisitor{
		OnSequenceStart: func(node *yaml.Node, parent *yaml.Node, depth int) {
			if node.Style == yaml.FlowStyle {
				return
			}
			for _, item := range node.Content {
				out = append(out, r.checkItem(doc, item)...)
			}
		},
	})
	return out
}

func (r hyphensRule) checkItem(doc *Document, item *yaml.Node) []Problem {
	if item.Line < 1 || item.Line > doc.LineCount() {
		return nil
	}
	line := doc.Line(item.Line)
	col := byteOffsetOfColumn(line, item.Column)
	idx := col - 1
	for idx >= 0 && line[idx] == ' ' {
		idx--
	}
	if idx < 0 || line[idx] != '-' {
		return nil
	}
	after := 0
	for p := idx + 1; p < col; p++ {
		if line[p] == ' ' {
			after++
		}
	}
	if after > r.maxSpacesAfter {
		return []Problem{{Line: item.Line, Column: byteColToRuneCol(line, idx+2), Message: "too many spaces after hyphen"}}
	}
	return nil
}
