package rules

import (
	"github.com/yamllint-go/yamllint/internal/config"
)

const commasID = "commas"

func init() {
	Register(commasID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, commasID)
		return commasRule{
			maxSpacesBefore: optInt(opts, "max-spaces-before", 0),
			minSpacesAfter:  optInt(opts, "min-spaces-after", 1),
			maxSpacesAfter:  optInt(opts, "max-spaces-after", 1),
		}, true
	})
	config.RegisterSchema(commasID, config.Schema{
		"max-spaces-before": {Kind: config.OptInt},
		"min-spaces-after":  {Kind: config.OptInt},
		"max-spaces-after":  {Kind: config.OptInt},
	})
}

type commasRule struct {
	maxSpacesBefore int
	minSpacesAfter  int
	maxSpacesAfter  int
}

func (commasRule) ID() string { return commasID }

// Check scans raw line text for commas inside flow collections, tracked by
// bracket-nesting depth rather than walking the node tree, since a comma's
// exact column is what matters and yaml.Node exposes no token-level spans.
func (r commasRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	inFlow := false
	depth := 0
	for i := 1; i <= doc.LineCount(); i++ {
		line := doc.Line(i)
		inSingle, inDouble := false, false
		for j := 0; j < len(line); j++ {
			c := line[j]
			switch {
			case c == '\'' && !inDouble:
				inSingle = !inSingle
			case c == '"' && !inSingle:
				inDouble = !inDouble
			case inSingle || inDouble:
				continue
			case c == '[' || c == '{':
				depth++
				inFlow = depth > 0
			case c == ']' || c == '}':
				depth--
				inFlow = depth > 0
			case c == ',' && inFlow:
				before := 0
				for p := j - 1; p >= 0 && line[p] == ' '; p-- {
					before++
				}
				if before > r.maxSpacesBefore {
					out = append(out, Problem{Line: i, Column: byteColToRuneCol(line, j-before), Message: "too many spaces before comma"})
				}
				after := 0
				for p := j + 1; p < len(line) && line[p] == ' '; p++ {
					after++
				}
				isLineEnd := j+1+after >= len(line)
				if !isLineEnd {
					if after < r.minSpacesAfter {
						out = append(out, Problem{Line: i, Column: byteColToRuneCol(line, j+1), Message: "too few spaces after comma"})
					} else if after > r.maxSpacesAfter {
						out = append(out, Problem{Line: i, Column: byteColToRuneCol(line, j+1), Message: "too many spaces after comma"})
					}
				}
			}
		}
	}
	return out
}
