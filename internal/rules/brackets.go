package rules

import (
	"github.com/yamllint-go/yamllint/internal/config"
)

const bracketsID = "brackets"
const bracesID = "braces"

func init() {
	Register(bracketsID, func(cfg *config.LintConfig) (Rule, bool) {
		return newFlowSpacingRule(bracketsID, resolveOptions(cfg, bracketsID), '[', ']', "brackets"), true
	})
	config.RegisterSchema(bracketsID, flowSpacingSchema())

	Register(bracesID, func(cfg *config.LintConfig) (Rule, bool) {
		return newFlowSpacingRule(bracesID, resolveOptions(cfg, bracesID), '{', '}', "braces"), true
	})
	config.RegisterSchema(bracesID, flowSpacingSchema())
}

func flowSpacingSchema() config.Schema {
	return config.Schema{
		"forbid":                  {Kind: config.OptEnum, Enum: []string{"false", "true", "non-empty"}},
		"min-spaces-inside":       {Kind: config.OptInt},
		"max-spaces-inside":       {Kind: config.OptInt},
		"min-spaces-inside-empty": {Kind: config.OptInt},
		"max-spaces-inside-empty": {Kind: config.OptInt},
	}
}

// flowSpacingRule implements the shared brackets/braces contract: both rules
// check each opening and closing delimiter on a raw-text scan, one line at a
// time and without pairing them, and enforce the same forbid/spacing policy,
// differing only in which characters and noun they use.
type flowSpacingRule struct {
	id    string
	noun  string
	open  byte
	close byte

	forbid string

	minInside      int
	maxInside      int
	minInsideEmpty int
	maxInsideEmpty int
}

func newFlowSpacingRule(id string, opts map[string]interface{}, open, close byte, noun string) flowSpacingRule {
	minInside := optInt(opts, "min-spaces-inside", 0)
	maxInside := optInt(opts, "max-spaces-inside", 0)
	minEmpty := optInt(opts, "min-spaces-inside-empty", -1)
	maxEmpty := optInt(opts, "max-spaces-inside-empty", -1)
	if minEmpty < 0 {
		minEmpty = minInside
	}
	if maxEmpty < 0 {
		maxEmpty = maxInside
	}
	return flowSpacingRule{
		id:             id,
		noun:           noun,
		open:           open,
		close:          close,
		forbid:         optString(opts, "forbid", "false"),
		minInside:      minInside,
		maxInside:      maxInside,
		minInsideEmpty: minEmpty,
		maxInsideEmpty: maxEmpty,
	}
}

func (r flowSpacingRule) ID() string { return r.id }

func (r flowSpacingRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
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
			case c == r.open:
				out = append(out, r.checkOpen(i, line, j)...)
			case c == r.close:
				out = append(out, r.checkClose(i, line, j)...)
			}
		}
	}
	return out
}

func (r flowSpacingRule) isEmptyAt(line string, openIdx int) bool {
	p := openIdx + 1
	for p < len(line) && (line[p] == ' ' || line[p] == '\t') {
		p++
	}
	return p < len(line) && line[p] == r.close
}

func (r flowSpacingRule) checkOpen(lineNo int, line string, idx int) []Problem {
	empty := r.isEmptyAt(line, idx)
	if r.forbid == "true" || (r.forbid == "non-empty" && !empty) {
		return []Problem{{Line: lineNo, Column: byteColToRuneCol(line, idx), Message: "forbidden " + r.noun}}
	}
	after := 0
	for p := idx + 1; p < len(line) && line[p] == ' '; p++ {
		after++
	}
	if idx+1+after >= len(line) {
		return nil
	}
	min, max := r.minInside, r.maxInside
	if empty {
		min, max = r.minInsideEmpty, r.maxInsideEmpty
	}
	if after < min {
		return []Problem{{Line: lineNo, Column: byteColToRuneCol(line, idx+1), Message: "too few spaces inside " + emptySuffix(empty) + r.noun}}
	}
	if after > max {
		return []Problem{{Line: lineNo, Column: byteColToRuneCol(line, idx+1), Message: "too many spaces inside " + emptySuffix(empty) + r.noun}}
	}
	return nil
}

func (r flowSpacingRule) checkClose(lineNo int, line string, idx int) []Problem {
	if r.forbid == "true" {
		return nil // already reported at the matching open
	}
	before := 0
	for p := idx - 1; p >= 0 && line[p] == ' '; p-- {
		before++
	}
	start := idx - before
	if start == 0 || line[start-1] == r.open {
		return nil
	}
	empty := start > 0 && line[start-1] == r.open
	min, max := r.minInside, r.maxInside
	if empty {
		min, max = r.minInsideEmpty, r.maxInsideEmpty
	}
	if before < min {
		return []Problem{{Line: lineNo, Column: byteColToRuneCol(line, idx), Message: "too few spaces inside " + emptySuffix(empty) + r.noun}}
	}
	if before > max {
		return []Problem{{Line: lineNo, Column: byteColToRuneCol(line, start), Message: "too many spaces inside " + emptySuffix(empty) + r.noun}}
	}
	return nil
}

func emptySuffix(empty bool) string {
	if empty {
		return "empty "
	}
	return ""
}
