package rules

import (
	"gopkg.in/yaml.v3"

	"github.com/yamllint-go/yamllint/internal/config"
)

const colonsID = "colons"

func init() {
	Register(colonsID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, colonsID)
		return colonsRule{
			maxSpacesBefore: optInt(opts, "max-spaces-before", 0),
			maxSpacesAfter:  optInt(opts, "max-spaces-after", 1),
		}, true
	})
	config.RegisterSchema(colonsID, config.Schema{
		"max-spaces-before": {Kind: config.OptInt},
		"max-spaces-after":  {Kind: config.OptInt},
	})
}

type colonsRule struct {
	maxSpacesBefore int
	maxSpacesAfter  int
}

func (colonsRule) ID() string { return colonsID }

func (r colonsRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	walkDocument(doc, nodeVisitor{
		OnMappingStart: func(node *yaml.Node, parent *yaml.Node, depth int) {
			for i := 0; i+1 < len(node.Content); i += 2 {
				key := node.Content[i]
				out = append(out, r.checkKey(doc, key)...)
			}
		},
	})
	return out
}

func (r colonsRule) checkKey(doc *Document, key *yaml.Node) []Problem {
	if key.Line < 1 || key.Line > doc.LineCount() {
		return nil
	}
	line := doc.Line(key.Line)
	col := byteOffsetOfColumn(line, key.Column)
	keyEnd := col + len(key.Value)
	idx := findUnquotedColon(line, keyEnd)
	if idx < 0 {
		return nil
	}

	var out []Problem
	before := 0
	for p := idx - 1; p >= 0 && line[p] == ' '; p-- {
		before++
	}
	if before > r.maxSpacesBefore {
		out = append(out, Problem{Line: key.Line, Column: byteColToRuneCol(line, idx-before), Message: "too many spaces before colon"})
	}

	after := 0
	for p := idx + 1; p < len(line) && line[p] == ' '; p++ {
		after++
	}
	if after > r.maxSpacesAfter {
		out = append(out, Problem{Line: key.Line, Column: byteColToRuneCol(line, idx+1), Message: "too many spaces after colon"})
	}
	return out
}

// byteOffsetOfColumn converts a yaml.Node's 1-based rune column on line
// into a byte offset, the inverse of byteColToRuneCol.
func byteOffsetOfColumn(line string, runeCol int) int {
	n := 0
	for i := range line {
		if n == runeCol-1 {
			return i
		}
		n++
	}
	return len(line)
}

// findUnquotedColon returns the byte offset of the first ": " or
// line-ending ":" at or after start that is not inside a quoted scalar.
func findUnquotedColon(line string, start int) int {
	if start > len(line) {
		return -1
	}
	inSingle, inDouble := false, false
	for i := start; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case c == ':' && !inSingle && !inDouble:
			if i+1 == len(line) || line[i+1] == ' ' || line[i+1] == '\t' {
				return i
			}
		}
	}
	return -1
}
