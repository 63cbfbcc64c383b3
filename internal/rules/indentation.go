package rules

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/yamllint-go/yamllint/internal/config"
)

const indentationID = "indentation"

func init() {
	Register(indentationID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, indentationID)
		return indentationRule{
			spaces:          optString(opts, "spaces", "consistent"),
			indentSequences: optString(opts, "indent-sequences", "true"),
			checkMultiLine:  optBool(opts, "check-multi-line-strings", false),
		}, true
	})
	config.RegisterSchema(indentationID, config.Schema{
		"spaces":                   {Kind: config.OptString},
		"indent-sequences":         {Kind: config.OptString},
		"check-multi-line-strings": {Kind: config.OptBool},
	})
}

type indentationRule struct {
	spaces          string // "consistent" or an integer literal
	indentSequences string // true/false/consistent/whatever
	checkMultiLine  bool
}

func (indentationRule) ID() string { return indentationID }

type indentFrame struct {
	isSequence bool
	indent     int
}

// stepTracker holds the step size used to check mapping-child and
// "true"-mode sequence-item indentation. For an explicit `spaces: N`
// config it is fixed up front; for `spaces: consistent` it starts
// unknown and is learned from the first indented child encountered,
// after which every further child is checked against that step.
type stepTracker struct {
	step    int
	learned bool
}

func (r indentationRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem

	tracker := &stepTracker{}
	if r.spaces != "consistent" {
		tracker.step = parseIntDefault(r.spaces, 2)
		tracker.learned = true
	}
	seqStyleKnown := map[int]bool{}
	seqStyleIndent := map[int]int{}

	for _, root := range doc.Docs {
		var walk func(node *yaml.Node, frame *indentFrame, depth int)
		walk = func(node *yaml.Node, frame *indentFrame, depth int) {
			if node == nil {
				return
			}
			switch node.Kind {
			case yaml.MappingNode:
				childFrame := &indentFrame{isSequence: false, indent: node.Column - 1}
				for i := 0; i+1 < len(node.Content); i += 2 {
					key := node.Content[i]
					val := node.Content[i+1]
					r.checkChild(key, frame, tracker, &out)
					walk(val, childFrame, depth+1)
				}
			case yaml.SequenceNode:
				childFrame := &indentFrame{isSequence: true, indent: node.Column - 1}
				for _, item := range node.Content {
					r.checkSequenceItem(doc, item, frame, depth, tracker, seqStyleKnown, seqStyleIndent, &out)
					walk(item, childFrame, depth+1)
				}
			default:
				return
			}
		}
		// The top-level node has no enclosing container, so its own keys
		// or items are never checked against a "parent indent + step"
		// expectation: pass a nil frame, which checkChild/
		// checkSequenceItem both treat as "nothing to check here".
		walk(root, nil, 0)
	}
	return out
}

func (r indentationRule) checkChild(key *yaml.Node, parent *indentFrame, tracker *stepTracker, out *[]Problem) {
	if parent == nil {
		return
	}
	got := key.Column - 1

	if !tracker.learned {
		if delta := got - parent.indent; delta > 0 {
			tracker.step = delta
			tracker.learned = true
			return
		}
		expected := parent.indent + stepOrDefault(0)
		*out = append(*out, Problem{Line: key.Line, Column: key.Column, Message: "wrong indentation: expected " + strconv.Itoa(expected) + " but found " + strconv.Itoa(got)})
		return
	}

	expected := parent.indent + tracker.step
	if got != expected {
		*out = append(*out, Problem{Line: key.Line, Column: key.Column, Message: "wrong indentation: expected " + strconv.Itoa(expected) + " but found " + strconv.Itoa(got)})
	}
}

// checkSequenceItem checks a block sequence item's indentation against
// the column of its leading "-", not the column of its content (a
// flush scalar "- item" has its content several columns to the right
// of the dash that actually carries the indentation).
func (r indentationRule) checkSequenceItem(doc *Document, item *yaml.Node, parent *indentFrame, depth int, tracker *stepTracker, known map[int]bool, established map[int]int, out *[]Problem) {
	if parent == nil {
		return
	}
	col := dashColumn(doc, item)
	got := col - 1

	switch r.indentSequences {
	case "false":
		if got != parent.indent {
			*out = append(*out, Problem{Line: item.Line, Column: col, Message: "wrong indentation: expected " + strconv.Itoa(parent.indent) + " but found " + strconv.Itoa(got)})
		}
	case "whatever":
		// both accepted
	case "consistent":
		if known[depth] {
			want := established[depth]
			if got != want {
				*out = append(*out, Problem{Line: item.Line, Column: col, Message: "wrong indentation: expected " + strconv.Itoa(want) + " but found " + strconv.Itoa(got)})
			}
			return
		}
		known[depth] = true
		established[depth] = got
	default: // "true"
		if !tracker.learned {
			if delta := got - parent.indent; delta > 0 {
				tracker.step = delta
				tracker.learned = true
				return
			}
			expected := parent.indent + stepOrDefault(0)
			*out = append(*out, Problem{Line: item.Line, Column: col, Message: "wrong indentation: expected " + strconv.Itoa(expected) + " but found " + strconv.Itoa(got)})
			return
		}
		expected := parent.indent + tracker.step
		if got != expected {
			*out = append(*out, Problem{Line: item.Line, Column: col, Message: "wrong indentation: expected " + strconv.Itoa(expected) + " but found " + strconv.Itoa(got)})
		}
	}
}

// dashColumn finds the rune column of the "-" that introduces a block
// sequence item, scanning back from the item's own content column.
// Falls back to the item's column if no dash is found on its line
// (flow-style entries, or positions this scan doesn't expect).
func dashColumn(doc *Document, item *yaml.Node) int {
	if item.Line < 1 || item.Line > doc.LineCount() {
		return item.Column
	}
	line := doc.Line(item.Line)
	idx := byteOffsetOfColumn(line, item.Column) - 1
	for idx >= 0 && line[idx] == ' ' {
		idx--
	}
	if idx < 0 || line[idx] != '-' {
		return item.Column
	}
	return byteColToRuneCol(line, idx)
}

func stepOrDefault(step int) int {
	if step == 0 {
		return 2
	}
	return step
}

func parseIntDefault(s string, def int) int {
	n := 0
	any := false
	for _, c := range s {
		if c < '0' || c > '9' {
			return def
		}
		any = true
		n = n*10 + int(c-'0')
	}
	if !any {
		return def
	}
	return n
}
