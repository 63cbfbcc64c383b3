package rules

import (
	"strings"

	"github.com/yamllint-go/yamllint/internal/config"
	"github.com/yamllint-go/yamllint/internal/scanner"
)

const (
	documentStartID = "document-start"
	documentEndID   = "document-end"
)

func init() {
	Register(documentStartID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, documentStartID)
		return documentMarkerRule{id: documentStartID, present: optBool(opts, "present", true), marker: "---"}, true
	})
	Register(documentEndID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, documentEndID)
		return documentMarkerRule{id: documentEndID, present: optBool(opts, "present", true), marker: "..."}, true
	})
	config.RegisterSchema(documentStartID, config.Schema{"present": {Kind: config.OptBool}})
	config.RegisterSchema(documentEndID, config.Schema{"present": {Kind: config.OptBool}})
}

type docSegment struct {
	start, end     int
	hasStartMarker bool
	hasEndMarker   bool
}

// splitDocumentSegments finds every "---"/"..." marker line (outside
// block-scalar bodies) and partitions the buffer into per-document
// segments. Subsequent documents in a stream are always preceded by an
// explicit "---" (that is the only way the underlying parser can tell
// them apart), so only the first segment's start marker can be absent.
func splitDocumentSegments(doc *Document) []docSegment {
	var starts, ends []int
	var tracker scanner.BlockTracker
	for i := 1; i <= doc.LineCount(); i++ {
		line := doc.Line(i)
		indent := scanner.LeadingIndent(line)
		content := line[indent:]
		if tracker.ConsumeLine(indent, content) {
			continue
		}
		trimmed := strings.TrimSpace(scanner.StripTrailingComment(content))
		switch trimmed {
		case "---":
			starts = append(starts, i)
		case "...":
			ends = append(ends, i)
		}
		tracker.ObserveIndicator(indent, content)
	}

	if len(doc.Docs) == 0 {
		return nil
	}

	boundaries := []int{1}
	for _, s := range starts {
		if s != 1 {
			boundaries = append(boundaries, s)
		}
	}
	startSet := map[int]bool{}
	for _, s := range starts {
		startSet[s] = true
	}

	total := doc.LineCount()
	segments := make([]docSegment, 0, len(boundaries))
	for i, b := range boundaries {
		end := total
		if i+1 < len(boundaries) {
			end = boundaries[i+1] - 1
		}
		hasEnd := false
		for _, e := range ends {
			if e >= b && e <= end {
				hasEnd = true
				break
			}
		}
		segments = append(segments, docSegment{
			start:          b,
			end:            end,
			hasStartMarker: startSet[b],
			hasEndMarker:   hasEnd,
		})
	}
	return segments
}

type documentMarkerRule struct {
	id      string
	present bool
	marker  string
}

func (r documentMarkerRule) ID() string { return r.id }

func (r documentMarkerRule) Check(doc *Document, level config.RuleLevel) []Problem {
	segments := splitDocumentSegments(doc)
	var out []Problem
	total := doc.LineCount()
	for _, seg := range segments {
		has := seg.hasStartMarker
		if r.id == documentEndID {
			has = seg.hasEndMarker
		}
		if r.present && !has {
			line := seg.start
			if r.id == documentEndID {
				line = seg.end + 1
				if line > total {
					line = total
				}
			}
			out = append(out, Problem{
				Line:    line,
				Column:  1,
				Message: "missing document " + markerNoun(r.id) + " \"" + r.marker + "\"",
			})
		}
		if !r.present && has {
			line := seg.start
			if r.id == documentEndID {
				line = markerLine(seg, doc)
			}
			out = append(out, Problem{
				Line:    line,
				Column:  1,
				Message: "found forbidden document " + markerNoun(r.id),
			})
		}
	}
	return out
}

func markerNoun(id string) string {
	if id == documentStartID {
		return "start"
	}
	return "end"
}

func markerLine(seg docSegment, doc *Document) int {
	for i := seg.start; i <= seg.end; i++ {
		if strings.TrimSpace(doc.Line(i)) == "..." {
			return i
		}
	}
	return seg.start
}
