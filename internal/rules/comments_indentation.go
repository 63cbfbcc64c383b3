package rules

import (
	"strings"

	"github.com/yamllint-go/yamllint/internal/config"
	"github.com/yamllint-go/yamllint/internal/scanner"
)

const commentsIndentationID = "comments-indentation"

func init() {
	Register(commentsIndentationID, func(cfg *config.LintConfig) (Rule, bool) {
		return commentsIndentationRule{}, true
	})
}

type commentsIndentationRule struct{}

func (commentsIndentationRule) ID() string { return commentsIndentationID }

func (commentsIndentationRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	var tracker scanner.BlockTracker
	activeCommentIndent := -1
	prevContentIndent := 0

	for i := 1; i <= doc.LineCount(); i++ {
		line := doc.Line(i)
		indent := scanner.LeadingIndent(line)
		content := line[indent:]
		if tracker.ConsumeLine(indent, content) {
			continue
		}

		stripped := scanner.StripTrailingComment(content)
		trimmedContent := strings.TrimSpace(stripped)
		isCommentOnly := trimmedContent == "" && strings.TrimSpace(content) != ""

		if isCommentOnly {
			nextContentIndent := findNextContentIndent(doc, i, &tracker)
			reference := prevContentIndent
			if nextContentIndent > reference {
				reference = nextContentIndent
			}
			if activeCommentIndent >= 0 {
				reference = activeCommentIndent
			}
			if indent != prevContentIndent && indent != nextContentIndent && indent != reference {
				out = append(out, Problem{
					Line:    i,
					Column:  indent + 1,
					Message: "comment not indented like content",
				})
			}
			activeCommentIndent = indent
		} else if trimmedContent != "" {
			prevContentIndent = indent
			activeCommentIndent = -1
		}
		tracker.ObserveIndicator(indent, content)
	}
	return out
}

func findNextContentIndent(doc *Document, from int, tracker *scanner.BlockTracker) int {
	probe := *tracker
	for i := from + 1; i <= doc.LineCount(); i++ {
		line := doc.Line(i)
		indent := scanner.LeadingIndent(line)
		content := line[indent:]
		if probe.ConsumeLine(indent, content) {
			continue
		}
		stripped := strings.TrimSpace(scanner.StripTrailingComment(content))
		if stripped != "" {
			return indent
		}
		probe.ObserveIndicator(indent, content)
	}
	return -1
}
