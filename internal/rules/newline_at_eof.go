package rules

import "github.com/yamllint-go/yamllint/internal/config"

const newLineAtEOFID = "new-line-at-end-of-file"

func init() {
	Register(newLineAtEOFID, func(cfg *config.LintConfig) (Rule, bool) {
		return newLineAtEOFRule{}, true
	})
}

type newLineAtEOFRule struct{}

func (newLineAtEOFRule) ID() string { return newLineAtEOFID }

func (newLineAtEOFRule) Check(doc *Document, level config.RuleLevel) []Problem {
	if len(doc.Buffer) == 0 || doc.EndsWithNewline() {
		return nil
	}
	lastLine := doc.LineCount()
	col := runeLen(doc.Line(lastLine)) + 1
	return []Problem{{
		Line:    lastLine,
		Column:  col,
		Message: "no new line character at the end of file",
	}}
}
