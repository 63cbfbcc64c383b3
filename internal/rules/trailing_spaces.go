package rules

import (
	"strings"

	"github.com/yamllint-go/yamllint/internal/config"
)

const trailingSpacesID = "trailing-spaces"

func init() {
	Register(trailingSpacesID, func(cfg *config.LintConfig) (Rule, bool) {
		return trailingSpacesRule{}, true
	})
}

type trailingSpacesRule struct{}

func (trailingSpacesRule) ID() string { return trailingSpacesID }

func (trailingSpacesRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	for i := 1; i <= doc.LineCount(); i++ {
		line := doc.Line(i)
		trimmed := strings.TrimRight(line, " \t")
		if len(trimmed) == len(line) {
			continue
		}
		out = append(out, Problem{
			Line:    i,
			Column:  runeLen(line[:len(trimmed)]) + 1,
			Message: "trailing spaces",
		})
	}
	return out
}
