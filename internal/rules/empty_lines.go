package rules

import (
	"strconv"
	"strings"

	"github.com/yamllint-go/yamllint/internal/config"
)

const emptyLinesID = "empty-lines"

func init() {
	Register(emptyLinesID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, emptyLinesID)
		return emptyLinesRule{
			max:      optInt(opts, "max", 2),
			maxStart: optInt(opts, "max-start", 0),
			maxEnd:   optInt(opts, "max-end", 0),
		}, true
	})
	config.RegisterSchema(emptyLinesID, config.Schema{
		"max":       {Kind: config.OptInt},
		"max-start": {Kind: config.OptInt},
		"max-end":   {Kind: config.OptInt},
	})
}

type emptyLinesRule struct {
	max      int
	maxStart int
	maxEnd   int
}

func (emptyLinesRule) ID() string { return emptyLinesID }

func isBlankLine(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (r emptyLinesRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	total := doc.LineCount()

	run := 0
	for i := 1; i <= total; i++ {
		if isBlankLine(doc.Line(i)) {
			run++
			continue
		}
		if run > 0 {
			limit := r.max
			if run == i-1 {
				// every line seen so far was blank: run sits at document start
				limit = r.maxStart
			}
			if run > limit {
				out = append(out, Problem{
					Line:    i,
					Column:  1,
					Message: "too many blank lines (" + strconv.Itoa(run) + " > " + strconv.Itoa(limit) + ")",
				})
			}
		}
		run = 0
	}

	if run > 0 {
		limit := r.maxEnd
		if run == total {
			limit = r.maxStart
		}
		if run > limit {
			out = append(out, Problem{
				Line:    total,
				Column:  1,
				Message: "too many blank lines (" + strconv.Itoa(run) + " > " + strconv.Itoa(limit) + ")",
			})
		}
	}
	return out
}
