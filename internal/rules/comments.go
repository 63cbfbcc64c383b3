package rules

import (
	"strconv"
	"strings"

	"github.com/yamllint-go/yamllint/internal/config"
	"github.com/yamllint-go/yamllint/internal/scanner"
)

const commentsID = "comments"

func init() {
	Register(commentsID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, commentsID)
		return commentsRule{
			requireStartingSpace: optBool(opts, "require-starting-space", true),
			ignoreShebangs:       optBool(opts, "ignore-shebangs", true),
			minSpacesFromContent: optInt(opts, "min-spaces-from-content", 2),
		}, true
	})
	config.RegisterSchema(commentsID, config.Schema{
		"require-starting-space":  {Kind: config.OptBool},
		"ignore-shebangs":         {Kind: config.OptBool},
		"min-spaces-from-content": {Kind: config.OptInt},
	})
}

type commentsRule struct {
	requireStartingSpace bool
	ignoreShebangs       bool
	minSpacesFromContent int
}

func (commentsRule) ID() string { return commentsID }

func (r commentsRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	var tracker scanner.BlockTracker
	for i := 1; i <= doc.LineCount(); i++ {
		line := doc.Line(i)
		indent := scanner.LeadingIndent(line)
		content := line[indent:]
		if tracker.ConsumeLine(indent, content) {
			continue
		}

		var q scanner.QuoteState
		idx := q.FindCommentStart(line)
		if idx < 0 {
			tracker.ObserveIndicator(indent, content)
			continue
		}

		before := line[:idx]
		isInline := strings.TrimSpace(before) != ""
		if isInline && r.minSpacesFromContent >= 0 {
			spaces := len(before) - len(strings.TrimRight(before, " \t"))
			if spaces < r.minSpacesFromContent {
				out = append(out, Problem{
					Line:    i,
					Column:  byteColToRuneCol(line, idx),
					Message: "too few spaces before comment: expected " + strconv.Itoa(r.minSpacesFromContent),
				})
			}
		}

		rest := line[idx:]
		hashes := 0
		for hashes < len(rest) && rest[hashes] == '#' {
			hashes++
		}
		after := rest[hashes:]
		ok := after == "" || after[0] == ' ' || after[0] == '\t'
		if !ok && r.ignoreShebangs && i == 1 && idx == 0 && strings.HasPrefix(rest, "#!") {
			ok = true
		}
		if r.requireStartingSpace && !ok {
			out = append(out, Problem{
				Line:    i,
				Column:  byteColToRuneCol(line, idx+hashes),
				Message: "missing starting space in comment",
			})
		}

		tracker.ObserveIndicator(indent, content)
	}
	return out
}
