// Package lint runs a file's configured rules over its contents and
// produces the ordered diagnostics the emitter turns into output.
package lint

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/yamllint-go/yamllint/internal/config"
	"github.com/yamllint-go/yamllint/internal/rules"
)

// Diagnostic is a single reported problem, positioned and leveled, ready
// for an output formatter. Rule is empty for a collapsed syntax error.
type Diagnostic struct {
	Line    int
	Column  int
	Level   config.RuleLevel
	Message string
	Rule    string
}

// File runs every rule cfg enables against buf, whose path is relPath
// (used to test per-rule ignore patterns). A fatal YAML syntax error
// discards every other diagnostic and collapses to a single Diagnostic
// with an empty Rule.
func File(cfg *config.LintConfig, relPath string, buf []byte) []Diagnostic {
	doc := rules.NewDocument(buf)
	if doc.SyntaxError != nil {
		line, col := syntaxErrorPosition(doc.SyntaxError.Error())
		return []Diagnostic{{
			Line:    line,
			Column:  col,
			Level:   config.LevelError,
			Message: "syntax error: " + doc.SyntaxError.Error() + " (syntax)",
		}}
	}

	problems := rules.RunAll(cfg, relPath, doc)
	problems = applyDirectives(doc, problems)

	diags := make([]Diagnostic, len(problems))
	for i, p := range problems {
		diags[i] = Diagnostic{Line: p.Line, Column: p.Column, Level: p.Level, Message: p.Message, Rule: p.Rule}
	}
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Line != diags[j].Line {
			return diags[i].Line < diags[j].Line
		}
		return diags[i].Column < diags[j].Column
	})
	return diags
}

var syntaxLineRe = regexp.MustCompile(`line (\d+)`)

// syntaxErrorPosition extracts the 1-based line number yaml.v3 already
// embeds in its scanner/parser error messages ("yaml: line N: <reason>").
// Column is not carried by yaml.v3 errors, so it always reports 1.
func syntaxErrorPosition(msg string) (line, column int) {
	if m := syntaxLineRe.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, 1
		}
	}
	return 1, 1
}
