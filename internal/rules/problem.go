// Package rules implements the per-rule scanner engines: event-driven
// rules that walk a parsed YAML node tree and line-driven rules that scan
// the raw source buffer with the quote and block-scalar trackers from
// internal/scanner. Every rule exposes an ID, resolves its own options
// from a *config.LintConfig, and returns a slice of Problems.
package rules

import "github.com/yamllint-go/yamllint/internal/config"

// Problem is a single diagnostic produced by a rule, matching the
// line/column/level/message/rule shape a diagnostic emitter formats.
// Grounded on the teacher's rules.Violation (internal/rules/rule.go),
// trimmed to the fields this linter's output formats actually use.
type Problem struct {
	Line    int
	Column  int
	Level   config.RuleLevel
	Message string
	Rule    string
}
