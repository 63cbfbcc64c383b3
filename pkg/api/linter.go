// Package api provides a stable, programmatic entry point into yamllint-go,
// wrapping the internal config/walker/lint/output packages behind a small
// fluent builder so callers don't need to import internal packages directly.
package api

import (
	"path/filepath"

	"github.com/yamllint-go/yamllint/internal/config"
	"github.com/yamllint-go/yamllint/internal/lint"
	"github.com/yamllint-go/yamllint/internal/output"
	"github.com/yamllint-go/yamllint/internal/walker"
)

// Linter runs configured rules over one or more paths and collects the
// resulting diagnostics as Violations.
type Linter struct {
	configFile   string
	inlineConfig string
	hasInline    bool
	env          config.Env
}

// NewLinter creates a linter that resolves its configuration the same way
// the command-line tool does: project search, then env var, then
// user-global config, then the builtin default.
func NewLinter() *Linter {
	return &Linter{env: config.OSEnv{}}
}

// WithConfigFile points the linter at an explicit config file, taking
// precedence over project search.
func (l *Linter) WithConfigFile(path string) *Linter {
	l.configFile = path
	return l
}

// WithInlineConfig supplies a full YAML config document directly, the
// highest-precedence source.
func (l *Linter) WithInlineConfig(yamlData string) *Linter {
	l.inlineConfig = yamlData
	l.hasInline = true
	return l
}

// Violation is one rule diagnostic found while linting, with the file path
// it belongs to folded in so callers don't need a parallel Diagnostic type.
type Violation struct {
	Path    string
	Line    int
	Column  int
	Level   string // "error" or "warning"
	Rule    string
	Message string
}

// Lint resolves configuration, discovers YAML files under paths, and lints
// each one, returning every violation found across all of them.
func (l *Linter) Lint(paths ...string) ([]Violation, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	req := config.Request{InputDirs: paths}
	if l.configFile != "" {
		req.ConfigFilePath = l.configFile
	}
	if l.hasInline {
		req.InlineConfigData = l.inlineConfig
		req.HasInlineData = true
	}

	cfg, err := config.Resolve(req, l.env)
	if err != nil {
		return nil, err
	}

	candidates, err := walker.Discover(paths, cfg)
	if err != nil {
		return nil, err
	}

	var violations []Violation
	for _, c := range candidates {
		fileCfg := cfg
		if l.configFile == "" && !l.hasInline {
			if perFile, perFileErr := config.ResolvePerFile(filepath.Dir(c.Path), l.env); perFileErr == nil {
				fileCfg = perFile
			}
		}
		buf, readErr := l.env.ReadFile(c.Path)
		if readErr != nil {
			return nil, readErr
		}
		for _, d := range lint.File(fileCfg, c.RelPath, buf) {
			violations = append(violations, Violation{
				Path:    c.Path,
				Line:    d.Line,
				Column:  d.Column,
				Level:   levelWord(d.Level),
				Rule:    d.Rule,
				Message: d.Message,
			})
		}
	}
	return violations, nil
}

// Format renders violations the way a given output format (standard,
// colored, parsable, github, auto) would, grouped back by file.
func Format(format string, violations []Violation) (string, error) {
	formatter, err := output.Resolve(format, output.OSEnv{})
	if err != nil {
		return "", err
	}
	byPath := make(map[string][]lint.Diagnostic)
	var order []string
	for _, v := range violations {
		if _, seen := byPath[v.Path]; !seen {
			order = append(order, v.Path)
		}
		byPath[v.Path] = append(byPath[v.Path], lint.Diagnostic{
			Line: v.Line, Column: v.Column, Level: levelFromWord(v.Level), Rule: v.Rule, Message: v.Message,
		})
	}
	var out string
	for _, path := range order {
		out += formatter.FormatFile(path, byPath[path])
	}
	return out, nil
}

func levelWord(level config.RuleLevel) string {
	if level == config.LevelError {
		return "error"
	}
	return "warning"
}

func levelFromWord(word string) config.RuleLevel {
	if word == "error" {
		return config.LevelError
	}
	return config.LevelWarning
}
