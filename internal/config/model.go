package config

import (
	"fmt"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/gobwas/glob"
)

// RuleLevel is the severity a resolved rule runs at, or its absence.
type RuleLevel int

const (
	// LevelDisabled means the rule does not run for this config.
	LevelDisabled RuleLevel = iota
	LevelWarning
	LevelError
)

func (l RuleLevel) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	default:
		return "disabled"
	}
}

// LintConfig is the fully-merged, finalized configuration a lint run
// executes against. It is built by the loader (parse + extends
// composition + deep merge) and made read-only by Finalize, which
// compiles the ignore matcher and the yaml-files glob set. Grounded on
// the teacher's Config struct (internal/config/config.go), generalized
// from a single "rules" section into the full yamllint document shape.
type LintConfig struct {
	IgnorePatterns   []string
	IgnoreFromFiles  []string
	YAMLFilePatterns []string
	Locale           string

	// RuleNames preserves first-seen order across the extends chain then
	// the current document, per the ordering invariant.
	RuleNames []string
	// ruleValues holds each rule's raw resolved value: either the string
	// "enable"/"disable", or a map[string]interface{} of options
	// (which may itself contain "level" and "ignore").
	ruleValues map[string]interface{}

	baseDir string

	ignoreMatcher *gitignore.GitIgnore
	yamlGlobs     []glob.Glob
	finalized     bool
}

func newLintConfig(baseDir string) *LintConfig {
	return &LintConfig{
		YAMLFilePatterns: append([]string(nil), defaultYAMLFilePatterns...),
		ruleValues:       map[string]interface{}{},
		baseDir:          baseDir,
	}
}

var defaultYAMLFilePatterns = []string{"*.yaml", "*.yml", ".yamllint"}

// BaseDir is the directory relative paths in this config were resolved
// against.
func (c *LintConfig) BaseDir() string { return c.baseDir }

// RuleLevel reports the severity rule id runs at, or LevelDisabled if the
// rule is absent or explicitly disabled.
func (c *LintConfig) RuleLevel(id string) RuleLevel {
	v, ok := c.ruleValues[id]
	if !ok {
		return LevelDisabled
	}
	switch t := v.(type) {
	case string:
		if t == "disable" {
			return LevelDisabled
		}
		return LevelError
	case map[string]interface{}:
		if lvl, ok := t["level"]; ok {
			if s, ok := lvl.(string); ok && s == "warning" {
				return LevelWarning
			}
		}
		return LevelError
	default:
		return LevelError
	}
}

// RuleOptions returns the options mapping for rule id, excluding the
// meta-keys "level" and "ignore". The second return value is false when
// the rule has no mapping form (bare "enable"/"disable" or absent).
func (c *LintConfig) RuleOptions(id string) (map[string]interface{}, bool) {
	v, ok := c.ruleValues[id]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, false
	}
	out := make(map[string]interface{}, len(m))
	for k, val := range m {
		if k == "level" || k == "ignore" {
			continue
		}
		out[k] = val
	}
	return out, true
}

// RulePerFileIgnore returns the compiled per-rule "ignore:" sub-option
// matcher for id, or nil if the rule declares none.
func (c *LintConfig) RulePerFileIgnore(id string) (*gitignore.GitIgnore, error) {
	v, ok := c.ruleValues[id]
	if !ok {
		return nil, nil
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	raw, ok := m["ignore"]
	if !ok {
		return nil, nil
	}
	patterns, err := decodeStringListValue(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid config: rule %q ignore: %w", id, err)
	}
	if len(patterns) == 0 {
		return nil, nil
	}
	m2, err := gitignore.CompileIgnoreLines(patterns...)
	if err != nil {
		return nil, fmt.Errorf("invalid config: rule %q ignore pattern is invalid: %w", id, err)
	}
	return m2, nil
}

// Finalize compiles the ignore matcher (from IgnorePatterns plus the
// contents of every IgnoreFromFiles entry) and the yaml-files glob set,
// then freezes the config against further mutation.
func (c *LintConfig) Finalize(env Env) error {
	if c.finalized {
		return nil
	}
	allPatterns := append([]string(nil), c.IgnorePatterns...)
	for _, rel := range c.IgnoreFromFiles {
		path := rel
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.baseDir, path)
		}
		data, err := env.ReadFile(path)
		if err != nil {
			return fmt.Errorf("invalid config: ignore-from-file %q could not be read: %w", rel, err)
		}
		for _, line := range splitIgnoreFileLines(string(data)) {
			allPatterns = append(allPatterns, line)
		}
	}
	c.IgnorePatterns = allPatterns

	var nonBlank []string
	for _, p := range allPatterns {
		if strings.TrimSpace(p) == "" {
			continue
		}
		nonBlank = append(nonBlank, p)
	}
	if len(nonBlank) > 0 {
		m, err := gitignore.CompileIgnoreLines(nonBlank...)
		if err != nil {
			return fmt.Errorf("invalid config: ignore pattern is invalid: %w", err)
		}
		c.ignoreMatcher = m
	}

	globs := make([]glob.Glob, 0, len(c.YAMLFilePatterns))
	for _, pattern := range c.YAMLFilePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue // invalid yaml-files globs are silently skipped, never fatal
		}
		globs = append(globs, g)
	}
	c.yamlGlobs = globs
	c.finalized = true
	return nil
}

// IsFileIgnored reports whether path (relative to, or inside, BaseDir)
// matches the compiled ignore matcher.
func (c *LintConfig) IsFileIgnored(path string) bool {
	if c.ignoreMatcher == nil {
		return false
	}
	rel := path
	if filepath.IsAbs(path) {
		if r, err := filepath.Rel(c.baseDir, path); err == nil {
			rel = r
		}
	}
	return c.ignoreMatcher.MatchesPath(filepath.ToSlash(rel))
}

// IsYAMLCandidate reports whether path's basename or relative form
// matches one of the configured yaml-files patterns.
func (c *LintConfig) IsYAMLCandidate(path string) bool {
	slash := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, g := range c.yamlGlobs {
		if g.Match(slash) || g.Match(base) {
			return true
		}
	}
	return false
}

func splitIgnoreFileLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
