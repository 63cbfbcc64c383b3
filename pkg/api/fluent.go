package api

import (
	"gopkg.in/yaml.v3"
)

// ConfigBuilder builds a yamllint config document programmatically,
// mirroring the fluent chain a caller would otherwise write by hand
// (extends: default, then per-rule overrides, then ignore patterns).
type ConfigBuilder struct {
	extends string
	rules   map[string]interface{}
	ignore  []string
}

// NewConfig starts a config builder extending the "default" preset, the
// same starting point the builtin default config uses.
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{extends: "default", rules: map[string]interface{}{}}
}

// Extends overrides the preset this config extends ("default" or
// "relaxed").
func (b *ConfigBuilder) Extends(preset string) *ConfigBuilder {
	b.extends = preset
	return b
}

// EnableRule turns a rule on, optionally with an options mapping (for
// example map[string]interface{}{"max": 100}). A nil value enables the
// rule with its defaults.
func (b *ConfigBuilder) EnableRule(name string, options interface{}) *ConfigBuilder {
	if options == nil {
		b.rules[name] = "enable"
		return b
	}
	b.rules[name] = options
	return b
}

// DisableRule turns a rule off regardless of what the extended preset
// says.
func (b *ConfigBuilder) DisableRule(name string) *ConfigBuilder {
	b.rules[name] = "disable"
	return b
}

// Ignore adds gitignore-style patterns of paths to exclude from linting.
func (b *ConfigBuilder) Ignore(patterns ...string) *ConfigBuilder {
	b.ignore = append(b.ignore, patterns...)
	return b
}

// Build renders the accumulated settings as a YAML config document, the
// form Linter.WithInlineConfig and the -d flag both accept.
func (b *ConfigBuilder) Build() (string, error) {
	doc := map[string]interface{}{}
	if b.extends != "" {
		doc["extends"] = b.extends
	}
	if len(b.rules) > 0 {
		doc["rules"] = b.rules
	}
	if len(b.ignore) > 0 {
		doc["ignore"] = b.ignore
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// WithConfig applies a ConfigBuilder's document as the linter's inline
// config, the fluent equivalent of WithInlineConfig(cfg.Build()).
func (l *Linter) WithConfig(cfg *ConfigBuilder) *Linter {
	data, err := cfg.Build()
	if err != nil {
		return l
	}
	return l.WithInlineConfig(data)
}
