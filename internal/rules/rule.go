package rules

import "github.com/yamllint-go/yamllint/internal/config"

// Rule is implemented by every rule module. Check receives the parsed
// Document and the rule's own resolved Level (Error or Warning; Check is
// never called for a Disabled rule) and returns the Problems found.
type Rule interface {
	ID() string
	Check(doc *Document, level config.RuleLevel) []Problem
}

// Factory builds a Rule from the resolved config, returning ok=false when
// the rule's schema/options make it impossible to construct (this should
// not happen for a document that already passed config validation, but
// factories are allowed to be defensive).
type Factory func(cfg *config.LintConfig) (Rule, bool)

var registry = map[string]Factory{}

// Register associates a rule id with its factory. Rule files call this
// from an init() function, mirroring the teacher's registry.Register
// (internal/rules/registry.go) for rule-constructor lookup by name.
func Register(id string, factory Factory) {
	registry[id] = factory
}

// Build instantiates every rule named in cfg.RuleNames whose resolved
// level is not Disabled.
func Build(cfg *config.LintConfig) []instantiatedRule {
	return build(cfg, "")
}

// BuildForPath is like Build but also skips a rule whose per-rule
// "ignore" sub-option matches relPath.
func BuildForPath(cfg *config.LintConfig, relPath string) []instantiatedRule {
	return build(cfg, relPath)
}

func build(cfg *config.LintConfig, relPath string) []instantiatedRule {
	var out []instantiatedRule
	for _, id := range cfg.RuleNames {
		level := cfg.RuleLevel(id)
		if level == config.LevelDisabled {
			continue
		}
		if relPath != "" {
			if m, err := cfg.RulePerFileIgnore(id); err == nil && m != nil && m.MatchesPath(relPath) {
				continue
			}
		}
		factory, ok := registry[id]
		if !ok {
			continue // unknown rule ids are accepted by the loader but have no engine
		}
		rule, ok := factory(cfg)
		if !ok {
			continue
		}
		out = append(out, instantiatedRule{rule: rule, level: level})
	}
	return out
}

type instantiatedRule struct {
	rule  Rule
	level config.RuleLevel
}

// RunAll executes every rule enabled for relPath against doc and
// concatenates their Problems, tagging each with its rule id and resolved
// level. Pass relPath == "" to skip per-rule ignore filtering.
func RunAll(cfg *config.LintConfig, relPath string, doc *Document) []Problem {
	var out []Problem
	for _, ir := range build(cfg, relPath) {
		for _, p := range ir.rule.Check(doc, ir.level) {
			p.Rule = ir.rule.ID()
			p.Level = ir.level
			out = append(out, p)
		}
	}
	return out
}
