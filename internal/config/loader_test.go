package config

import (
	"strings"
	"testing"
)

func TestParseRejectsNonMapping(t *testing.T) {
	_, err := Parse("- a\n- b\n", nil, "/work")
	if err == nil || !strings.Contains(err.Error(), "not a mapping") {
		t.Fatalf("err = %v, want 'not a mapping'", err)
	}
}

func TestParseIgnoreAndIgnoreFromFileConflict(t *testing.T) {
	text := "ignore: ['*.tmp']\nignore-from-file: .gitignore\n"
	_, err := Parse(text, nil, "/work")
	if err == nil || !strings.Contains(err.Error(), "cannot be used together") {
		t.Fatalf("err = %v, want mutual-exclusion error", err)
	}
}

func TestParseIgnoreMultilineString(t *testing.T) {
	text := "ignore: |\n  *.tmp\n  build/\n"
	cfg, err := Parse(text, nil, "/work")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.IgnorePatterns) != 2 || cfg.IgnorePatterns[0] != "*.tmp" || cfg.IgnorePatterns[1] != "build/" {
		t.Fatalf("IgnorePatterns = %v", cfg.IgnorePatterns)
	}
}

func TestParseRuleEnableDisable(t *testing.T) {
	text := "rules:\n  trailing-spaces: enable\n  hyphens: disable\n"
	cfg, err := Parse(text, nil, "/work")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("trailing-spaces") != LevelError {
		t.Errorf("trailing-spaces level = %v, want error", cfg.RuleLevel("trailing-spaces"))
	}
	if cfg.RuleLevel("hyphens") != LevelDisabled {
		t.Errorf("hyphens level = %v, want disabled", cfg.RuleLevel("hyphens"))
	}
	if cfg.RuleLevel("never-mentioned") != LevelDisabled {
		t.Errorf("never-mentioned level = %v, want disabled", cfg.RuleLevel("never-mentioned"))
	}
}

func TestParseRuleBadScalarValue(t *testing.T) {
	text := "rules:\n  hyphens: maybe\n"
	_, err := Parse(text, nil, "/work")
	if err == nil || !strings.Contains(err.Error(), "should be 'enable', 'disable', or a mapping") {
		t.Fatalf("err = %v", err)
	}
}

func TestParseRuleLevelValidation(t *testing.T) {
	text := "rules:\n  hyphens:\n    level: verbose\n"
	_, err := Parse(text, nil, "/work")
	if err == nil || !strings.Contains(err.Error(), `level should be "error" or "warning"`) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseRuleLevelWarning(t *testing.T) {
	text := "rules:\n  hyphens:\n    level: warning\n    max-spaces-after: 2\n"
	cfg, err := Parse(text, nil, "/work")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("hyphens") != LevelWarning {
		t.Errorf("level = %v, want warning", cfg.RuleLevel("hyphens"))
	}
	opts, ok := cfg.RuleOptions("hyphens")
	if !ok || opts["max-spaces-after"] != int64(2) {
		t.Errorf("options = %v", opts)
	}
}

func TestRuleNameOrderingFirstSeen(t *testing.T) {
	text := "rules:\n  hyphens: enable\n  colons: enable\n  hyphens:\n    level: warning\n"
	cfg, err := Parse(text, nil, "/work")
	if err != nil {
		t.Fatal(err)
	}
	// hyphens appears twice; it should only occupy its first-seen slot.
	want := []string{"hyphens", "colons"}
	if len(cfg.RuleNames) != len(want) {
		t.Fatalf("RuleNames = %v, want %v", cfg.RuleNames, want)
	}
	for i, name := range want {
		if cfg.RuleNames[i] != name {
			t.Errorf("RuleNames[%d] = %s, want %s", i, cfg.RuleNames[i], name)
		}
	}
}

func TestExtendsBuiltinPresetThenOverride(t *testing.T) {
	text := "extends: default\nrules:\n  trailing-spaces: disable\n"
	cfg, err := Parse(text, nil, "/work")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("trailing-spaces") != LevelDisabled {
		t.Errorf("trailing-spaces level = %v, want disabled", cfg.RuleLevel("trailing-spaces"))
	}
	if cfg.RuleLevel("colons") != LevelError {
		t.Errorf("colons level = %v, want error (inherited from default)", cfg.RuleLevel("colons"))
	}
}

func TestExtendsDeepMergesRuleOptions(t *testing.T) {
	text := "extends: default\nrules:\n  line-length:\n    max: 120\n"
	cfg, err := Parse(text, nil, "/work")
	if err != nil {
		t.Fatal(err)
	}
	opts, ok := cfg.RuleOptions("line-length")
	if !ok {
		t.Fatal("expected line-length options")
	}
	if opts["max"] != int64(120) {
		t.Errorf("max = %v, want 120", opts["max"])
	}
	if opts["allow-non-breakable-words"] != true {
		t.Errorf("allow-non-breakable-words = %v, want inherited true", opts["allow-non-breakable-words"])
	}
}

func TestExtendsFromFileViaEnv(t *testing.T) {
	env := newMemEnv()
	env.put("/work/base.yaml", "rules:\n  comments: enable\n")
	text := "extends: base.yaml\nrules:\n  hyphens: enable\n"
	cfg, err := Parse(text, env, "/work")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("comments") != LevelError {
		t.Errorf("comments level = %v", cfg.RuleLevel("comments"))
	}
	if cfg.RuleLevel("hyphens") != LevelError {
		t.Errorf("hyphens level = %v", cfg.RuleLevel("hyphens"))
	}
}

func TestExtendsWithoutEnvFails(t *testing.T) {
	_, err := Parse("extends: some-file.yaml\n", nil, "/work")
	if err == nil || !strings.Contains(err.Error(), "requires filesystem access") {
		t.Fatalf("err = %v", err)
	}
}

func TestExtendsEmptyEntryIsNoop(t *testing.T) {
	cfg, err := Parse("extends: ''\nrules:\n  hyphens: enable\n", nil, "/work")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("hyphens") != LevelError {
		t.Errorf("hyphens level = %v", cfg.RuleLevel("hyphens"))
	}
}

func TestExtendsCycleIsNoop(t *testing.T) {
	env := newMemEnv()
	env.put("/work/a.yaml", "extends: b.yaml\nrules:\n  hyphens: enable\n")
	env.put("/work/b.yaml", "extends: a.yaml\nrules:\n  colons: enable\n")
	cfg, err := Parse(mustRead(env, "/work/a.yaml"), env, "/work")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("hyphens") != LevelError {
		t.Errorf("hyphens level = %v", cfg.RuleLevel("hyphens"))
	}
}

func TestUnknownOptionRejected(t *testing.T) {
	RegisterSchema("__test_rule__", Schema{
		"max": {Kind: OptInt},
	})
	text := "rules:\n  __test_rule__:\n    bogus: 1\n"
	_, err := Parse(text, nil, "/work")
	if err == nil || !strings.Contains(err.Error(), `unknown option "bogus" for rule "__test_rule__"`) {
		t.Fatalf("err = %v", err)
	}
}

func TestIgnoreSubOptionAcceptedByAnySchema(t *testing.T) {
	RegisterSchema("__test_rule2__", Schema{})
	text := "rules:\n  __test_rule2__:\n    ignore: 'build/*'\n"
	_, err := Parse(text, nil, "/work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func mustRead(env *memEnv, path string) string {
	data, err := env.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return string(data)
}
