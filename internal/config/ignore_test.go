package config

import "testing"

func TestFinalizeBuildsIgnoreMatcherFromPatterns(t *testing.T) {
	env := newMemEnv()
	cfg, err := Parse("ignore:\n  - '*.generated.yaml'\n  - build/\n", env, "/work")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Finalize(env); err != nil {
		t.Fatal(err)
	}
	if !cfg.IsFileIgnored("thing.generated.yaml") {
		t.Error("expected thing.generated.yaml to be ignored")
	}
	if !cfg.IsFileIgnored("build/output.yaml") {
		t.Error("expected build/output.yaml to be ignored")
	}
	if cfg.IsFileIgnored("keep.yaml") {
		t.Error("did not expect keep.yaml to be ignored")
	}
}

func TestFinalizeReadsIgnoreFromFile(t *testing.T) {
	env := newMemEnv()
	env.put("/work/.gitignore", "*.skip.yaml\n# a comment\n\nvendor/\n")
	cfg, err := Parse("ignore-from-file: .gitignore\n", env, "/work")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Finalize(env); err != nil {
		t.Fatal(err)
	}
	if !cfg.IsFileIgnored("x.skip.yaml") {
		t.Error("expected x.skip.yaml ignored")
	}
	if !cfg.IsFileIgnored("vendor/a.yaml") {
		t.Error("expected vendor/a.yaml ignored")
	}
	if cfg.IsFileIgnored("keep.yaml") {
		t.Error("keep.yaml should not be ignored")
	}
}

func TestIsYAMLCandidateDefaultPatterns(t *testing.T) {
	env := newMemEnv()
	cfg, err := Parse("", env, "/work")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Finalize(env); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"foo.yaml", "foo.yml", ".yamllint"} {
		if !cfg.IsYAMLCandidate(p) {
			t.Errorf("%s should be a yaml candidate", p)
		}
	}
	if cfg.IsYAMLCandidate("foo.json") {
		t.Error("foo.json should not be a yaml candidate")
	}
}

func TestIsYAMLCandidateCustomPatternsReplaceDefault(t *testing.T) {
	env := newMemEnv()
	cfg, err := Parse("yaml-files:\n  - '*.myyaml'\n", env, "/work")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Finalize(env); err != nil {
		t.Fatal(err)
	}
	if cfg.IsYAMLCandidate("foo.yaml") {
		t.Error("custom yaml-files should replace, not extend, the default list")
	}
	if !cfg.IsYAMLCandidate("foo.myyaml") {
		t.Error("foo.myyaml should match the custom pattern")
	}
}

func TestRulePerFileIgnoreSubOption(t *testing.T) {
	env := newMemEnv()
	cfg, err := Parse("rules:\n  hyphens:\n    ignore: 'generated/*.yaml'\n", env, "/work")
	if err != nil {
		t.Fatal(err)
	}
	m, err := cfg.RulePerFileIgnore("hyphens")
	if err != nil {
		t.Fatal(err)
	}
	if m == nil {
		t.Fatal("expected a compiled matcher")
	}
	if !m.MatchesPath("generated/x.yaml") {
		t.Error("expected generated/x.yaml to match the rule-level ignore")
	}
	if other, _ := cfg.RulePerFileIgnore("colons"); other != nil {
		t.Error("expected nil matcher for a rule without an ignore sub-option")
	}
}
