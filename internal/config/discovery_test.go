package config

import "testing"

func TestResolveInlineDataTakesPrecedence(t *testing.T) {
	env := newMemEnv()
	env.put("/work/.yamllint", "rules:\n  hyphens: enable\n")
	req := Request{HasInlineData: true, InlineConfigData: "rules:\n  colons: enable\n"}
	cfg, err := Resolve(req, env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("colons") != LevelError {
		t.Errorf("colons = %v", cfg.RuleLevel("colons"))
	}
	if cfg.RuleLevel("hyphens") != LevelDisabled {
		t.Errorf("hyphens = %v, want disabled (project config must be ignored)", cfg.RuleLevel("hyphens"))
	}
}

func TestResolveExplicitFileBeatsProjectSearch(t *testing.T) {
	env := newMemEnv()
	env.put("/work/.yamllint", "rules:\n  hyphens: enable\n")
	env.put("/explicit/config.yaml", "rules:\n  colons: enable\n")
	req := Request{ConfigFilePath: "/explicit/config.yaml", InputDirs: []string{"/work"}}
	cfg, err := Resolve(req, env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("colons") != LevelError || cfg.RuleLevel("hyphens") != LevelDisabled {
		t.Errorf("colons=%v hyphens=%v", cfg.RuleLevel("colons"), cfg.RuleLevel("hyphens"))
	}
}

func TestResolveProjectSearchWalksUpward(t *testing.T) {
	env := newMemEnv()
	env.put("/work/.yamllint", "rules:\n  hyphens: enable\n")
	req := Request{InputDirs: []string{"/work/sub/deeper"}}
	cfg, err := Resolve(req, env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("hyphens") != LevelError {
		t.Errorf("hyphens = %v, want error (found by walking up to /work)", cfg.RuleLevel("hyphens"))
	}
}

func TestResolveProjectSearchStopsAtHome(t *testing.T) {
	env := newMemEnv()
	env.home = "/work"
	// A config placed above the home boundary must not be found.
	env.put("/.yamllint", "rules:\n  key-ordering: enable\n")
	req := Request{InputDirs: []string{"/work/sub"}}
	cfg, err := Resolve(req, env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("key-ordering") != LevelDisabled {
		t.Errorf("key-ordering = %v, want disabled (search must not cross home boundary)", cfg.RuleLevel("key-ordering"))
	}
}

func TestResolveEnvVarFallback(t *testing.T) {
	env := newMemEnv()
	env.put("/etc/yamllint-shared.yaml", "rules:\n  colons: enable\n")
	env.env["YAMLLINT_CONFIG_FILE"] = "/etc/yamllint-shared.yaml"
	req := Request{InputDirs: []string{"/work"}}
	cfg, err := Resolve(req, env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("colons") != LevelError {
		t.Errorf("colons = %v", cfg.RuleLevel("colons"))
	}
}

func TestResolveFallsBackToBuiltinDefault(t *testing.T) {
	env := newMemEnv()
	req := Request{InputDirs: []string{"/work"}}
	cfg, err := Resolve(req, env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("trailing-spaces") != LevelError {
		t.Errorf("trailing-spaces = %v, want error from builtin default", cfg.RuleLevel("trailing-spaces"))
	}
}

func TestResolvePerFileUsesFileOwnDirectory(t *testing.T) {
	env := newMemEnv()
	env.put("/work/sub/.yamllint", "rules:\n  hyphens: enable\n")
	env.put("/work/.yamllint", "rules:\n  colons: enable\n")
	cfg, err := ResolvePerFile("/work/sub", env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleLevel("hyphens") != LevelError {
		t.Errorf("hyphens = %v, want error (closest config wins)", cfg.RuleLevel("hyphens"))
	}
}
