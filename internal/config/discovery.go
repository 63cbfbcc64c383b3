package config

import (
	"fmt"
	"path/filepath"
)

// projectConfigNames are tried, in order, at each directory level during
// project search.
var projectConfigNames = []string{".yamllint", ".yamllint.yaml", ".yamllint.yml"}

// Request captures the inputs that drive config discovery, mirroring the
// CLI flags and API parameters that can short-circuit the search
// (§4.3). The zero value means "nothing was explicitly supplied".
type Request struct {
	InlineConfigData string // from -d / API parameter; empty means absent
	HasInlineData    bool
	ConfigFilePath   string // from -c; empty means absent
	InputDirs        []string
}

// Resolve runs the full, non-per-file discovery precedence (§4.3 rules
// 1-6) and returns the resolved, merged, finalized LintConfig; its BaseDir
// reports the directory relative paths are resolved against. Grounded on the
// teacher's config-lookup cascade in cmd/structurelint/main.go's flag
// handling, generalized into the full inline/explicit/search/env/
// user-global/builtin cascade the reference implementation documents.
func Resolve(req Request, env Env) (*LintConfig, error) {
	if req.HasInlineData {
		cfg, err := Parse(req.InlineConfigData, env, mustGetwd(env))
		if err != nil {
			return nil, err
		}
		return finalizeConfig(cfg, env)
	}

	if req.ConfigFilePath != "" {
		data, err := env.ReadFile(req.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("invalid config: could not read %q: %w", req.ConfigFilePath, err)
		}
		cfg, err := Parse(string(data), env, filepath.Dir(absPath(env, req.ConfigFilePath)))
		if err != nil {
			return nil, err
		}
		return finalizeConfig(cfg, env)
	}

	if found, ok, err := searchProjectConfig(req.InputDirs, env); err != nil {
		return nil, err
	} else if ok {
		cfg, err := loadConfigFile(found, env)
		if err != nil {
			return nil, err
		}
		return finalizeConfig(cfg, env)
	}

	if envPath := env.Getenv("YAMLLINT_CONFIG_FILE"); envPath != "" && env.FileExists(envPath) {
		cfg, err := loadConfigFile(envPath, env)
		if err != nil {
			return nil, err
		}
		return finalizeConfig(cfg, env)
	}

	if userPath, err := UserGlobalConfigPath(env); err == nil && env.FileExists(userPath) {
		cfg, err := loadConfigFile(userPath, env)
		if err != nil {
			return nil, err
		}
		return finalizeConfig(cfg, env)
	}

	cfg, err := Parse("extends: default\n", env, mustGetwd(env))
	if err != nil {
		return nil, err
	}
	return finalizeConfig(cfg, env)
}

// ResolvePerFile applies the narrower per-file variant of discovery: it
// skips inline data, the explicit -c flag, and the env var, applying only
// project search (rooted at the file's own directory), the user-global
// config, and the builtin default.
func ResolvePerFile(fileDir string, env Env) (*LintConfig, error) {
	if found, ok, err := searchProjectConfig([]string{fileDir}, env); err != nil {
		return nil, err
	} else if ok {
		cfg, err := loadConfigFile(found, env)
		if err != nil {
			return nil, err
		}
		return finalizeConfig(cfg, env)
	}
	if userPath, err := UserGlobalConfigPath(env); err == nil && env.FileExists(userPath) {
		cfg, err := loadConfigFile(userPath, env)
		if err != nil {
			return nil, err
		}
		return finalizeConfig(cfg, env)
	}
	cfg, err := Parse("extends: default\n", env, fileDir)
	if err != nil {
		return nil, err
	}
	return finalizeConfig(cfg, env)
}

func loadConfigFile(path string, env Env) (*LintConfig, error) {
	data, err := env.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("invalid config: could not read %q: %w", path, err)
	}
	return Parse(string(data), env, filepath.Dir(path))
}

func finalizeConfig(cfg *LintConfig, env Env) (*LintConfig, error) {
	if err := cfg.Finalize(env); err != nil {
		return nil, err
	}
	return cfg, nil
}

// searchProjectConfig walks upward from each (de-duplicated) start
// directory, trying the three project config basenames at every level,
// stopping at the user's home directory boundary or filesystem root.
func searchProjectConfig(inputDirs []string, env Env) (string, bool, error) {
	starts := dedupeDirs(inputDirs, env)
	home, _ := env.UserHomeDir()

	for _, start := range starts {
		dir := start
		for {
			for _, name := range projectConfigNames {
				candidate := filepath.Join(dir, name)
				if env.FileExists(candidate) {
					return candidate, true, nil
				}
			}
			if dir == home {
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	return "", false, nil
}

func dedupeDirs(dirs []string, env Env) []string {
	if len(dirs) == 0 {
		return []string{mustGetwd(env)}
	}
	seen := map[string]bool{}
	var out []string
	for _, d := range dirs {
		abs := absPath(env, d)
		if seen[abs] {
			continue
		}
		seen[abs] = true
		out = append(out, abs)
	}
	return out
}

func absPath(env Env, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	cwd, err := env.Getwd()
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(cwd, path))
}

func mustGetwd(env Env) string {
	cwd, err := env.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
