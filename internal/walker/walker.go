// Package walker discovers the candidate YAML files under a set of input
// paths, applying a LintConfig's ignore matcher and yaml-files patterns
// the same way the reference tool's directory recursion does. It keeps
// the teacher's filepath.WalkDir-based traversal shape (internal/walker's
// original Walk) but drops the directory-depth/file-count bookkeeping
// that existed only to serve the teacher's own max-depth/max-files rules.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yamllint-go/yamllint/internal/config"
)

// Candidate is one file queued for linting: its path as given or
// discovered during the walk, and the path relative to the input root
// used for per-file and per-rule ignore matching.
type Candidate struct {
	Path    string
	RelPath string
}

// Discover walks each input path, returning every file passing
// cfg.IsYAMLCandidate and not matched by cfg.IsFileIgnored, in the
// lexical order filepath.WalkDir visits them. A bare file path given
// directly (not a directory) still goes through cfg.IsFileIgnored, but
// bypasses the yaml-files pattern filter: explicit arguments skip the
// extension-pattern check a directory walk applies, not the ignore list.
func Discover(inputs []string, cfg *config.LintConfig) ([]Candidate, error) {
	var out []Candidate
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if cfg.IsFileIgnored(input) {
				continue
			}
			out = append(out, Candidate{Path: input, RelPath: filepath.Base(input)})
			continue
		}
		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, relErr := filepath.Rel(input, path)
			if relErr != nil {
				rel = path
			}
			if d.IsDir() {
				if rel != "." && cfg.IsFileIgnored(rel+"/") {
					return filepath.SkipDir
				}
				return nil
			}
			if cfg.IsFileIgnored(rel) || !cfg.IsYAMLCandidate(path) {
				return nil
			}
			out = append(out, Candidate{Path: path, RelPath: rel})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
