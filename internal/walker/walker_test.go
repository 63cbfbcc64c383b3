package walker_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamllint-go/yamllint/internal/config"
	"github.com/yamllint-go/yamllint/internal/walker"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func finalizedConfig(t *testing.T, text string) *config.LintConfig {
	t.Helper()
	cfg, err := config.Parse(text, nil, "/work")
	require.NoError(t, err)
	require.NoError(t, cfg.Finalize(config.OSEnv{}))
	return cfg
}

func TestDiscoverFiltersByYAMLFilePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), "a: 1\n")
	writeFile(t, filepath.Join(dir, "b.yml"), "b: 1\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "hello\n")

	cfg := finalizedConfig(t, "extends: default\n")
	candidates, err := walker.Discover([]string{dir}, cfg)
	require.NoError(t, err)

	var rels []string
	for _, c := range candidates {
		rels = append(rels, c.RelPath)
	}
	sort.Strings(rels)
	assert.Equal(t, []string{"a.yaml", "b.yml"}, rels)
}

func TestDiscoverSkipsIgnoredDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.yaml"), "a: 1\n")
	writeFile(t, filepath.Join(dir, "vendor", "skip.yaml"), "a: 1\n")

	cfg := finalizedConfig(t, "extends: default\nignore: ['vendor/']\n")
	candidates, err := walker.Discover([]string{dir}, cfg)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "keep.yaml", candidates[0].RelPath)
}

func TestDiscoverExplicitFileBypassesPatternFilter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.conf")
	writeFile(t, path, "a: 1\n")

	cfg := finalizedConfig(t, "extends: default\n")
	candidates, err := walker.Discover([]string{path}, cfg)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, path, candidates[0].Path)
}

func TestDiscoverExplicitFileStillHonorsIgnore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.skip.yaml")
	writeFile(t, path, "a: 1\n")

	cfg := finalizedConfig(t, "extends: default\nignore: ['*.skip.yaml']\n")
	candidates, err := walker.Discover([]string{path}, cfg)
	require.NoError(t, err)
	assert.Empty(t, candidates, "explicitly named but ignored files are still filtered")
}

func TestDiscoverMissingPathErrors(t *testing.T) {
	cfg := finalizedConfig(t, "extends: default\n")
	_, err := walker.Discover([]string{"/does/not/exist"}, cfg)
	assert.Error(t, err)
}
