package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamllint-go/yamllint/internal/config"
	"github.com/yamllint-go/yamllint/internal/lint"
)

func mustConfig(t *testing.T, text string) *config.LintConfig {
	t.Helper()
	cfg, err := config.Parse(text, nil, "/work")
	require.NoError(t, err)
	require.NoError(t, cfg.Finalize(config.OSEnv{}))
	return cfg
}

func TestFileSyntaxError(t *testing.T) {
	cfg := mustConfig(t, "extends: default\n")
	diags := lint.File(cfg, "bad.yaml", []byte("key: [unterminated\n"))
	require.Len(t, diags, 1)
	assert.Empty(t, diags[0].Rule)
	assert.Equal(t, config.LevelError, diags[0].Level)
}

func TestFileTrailingSpaces(t *testing.T) {
	cfg := mustConfig(t, "rules:\n  trailing-spaces: enable\n")
	diags := lint.File(cfg, "f.yaml", []byte("key: value \nother: 1\n"))
	require.Len(t, diags, 1)
	assert.Equal(t, "trailing-spaces", diags[0].Rule)
	assert.Equal(t, 1, diags[0].Line)
}

func TestFileOrdersDiagnosticsByPosition(t *testing.T) {
	cfg := mustConfig(t, "rules:\n  trailing-spaces: enable\n  hyphens:\n    max-spaces-after: 1\n")
	buf := []byte("list:\n-  item\na: b \n")
	diags := lint.File(cfg, "f.yaml", buf)
	require.Len(t, diags, 2)
	for i := 1; i < len(diags); i++ {
		prev, cur := diags[i-1], diags[i]
		ordered := prev.Line < cur.Line || (prev.Line == cur.Line && prev.Column <= cur.Column)
		assert.True(t, ordered, "diagnostics not ordered: %+v then %+v", prev, cur)
	}
}

func TestFileDisabledRuleProducesNoDiagnostics(t *testing.T) {
	cfg := mustConfig(t, "rules:\n  trailing-spaces: disable\n")
	diags := lint.File(cfg, "f.yaml", []byte("key: value \n"))
	assert.Empty(t, diags)
}

func TestFileDisableLineDirective(t *testing.T) {
	cfg := mustConfig(t, "rules:\n  trailing-spaces: enable\n")
	buf := []byte("key: value  # yamllint disable-line rule:trailing-spaces  \nother: 1  \n")
	diags := lint.File(cfg, "f.yaml", buf)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Line)
}

func TestFileDisableLineDirectiveAllRules(t *testing.T) {
	cfg := mustConfig(t, "rules:\n  trailing-spaces: enable\n")
	buf := []byte("key: value  # yamllint disable-line  \n")
	diags := lint.File(cfg, "f.yaml", buf)
	assert.Empty(t, diags)
}

func TestFileStandaloneDisableAppliesToNextLine(t *testing.T) {
	cfg := mustConfig(t, "rules:\n  trailing-spaces: enable\n")
	buf := []byte("# yamllint disable rule:trailing-spaces\nkey: value  \nother: value  \n")
	diags := lint.File(cfg, "f.yaml", buf)
	require.Len(t, diags, 1, "standalone disable covers only the next line")
	assert.Equal(t, 3, diags[0].Line)
}

func TestFilePerRuleIgnorePath(t *testing.T) {
	cfg := mustConfig(t, "rules:\n  trailing-spaces:\n    ignore: ['generated/*']\n")
	diags := lint.File(cfg, "generated/f.yaml", []byte("key: value \n"))
	assert.Empty(t, diags, "path ignored for this rule")

	diags = lint.File(cfg, "src/f.yaml", []byte("key: value \n"))
	assert.Len(t, diags, 1, "path not ignored")
}
