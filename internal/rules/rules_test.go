package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamllint-go/yamllint/internal/config"
	"github.com/yamllint-go/yamllint/internal/rules"
)

func check(t *testing.T, ruleCfg, content string) []rules.Problem {
	t.Helper()
	cfg, err := config.Parse("rules:\n"+ruleCfg, nil, "/work")
	require.NoError(t, err)
	doc := rules.NewDocument([]byte(content))
	require.NoError(t, doc.SyntaxError)
	return rules.RunAll(cfg, "f.yaml", doc)
}

func findRule(problems []rules.Problem, id string) []rules.Problem {
	var out []rules.Problem
	for _, p := range problems {
		if p.Rule == id {
			out = append(out, p)
		}
	}
	return out
}

func TestColonsSpacingBeforeAfter(t *testing.T) {
	problems := check(t, "  colons:\n    max-spaces-before: 0\n    max-spaces-after: 1\n", "key :  value\n")
	assert.Len(t, findRule(problems, "colons"), 2, "one problem for the space before the colon, one for the two spaces after")
}

func TestColonsAllowedSpacing(t *testing.T) {
	problems := check(t, "  colons:\n    max-spaces-before: 0\n    max-spaces-after: 1\n", "key: value\n")
	assert.Empty(t, findRule(problems, "colons"))
}

func TestCommasSpacing(t *testing.T) {
	problems := check(t, "  commas:\n    max-spaces-before: 0\n    min-spaces-after: 1\n    max-spaces-after: 1\n", "key: [a ,b]\n")
	assert.NotEmpty(t, findRule(problems, "commas"), "space before comma should be flagged")
}

func TestHyphensMaxSpacesAfter(t *testing.T) {
	problems := check(t, "  hyphens:\n    max-spaces-after: 1\n", "-  item\n")
	assert.Len(t, findRule(problems, "hyphens"), 1)
}

func TestBracketsForbidInsideSpaces(t *testing.T) {
	problems := check(t, "  brackets:\n    min-spaces-inside: 0\n    max-spaces-inside: 0\n", "key: [ a, b ]\n")
	assert.Len(t, findRule(problems, "brackets"), 2, "space after [ and before ] should both be flagged")
}

func TestIndentationInconsistentSpaces(t *testing.T) {
	problems := check(t, "  indentation:\n    spaces: 2\n", "top:\n   child: 1\n")
	assert.NotEmpty(t, findRule(problems, "indentation"))
}

func TestQuotedStringsRequiredOnlyWhenNeeded(t *testing.T) {
	problems := check(t, "  quoted-strings:\n    required: only-when-needed\n", "a: \"plain\"\nb: \"yes\"\n")
	assert.Len(t, findRule(problems, "quoted-strings"), 1, "only 'plain' is an unneeded quote; 'yes' needs quoting as truthy")
}

func TestEmptyValuesForbidInBlockMappings(t *testing.T) {
	problems := check(t, "  empty-values:\n    forbid-in-block-mappings: true\n", "key:\nother: 1\n")
	assert.Len(t, findRule(problems, "empty-values"), 1)
}

func TestLineLengthFlagsLongLine(t *testing.T) {
	content := "key: this line has several words and goes well past the configured maximum length\n"
	problems := check(t, "  line-length:\n    max: 20\n    allow-non-breakable-words: false\n", content)
	assert.Len(t, findRule(problems, "line-length"), 1)
}

func TestEmptyLinesMax(t *testing.T) {
	problems := check(t, "  empty-lines:\n    max: 1\n", "a: 1\n\n\nb: 2\n")
	assert.Len(t, findRule(problems, "empty-lines"), 1)
}

func TestTruthyFlagsUnquotedYes(t *testing.T) {
	problems := check(t, "  truthy: enable\n", "flag: yes\n")
	matches := findRule(problems, "truthy")
	require.Len(t, matches, 1)
	assert.Equal(t, "truthy value should be one of [false, true]", matches[0].Message)
}

func TestIndentationRootKeyNotCheckedAgainstStep(t *testing.T) {
	problems := check(t, "  indentation:\n    spaces: 2\n    indent-sequences: true\n", "root:\n- item\n")
	matches := findRule(problems, "indentation")
	require.Len(t, matches, 1, "only the sequence item is misindented, not the root key itself")
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, 1, matches[0].Column)
	assert.Equal(t, "wrong indentation: expected 2 but found 0", matches[0].Message)
}

func TestIndentationConsistentSpacesDetectsViolation(t *testing.T) {
	problems := check(t, "  indentation:\n    spaces: consistent\n", "top:\n  a: 1\nother:\n   b: 2\n")
	matches := findRule(problems, "indentation")
	require.Len(t, matches, 1, "the first nested key establishes the step, the second must match it")
	assert.Equal(t, 4, matches[0].Line)
}

func TestIndentationSequencesConsistentDetectsMixedStyles(t *testing.T) {
	problems := check(t, "  indentation:\n    spaces: consistent\n    indent-sequences: consistent\n",
		"a:\n- 1\nb:\n  - 2\n")
	matches := findRule(problems, "indentation")
	require.Len(t, matches, 1)
	assert.Equal(t, "wrong indentation: expected 0 but found 2", matches[0].Message)
}

func TestKeyDuplicatesDetected(t *testing.T) {
	problems := check(t, "  key-duplicates: enable\n", "a: 1\na: 2\n")
	assert.Len(t, findRule(problems, "key-duplicates"), 1)
}

func TestAnchorsUndeclaredAlias(t *testing.T) {
	problems := check(t, "  anchors: enable\n", "a: *missing\n")
	assert.NotEmpty(t, findRule(problems, "anchors"))
}
