package rules

import (
	"bytes"
	"runtime"

	"github.com/yamllint-go/yamllint/internal/config"
)

const newLinesID = "new-lines"

func init() {
	Register(newLinesID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, newLinesID)
		return newLinesRule{typ: optString(opts, "type", "unix")}, true
	})
	config.RegisterSchema(newLinesID, config.Schema{
		"type": {Kind: config.OptEnum, Enum: []string{"unix", "dos", "platform"}},
	})
}

type newLinesRule struct{ typ string }

func (newLinesRule) ID() string { return newLinesID }

func (r newLinesRule) Check(doc *Document, level config.RuleLevel) []Problem {
	expected := "\n"
	switch r.typ {
	case "dos":
		expected = "\r\n"
	case "platform":
		if runtime.GOOS == "windows" {
			expected = "\r\n"
		}
	}

	idx := bytes.IndexAny(doc.Buffer, "\n\r")
	if idx < 0 {
		return nil // no line terminator in the buffer at all
	}
	var found string
	if doc.Buffer[idx] == '\r' {
		if idx+1 < len(doc.Buffer) && doc.Buffer[idx+1] == '\n' {
			found = "\r\n"
		} else {
			found = "\r"
		}
	} else {
		found = "\n"
	}
	if found == expected {
		return nil
	}
	escaped := "\\n"
	if expected == "\r\n" {
		escaped = "\\r\\n"
	}
	return []Problem{{
		Line:    1,
		Column:  1,
		Message: "wrong new line character: expected " + escaped,
	}}
}
