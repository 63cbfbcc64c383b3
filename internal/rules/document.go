package rules

import (
	"bytes"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yamllint-go/yamllint/internal/span"
)

// Document is the shared context every rule checks against: the raw
// buffer, its line/column lookup table, the buffer split into lines (
// terminator stripped), and the parsed YAML node stream (one *yaml.Node
// per top-level document in the stream). SyntaxError is set when the
// buffer could not be parsed as YAML at all; lint.File collapses
// that into a single syntax diagnostic instead of running rule checks.
type Document struct {
	Buffer      []byte
	Spans       *span.Table
	Lines       []string
	Docs        []*yaml.Node
	SyntaxError error
}

// NewDocument scans buf into lines and parses it as a (possibly
// multi-document) YAML stream.
func NewDocument(buf []byte) *Document {
	d := &Document{
		Buffer: buf,
		Spans:  span.NewTable(buf),
	}
	d.Lines = splitLines(buf)

	dec := yaml.NewDecoder(bytes.NewReader(buf))
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if err == io.EOF {
			break
		}
		if err != nil {
			d.SyntaxError = err
			break
		}
		if len(node.Content) > 0 {
			d.Docs = append(d.Docs, node.Content[0])
		} else {
			d.Docs = append(d.Docs, &node)
		}
	}
	return d
}

func splitLines(buf []byte) []string {
	text := string(buf)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return []string{""}
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// LineCount reports how many physical lines the buffer contains.
func (d *Document) LineCount() int { return len(d.Lines) }

// Line returns the content of the given 1-based line number, or "" if
// out of range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}
	return d.Lines[n-1]
}

// EndsWithNewline reports whether the raw buffer's last byte is a line
// terminator.
func (d *Document) EndsWithNewline() bool {
	if len(d.Buffer) == 0 {
		return true
	}
	return d.Buffer[len(d.Buffer)-1] == '\n' || d.Buffer[len(d.Buffer)-1] == '\r'
}
