package scanner

import "strings"

// BlockTracker follows a source buffer line by line and reports whether
// each line is consumed as the body of a literal/folded block scalar (one
// introduced by "|", "|-", "|+", ">", ">-", or ">+"). It is the shared
// primitive behind rules that must not mistake block-scalar body text for
// comments or structural content: comments, comments-indentation.
type BlockTracker struct {
	active        bool
	indicatorIndent int
	contentIndent   int // -1 until the first non-empty body line sets it
}

// ConsumeLine reports whether the line at the given indent/content (content
// is the line with its leading indent already stripped) is inside the
// current block scalar's body. It must be called once per line, in order,
// interleaved with ObserveIndicator calls on lines it does NOT consume.
func (b *BlockTracker) ConsumeLine(indent int, content string) bool {
	if !b.active {
		return false
	}
	if strings.TrimSpace(content) == "" {
		return true
	}
	if b.contentIndent >= 0 {
		if indent >= b.contentIndent {
			return true
		}
		if indent <= b.indicatorIndent {
			b.active = false
			return false
		}
		if indent < b.contentIndent {
			b.contentIndent = indent
		}
		return true
	}
	if indent > b.indicatorIndent {
		b.contentIndent = indent
		return true
	}
	b.active = false
	return false
}

// ObserveIndicator checks whether the (non-consumed) line at indent ends
// its trimmed, comment-stripped content with a block scalar indicator, and
// if so, arms the tracker so following lines are treated as its body.
func (b *BlockTracker) ObserveIndicator(indent int, content string) {
	candidate := strings.TrimRight(StripTrailingComment(content), " \t")
	if isBlockScalarIndicator(candidate) {
		b.active = true
		b.indicatorIndent = indent
		b.contentIndent = -1
	}
}

func isBlockScalarIndicator(s string) bool {
	if s == "" {
		return false
	}
	for _, suf := range []string{"|-", "|+", "|", ">-", ">+", ">"} {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// LeadingIndent returns the number of leading spaces/tabs in line.
func LeadingIndent(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}
