// Package span converts between byte offsets and 1-based (line, column)
// positions over a YAML source buffer. Column is a UTF-8 character count,
// not a byte count, matching the positions rule engines report in Problems.
package span

import "sort"

// Table is a precomputed index of line-start byte offsets for a buffer,
// supporting O(log n) byte-offset -> (line, column) lookups.
type Table struct {
	src        []byte
	lineStarts []int // byte offset of the first byte of each line; lineStarts[0] == 0
}

// NewTable scans buf once and records the start of every line. It treats
// "\n", "\r\n", and a lone "\r" as line terminators.
func NewTable(buf []byte) *Table {
	starts := []int{0}
	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(buf) && buf[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		}
	}
	return &Table{src: buf, lineStarts: starts}
}

// LineCount returns the number of lines in the buffer, counting a trailing
// partial line (one not terminated by a newline) if present.
func (t *Table) LineCount() int {
	last := t.lineStarts[len(t.lineStarts)-1]
	if last == len(t.src) && len(t.src) > 0 {
		return len(t.lineStarts) - 1
	}
	return len(t.lineStarts)
}

// Position converts a byte offset into a 1-based (line, column) pair. column
// counts runes, not bytes, from the start of the line up to offset.
func (t *Table) Position(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.src) {
		offset = len(t.src)
	}
	idx := sort.Search(len(t.lineStarts), func(i int) bool {
		return t.lineStarts[i] > offset
	}) - 1
	if idx < 0 {
		idx = 0
	}
	lineStart := t.lineStarts[idx]
	column = runeCount(t.src[lineStart:offset]) + 1
	return idx + 1, column
}

// LineStart returns the byte offset where 1-based line n begins. Lines past
// the end of the buffer return len(src).
func (t *Table) LineStart(n int) int {
	if n < 1 {
		n = 1
	}
	if n > len(t.lineStarts) {
		return len(t.src)
	}
	return t.lineStarts[n-1]
}

// LineEnd returns the byte offset one past the last content byte of 1-based
// line n (i.e. the offset of its terminator, or len(src) for the last line).
func (t *Table) LineEnd(n int) int {
	start := t.LineStart(n)
	rest := t.src[start:]
	for i := 0; i < len(rest); i++ {
		if rest[i] == '\n' {
			return start + i
		}
		if rest[i] == '\r' {
			return start + i
		}
	}
	return len(t.src)
}

// Line returns the raw bytes of 1-based line n, excluding its terminator.
func (t *Table) Line(n int) []byte {
	return t.src[t.LineStart(n):t.LineEnd(n)]
}

func runeCount(b []byte) int {
	n := 0
	for i := 0; i < len(b); {
		_, size := decodeRune(b[i:])
		i += size
		n++
	}
	return n
}

// decodeRune reports the byte width of the UTF-8 sequence starting at b[0]
// without needing the rune value itself.
func decodeRune(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	c := b[0]
	switch {
	case c < 0x80:
		return rune(c), 1
	case c&0xE0 == 0xC0:
		return rune(c), minInt(2, len(b))
	case c&0xF0 == 0xE0:
		return rune(c), minInt(3, len(b))
	case c&0xF8 == 0xF0:
		return rune(c), minInt(4, len(b))
	default:
		return rune(c), 1
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
