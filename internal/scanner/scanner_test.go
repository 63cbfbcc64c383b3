package scanner

import "testing"

func TestFindCommentStartOutsideQuotes(t *testing.T) {
	var q QuoteState
	idx := q.FindCommentStart(`key: value  # trailing`)
	if idx != 12 {
		t.Errorf("FindCommentStart = %d, want 12", idx)
	}
}

func TestFindCommentStartInsideQuotesIgnored(t *testing.T) {
	var q QuoteState
	idx := q.FindCommentStart(`key: "a # b"`)
	if idx != -1 {
		t.Errorf("FindCommentStart = %d, want -1", idx)
	}
}

func TestFindCommentStartRequiresBoundary(t *testing.T) {
	var q QuoteState
	idx := q.FindCommentStart(`key: a#b`)
	if idx != -1 {
		t.Errorf("FindCommentStart = %d, want -1 (not preceded by whitespace)", idx)
	}
}

func TestBlockTrackerConsumesBody(t *testing.T) {
	var b BlockTracker
	lines := []struct {
		indent  int
		content string
	}{
		{0, "key: |"},
		{2, "line one"},
		{2, "line two"},
		{0, "next: value"},
	}
	var consumed []bool
	for _, l := range lines {
		c := b.ConsumeLine(l.indent, l.content)
		consumed = append(consumed, c)
		if !c {
			b.ObserveIndicator(l.indent, l.content)
		}
	}
	want := []bool{false, true, true, false}
	for i := range want {
		if consumed[i] != want[i] {
			t.Errorf("line %d: consumed = %v, want %v", i, consumed[i], want[i])
		}
	}
}

func TestBlockTrackerNarrowingIndent(t *testing.T) {
	var b BlockTracker
	b.ObserveIndicator(0, "key: |")
	if !b.ConsumeLine(4, "    deep") {
		t.Fatal("expected first body line consumed")
	}
	if !b.ConsumeLine(2, "  shallower") {
		t.Fatal("expected narrower body line still consumed")
	}
	if b.ConsumeLine(0, "sibling: x") {
		t.Fatal("expected dedented line to end the block scalar")
	}
}
