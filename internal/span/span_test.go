package span

import "testing"

func TestPositionASCII(t *testing.T) {
	buf := []byte("key: value\nother: 1\n")
	tbl := NewTable(buf)

	cases := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{11, 2, 1},
		{len(buf), 3, 1},
	}
	for _, c := range cases {
		line, col := tbl.Position(c.offset)
		if line != c.wantLine || col != c.wantCol {
			t.Errorf("Position(%d) = (%d,%d), want (%d,%d)", c.offset, line, col, c.wantLine, c.wantCol)
		}
	}
}

func TestPositionUTF8Column(t *testing.T) {
	buf := []byte("café: yes\n")
	// 'é' is 2 bytes; the byte offset of ':' is 5, but its column is 5 (c-a-f-é = 4 chars).
	tbl := NewTable(buf)
	line, col := tbl.Position(5)
	if line != 1 || col != 5 {
		t.Errorf("Position(5) = (%d,%d), want (1,5)", line, col)
	}
}

func TestLineCountTrailingNewline(t *testing.T) {
	if got := NewTable([]byte("a\nb\n")).LineCount(); got != 2 {
		t.Errorf("LineCount() = %d, want 2", got)
	}
	if got := NewTable([]byte("a\nb")).LineCount(); got != 2 {
		t.Errorf("LineCount() = %d, want 2", got)
	}
	if got := NewTable([]byte("")).LineCount(); got != 1 {
		t.Errorf("LineCount() = %d, want 1", got)
	}
}

func TestLineStartsCRLF(t *testing.T) {
	buf := []byte("a\r\nb\r\nc")
	tbl := NewTable(buf)
	if string(tbl.Line(1)) != "a" || string(tbl.Line(2)) != "b" || string(tbl.Line(3)) != "c" {
		t.Errorf("unexpected line splitting: %q %q %q", tbl.Line(1), tbl.Line(2), tbl.Line(3))
	}
}

func TestLineStartsLoneCR(t *testing.T) {
	buf := []byte("a\rb\rc")
	tbl := NewTable(buf)
	if string(tbl.Line(1)) != "a" || string(tbl.Line(2)) != "b" || string(tbl.Line(3)) != "c" {
		t.Errorf("unexpected line splitting: %q %q %q", tbl.Line(1), tbl.Line(2), tbl.Line(3))
	}
}
