package rules

import "unicode/utf8"

// runeLen returns the number of UTF-8 runes in s, used to turn a byte
// prefix length into a 1-based column (columns count characters, not
// bytes, per the span invariant).
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// byteColToRuneCol converts a 0-based byte offset within line into a
// 1-based rune column.
func byteColToRuneCol(line string, byteOffset int) int {
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	return runeLen(line[:byteOffset]) + 1
}
