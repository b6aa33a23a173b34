package plaintext

import "github.com/mattn/go-runewidth"

// displayWidth is the rendered column width of s: wide CJK runes count as
// two cells, combining marks and zero-width runes as none. Byte or rune
// counts would misalign table columns for non-ASCII cell text.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
