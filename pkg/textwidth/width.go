// Package textwidth measures display width of text in terminal columns.
//
// Widths follow the East Asian Width conventions used by monospaced
// terminal emulators: combining diacritical marks (U+0300–U+036F) occupy
// zero columns, CJK and other
// wide characters occupy two, everything else occupies one.
//
// The codepoint partition implemented here is part of the library's
// external contract. Downstream consumers align column layout against
// exactly this table, so any change to it is a breaking change. That is
// also why the table is hand-coded rather than delegated to a Unicode
// library: ecosystem width packages track evolving Unicode data and
// ambiguity policies, and would shift the partition out from under
// callers.
package textwidth

// span maps an inclusive codepoint range to a column width.
type span struct {
	lo, hi rune
	width  int
}

// nonDefault lists every range whose width differs from the default of 1,
// in ascending codepoint order for binary search.
var nonDefault = []span{
	{0x0300, 0x036F, 0}, // combining diacritical marks
	{0x1100, 0x115F, 2}, // hangul jamo (leading consonants)
	{0x11A3, 0x11A7, 2},
	{0x11FA, 0x11FF, 2},
	{0x2329, 0x232A, 2}, // angle brackets
	{0x2E80, 0x303E, 2}, // CJK radicals, CJK symbols
	{0x3041, 0x3247, 2}, // kana, bopomofo, enclosed CJK
	{0x3250, 0x4DBF, 2},
	{0x4E00, 0xA4C6, 2}, // unified ideographs, yi
	{0xA960, 0xA97C, 2},
	{0xAC00, 0xD7FB, 2}, // hangul syllables
	{0xF900, 0xFAFF, 2}, // CJK compatibility ideographs
	{0xFE10, 0xFE19, 2},
	{0xFE30, 0xFE6B, 2}, // CJK compatibility forms
	{0xFF01, 0xFF60, 2}, // fullwidth forms
	{0x1B000, 0x1B001, 2},
	{0x1F200, 0x1F251, 2}, // enclosed ideographic supplement
	{0x20000, 0x3FFFD, 2}, // CJK extension planes
}

// Width reports the number of terminal columns r occupies: 0 for
// combining diacritical marks (U+0300–U+036F), 2 for wide characters, 1
// otherwise.
func Width(r rune) int {
	lo, hi := 0, len(nonDefault)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		s := nonDefault[mid]
		switch {
		case r < s.lo:
			hi = mid - 1
		case r > s.hi:
			lo = mid + 1
		default:
			return s.width
		}
	}
	return 1
}

// StringWidth reports the number of terminal columns s occupies, summing
// Width over its codepoints.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += Width(r)
	}
	return n
}
