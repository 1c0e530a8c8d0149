package layout

import (
	"strings"

	"github.com/sjakobi/doclayout/pkg/textwidth"
)

// Literal builds a printable run from s, which must not contain a
// newline. Its display width is measured in terminal columns.
func Literal(s string) Doc {
	return atomDoc(textAtom(FillNone, textwidth.StringWidth(s), s))
}

// Text splits s on newlines and joins the pieces with line breaks.
func Text(s string) Doc {
	parts := strings.Split(s, "\n")
	atoms := make([]Atom, 0, 2*len(parts)-1)
	for i, p := range parts {
		if i > 0 {
			atoms = append(atoms, Atom{Kind: KindNewline})
		}
		atoms = append(atoms, textAtom(FillNone, textwidth.StringWidth(p), p))
	}
	return Doc{atoms: atoms}
}

// Char builds a printable run holding the single character r.
func Char(r rune) Doc {
	return atomDoc(textAtom(FillNone, textwidth.Width(r), string(r)))
}

// VFill builds a printable run that, when it is the sole content of a box
// column, repeats downward to match the height of neighboring columns.
func VFill(s string) Doc {
	return atomDoc(textAtom(FillVertical, textwidth.StringWidth(s), s))
}

// Space is a breaking space: it renders as a single space, may become a
// line break when the line overflows, and disappears at line ends.
func Space() Doc {
	return atomDoc(softSpaceAtom())
}

// CR breaks the current line.
func CR() Doc {
	return atomDoc(Atom{Kind: KindNewline})
}

// BlankLine requires at least one blank line at this point.
func BlankLine() Doc {
	return BlankLines(1)
}

// BlankLines requires at least n blank lines at this point. It is a no-op
// at the start of a document, and negative counts are treated as zero.
func BlankLines(n int) Doc {
	if n < 0 {
		n = 0
	}
	return atomDoc(Atom{Kind: KindBlanks, Count: n})
}

// WithColumn expands to f applied to the column the next character would
// occupy.
func WithColumn(f func(col int) Doc) Doc {
	return atomDoc(Atom{Kind: KindWithColumn, ColumnFn: f})
}

// WithLineLength expands to f applied to the ambient wrap width, or a
// negative value when wrapping is disabled.
func WithLineLength(f func(lineLength int) Doc) Doc {
	return atomDoc(Atom{Kind: KindWithLineLength, WidthFn: f})
}

func nesting(f NestFunc, d Doc) Doc {
	atoms := make([]Atom, 0, len(d.atoms)+2)
	atoms = append(atoms, Atom{Kind: KindPushNesting, Nest: f})
	atoms = append(atoms, d.atoms...)
	atoms = append(atoms, Atom{Kind: KindPopNesting})
	return Doc{atoms: atoms}
}

// Nest indents the lines of d by k columns relative to the enclosing
// margin.
func Nest(k int, d Doc) Doc {
	return nesting(NestFunc{Kind: NestDelta, N: k}, d)
}

// Flush renders d against the left edge, ignoring the enclosing margin.
func Flush(d Doc) Doc {
	return nesting(NestFunc{Kind: NestConstant, N: 0}, d)
}

// Aligned indents the continuation lines of d to the column where d
// begins.
func Aligned(d Doc) Doc {
	return nesting(NestFunc{Kind: NestColumn}, d)
}

// Hang lays out start, then body indented by k relative to the enclosing
// margin. A classic hanging indent is Hang(2, Literal("-"), item).
func Hang(k int, start, body Doc) Doc {
	return Concat(start, Nest(k, body))
}

// AfterBreak emits s only when the current column is 0, i.e. at the start
// of an output line with no margin. Inside an indented scope it emits
// nothing.
func AfterBreak(s string) Doc {
	return WithColumn(func(col int) Doc {
		if col == 0 {
			return Text(s)
		}
		return Doc{}
	})
}

// Prefixed prints d with every line prefixed by p. Trailing spaces of p
// become breaking spaces; the rest of the prefix repeats down the left
// edge while d is laid out in a box occupying the remaining width.
func Prefixed(p string, d Doc) Doc {
	return WithColumn(func(col int) Doc {
		return WithLineLength(func(lineLength int) Doc {
			stripped := strings.TrimRight(p, " ")
			atoms := make([]Atom, 0, len(p)-len(stripped)+2)
			atoms = append(atoms, textAtom(FillVertical, textwidth.StringWidth(stripped), stripped))
			for i := 0; i < len(p)-len(stripped); i++ {
				atoms = append(atoms, softSpaceAtom())
			}
			var w int
			if lineLength >= 0 {
				w = lineLength - col - textwidth.StringWidth(p)
			} else {
				w = Offset(d)
			}
			return Concat(Doc{atoms: atoms}, Box(w, d))
		})
	})
}

func aligning(a Alignment, d Doc) Doc {
	atoms := make([]Atom, 0, len(d.atoms)+3)
	atoms = append(atoms, Atom{Kind: KindPushAlignment, Align: a})
	atoms = append(atoms, d.atoms...)
	// Close the scope on a line boundary so padding applies to the last
	// line of d.
	atoms = append(atoms, Atom{Kind: KindNewline}, Atom{Kind: KindPopAlignment})
	return Doc{atoms: atoms}
}

// AlignLeft pads the lines of d with trailing breaking spaces up to the
// wrap width.
func AlignLeft(d Doc) Doc {
	return aligning(AlignmentLeft, d)
}

// AlignRight pads the lines of d with leading spaces up to the wrap
// width.
func AlignRight(d Doc) Doc {
	return aligning(AlignmentRight, d)
}

// AlignCenter centers the lines of d within the wrap width.
func AlignCenter(d Doc) Doc {
	return aligning(AlignmentCenter, d)
}

// HCat joins documents with nothing between them.
func HCat(ds ...Doc) Doc {
	return Concat(ds...)
}

// HSep joins documents with breaking spaces between them.
func HSep(ds ...Doc) Doc {
	return intersperse(softSpaceAtom(), ds)
}

// VCat joins documents with line breaks between them.
func VCat(ds ...Doc) Doc {
	return intersperse(Atom{Kind: KindNewline}, ds)
}

// VSep joins documents with blank lines between them.
func VSep(ds ...Doc) Doc {
	return intersperse(Atom{Kind: KindBlanks, Count: 1}, ds)
}

func intersperse(sep Atom, ds []Doc) Doc {
	n := 0
	for _, d := range ds {
		n += len(d.atoms) + 1
	}
	atoms := make([]Atom, 0, n)
	for i, d := range ds {
		if i > 0 {
			atoms = append(atoms, sep)
		}
		atoms = append(atoms, d.atoms...)
	}
	return Doc{atoms: atoms}
}

// Inside wraps contents between open and close.
func Inside(open, close, contents Doc) Doc {
	return Concat(open, contents, close)
}

// Braces wraps d in curly braces.
func Braces(d Doc) Doc {
	return Inside(Char('{'), Char('}'), d)
}

// Brackets wraps d in square brackets.
func Brackets(d Doc) Doc {
	return Inside(Char('['), Char(']'), d)
}

// Parens wraps d in parentheses.
func Parens(d Doc) Doc {
	return Inside(Char('('), Char(')'), d)
}

// Quotes wraps d in single quotes.
func Quotes(d Doc) Doc {
	return Inside(Char('\''), Char('\''), d)
}

// DoubleQuotes wraps d in double quotes.
func DoubleQuotes(d Doc) Doc {
	return Inside(Char('"'), Char('"'), d)
}
