package layout

import "strings"

// Kind discriminates the atom variants of the document stream.
type Kind int

const (
	// KindText is a contiguous printable run with a display width.
	KindText Kind = iota
	// KindNewline breaks the current line.
	KindNewline
	// KindSoftSpace is a single-cell space that may become a line break
	// when the line overflows, and is elided at end of line.
	KindSoftSpace
	// KindPushNesting opens an indentation scope.
	KindPushNesting
	// KindPopNesting closes an indentation scope.
	KindPopNesting
	// KindPushAlignment opens an alignment scope.
	KindPushAlignment
	// KindPopAlignment closes an alignment scope.
	KindPopAlignment
	// KindBlanks requires a number of blank lines at this point.
	KindBlanks
	// KindBox embeds a fixed-width sub-layout as a single cell.
	KindBox
	// KindWithColumn expands lazily from the current column.
	KindWithColumn
	// KindWithLineLength expands lazily from the ambient wrap width.
	KindWithLineLength
)

// Fill distinguishes ordinary text from vertically filling text. A
// vertical-fill run repeats its payload downward when its box column is
// shorter than its neighbors.
type Fill int

const (
	FillNone Fill = iota
	FillVertical
)

// Alignment selects how emitted lines are padded against the wrap width.
type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentRight
	AlignmentCenter
)

// NestKind selects how a nesting scope computes its margin.
type NestKind int

const (
	// NestConstant sets the margin to a fixed column.
	NestConstant NestKind = iota
	// NestDelta offsets the enclosing margin.
	NestDelta
	// NestColumn adopts the current column as the margin.
	NestColumn
)

// NestFunc computes the margin of a new nesting scope from the current
// column and the enclosing margin.
type NestFunc struct {
	Kind NestKind
	N    int
}

func (f NestFunc) apply(col, prev int) int {
	switch f.Kind {
	case NestDelta:
		return prev + f.N
	case NestColumn:
		return col
	default:
		return f.N
	}
}

// Atom is one element of the document stream. Exactly the fields relevant
// to its Kind are set.
type Atom struct {
	Kind  Kind
	Fill  Fill      // KindText
	Width int       // KindText, KindBox; 1 for KindSoftSpace
	Text  string    // KindText payload, never contains a newline
	Nest  NestFunc  // KindPushNesting
	Align Alignment // KindPushAlignment
	Count int       // KindBlanks
	Inner Doc       // KindBox

	// ColumnFn expands a KindWithColumn atom given the current column.
	ColumnFn func(col int) Doc
	// WidthFn expands a KindWithLineLength atom given the wrap width, or
	// a negative value when wrapping is disabled.
	WidthFn func(lineLength int) Doc
}

func textAtom(fill Fill, width int, s string) Atom {
	return Atom{Kind: KindText, Fill: fill, Width: width, Text: s}
}

func spacesAtom(n int) Atom {
	return textAtom(FillNone, n, strings.Repeat(" ", n))
}

func softSpaceAtom() Atom {
	return Atom{Kind: KindSoftSpace, Width: 1}
}

// Line is one laid-out output line: text and soft-space atoms plus a flag
// recording whether the line ends with a newline. Once the compositor has
// run, a Line holds no other atom kinds.
type Line struct {
	NeedsNewline bool
	Atoms        []Atom
}
