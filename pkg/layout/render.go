package layout

import "time"

// Render lays out d and serializes it. A negative width disables
// wrapping; width 0 is minimal-width mode, where every soft space becomes
// a break. Output is UTF-8 with "\n" separators; the final line carries a
// trailing newline only when a newline or blank-line directive closes it
// (the alignment constructors, and so the blocks, end with a newline).
func Render(d Doc, width int, opts ...Option) string {
	lines, _ := layoutDoc(d, width, newConfig(opts))
	return serialize(lines)
}

// GetDimensions lays out d at the given wrap width and reports the
// maximum printable line width observed and the number of emitted lines.
// Content wider than the wrap width is reflected as-is; nothing is
// truncated.
func GetDimensions(d Doc, width int, opts ...Option) (maxWidth, height int) {
	lines, w := layoutDoc(d, width, newConfig(opts))
	return w, len(lines)
}

// Offset is the width d occupies when rendered without wrapping.
func Offset(d Doc) int {
	w, _ := GetDimensions(d, -1)
	return w
}

// MinOffset is the width d occupies in minimal-width mode, i.e. the
// widest run that no soft space can break.
func MinOffset(d Doc) int {
	w, _ := GetDimensions(d, 0)
	return w
}

// Height is the number of lines d occupies when rendered without
// wrapping.
func Height(d Doc) int {
	_, h := GetDimensions(d, -1)
	return h
}

// layoutDoc runs the full pipeline: normalize, interpret, compose boxes.
func layoutDoc(d Doc, lineLength int, cfg config) ([]Line, int) {
	start := time.Now()
	atoms := normalize(d.atoms)
	cfg.hooks.OnRenderStart(cfg.spanID, lineLength, len(atoms))
	cfg.debugf("layout: %d atoms at lineLength=%d", len(atoms), lineLength)

	st := newRenderState(lineLength)
	st.run(atoms)
	st.flush(false)

	lines := composeBoxes(st.lines, cfg)
	cfg.hooks.OnRenderComplete(cfg.spanID, lineLength, st.actualWidth, len(lines), time.Since(start))
	cfg.debugf("layout: %d lines, width=%d", len(lines), st.actualWidth)
	return lines, st.actualWidth
}

// renderState is the mutable state of one interpreter pass. It is owned
// by value per render; nothing escapes.
type renderState struct {
	column     int
	nesting    []int
	curNesting int
	alignment  []Alignment
	curAlign   Alignment
	lineLength int // negative: no wrapping
	blanks     int // trailing blank lines emitted; negative: nothing emitted yet

	line         []Atom
	hasPrintable bool // margin already injected for the current line

	lines       []Line
	actualWidth int
}

func newRenderState(lineLength int) *renderState {
	return &renderState{
		nesting:    []int{0},
		alignment:  []Alignment{AlignmentLeft},
		lineLength: lineLength,
		blanks:     -1,
	}
}

// run consumes the normalized stream. Lazy atoms expand onto a worklist
// so arbitrarily chained conditionals cannot recurse.
func (st *renderState) run(atoms []Atom) {
	work := [][]Atom{atoms}
	for len(work) > 0 {
		seg := work[len(work)-1]
		if len(seg) == 0 {
			work = work[:len(work)-1]
			continue
		}
		a := seg[0]
		work[len(work)-1] = seg[1:]

		switch a.Kind {
		case KindWithColumn:
			if a.ColumnFn != nil {
				if ex := normalize(a.ColumnFn(st.column).atoms); len(ex) > 0 {
					work = append(work, ex)
				}
			}

		case KindWithLineLength:
			if a.WidthFn != nil {
				if ex := normalize(a.WidthFn(st.lineLength).atoms); len(ex) > 0 {
					work = append(work, ex)
				}
			}

		case KindPushNesting:
			n := a.Nest.apply(st.column, st.nesting[len(st.nesting)-1])
			st.nesting = append(st.nesting, n)
			st.curNesting = n
			if len(st.line) == 0 {
				st.column = n
			}

		case KindPopNesting:
			if len(st.nesting) > 1 {
				st.nesting = st.nesting[:len(st.nesting)-1]
			}
			if len(st.line) == 0 {
				st.curNesting = st.nesting[len(st.nesting)-1]
				st.column = st.curNesting
			}

		case KindPushAlignment:
			st.alignment = append(st.alignment, a.Align)
			st.curAlign = a.Align

		case KindPopAlignment:
			if len(st.alignment) > 1 {
				st.alignment = st.alignment[:len(st.alignment)-1]
			}
			if len(st.line) == 0 {
				st.curAlign = st.alignment[len(st.alignment)-1]
			}

		case KindText, KindBox:
			st.appendContent(a)

		case KindSoftSpace:
			if st.lineLength >= 0 && st.column > st.lineLength {
				st.spill()
			}
			// A soft space at line start is discarded.
			if len(st.line) > 0 {
				st.line = append(st.line, a)
				st.column++
			}

		case KindNewline:
			st.flush(true)

		case KindBlanks:
			st.flush(true)
			n := a.Count
			if n < 0 {
				n = 0
			}
			// Blanks are suppressed before any output and at end of
			// stream.
			if st.blanks >= 0 && !drained(work) {
				for st.blanks < n {
					st.lines = append(st.lines, Line{NeedsNewline: true})
					st.blanks++
				}
			}
		}
	}
}

func drained(work [][]Atom) bool {
	for _, seg := range work {
		if len(seg) > 0 {
			return false
		}
	}
	return true
}

// appendContent places a text or box atom on the current line, injecting
// the margin before the line's first printable atom.
func (st *renderState) appendContent(a Atom) {
	if !st.hasPrintable && (a.Kind == KindBox || a.Width > 0) {
		if st.curNesting > 0 {
			// The margin width is already accounted for in column.
			st.line = append(st.line, spacesAtom(st.curNesting))
		}
		st.hasPrintable = true
	}
	st.line = append(st.line, a)
	st.column += a.Width
}

// spill resolves overflow: while the line exceeds the wrap width and
// still holds a soft space, it splits at the rightmost one, emits the
// head as a completed line, and keeps the remainder in flight behind a
// fresh margin. A line with no soft space left is emitted overlong later.
func (st *renderState) spill() {
	for st.lineLength >= 0 && st.column > st.lineLength {
		cut := -1
		for i := len(st.line) - 1; i >= 0; i-- {
			if st.line[i].Kind == KindSoftSpace {
				cut = i
				break
			}
		}
		if cut < 0 {
			return
		}
		rest := make([]Atom, len(st.line)-cut-1)
		copy(rest, st.line[cut+1:])
		st.emit(st.line[:cut:cut], true)

		st.line = nil
		st.hasPrintable = false
		st.column = st.curNesting
		if len(rest) > 0 {
			if st.curNesting > 0 {
				st.line = append(st.line, spacesAtom(st.curNesting))
			}
			st.hasPrintable = true
			st.line = append(st.line, rest...)
			for _, a := range rest {
				st.column += a.Width
			}
		}
	}
}

// flush closes the current line: overflow is spilled, the remainder is
// emitted with the given newline flag, and the deferred nesting and
// alignment pops take effect for the next line.
func (st *renderState) flush(forced bool) {
	st.spill()
	st.emit(st.line, forced)
	st.line = nil
	st.hasPrintable = false
	st.curNesting = st.nesting[len(st.nesting)-1]
	st.curAlign = st.alignment[len(st.alignment)-1]
	st.column = st.curNesting
}

// emit appends one output line built from atoms. Trailing soft spaces are
// stripped first; lines with no printable width produce no output.
// Alignment padding applies only when wrapping is enabled.
func (st *renderState) emit(atoms []Atom, needsNewline bool) {
	end := len(atoms)
	for end > 0 && atoms[end-1].Kind == KindSoftSpace {
		end--
	}
	atoms = atoms[:end:end]

	width := 0
	hasBox := false
	for _, a := range atoms {
		width += a.Width
		if a.Kind == KindBox {
			hasBox = true
		}
	}
	if width > st.actualWidth {
		st.actualWidth = width
	}
	if width == 0 && !hasBox {
		return
	}
	st.blanks = 0

	if st.lineLength >= 0 && width > 0 {
		if pad := st.lineLength - width; pad > 0 {
			switch st.curAlign {
			case AlignmentRight:
				atoms = append([]Atom{spacesAtom(pad)}, atoms...)
			case AlignmentCenter:
				left := pad / 2
				if left > 0 {
					atoms = append([]Atom{spacesAtom(left)}, atoms...)
				}
				for i := 0; i < st.lineLength-left-width; i++ {
					atoms = append(atoms, softSpaceAtom())
				}
			default:
				for i := 0; i < pad; i++ {
					atoms = append(atoms, softSpaceAtom())
				}
			}
		}
	}

	st.lines = append(st.lines, Line{NeedsNewline: needsNewline, Atoms: atoms})
}
