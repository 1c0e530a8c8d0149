package layout

// composeBoxes post-processes laid-out lines: any line holding box atoms
// expands into the rows of its columns laid side by side. Box interiors
// arrive fully composed from their own recursive layout, so a single pass
// suffices.
func composeBoxes(lines []Line, cfg config) []Line {
	out := make([]Line, 0, len(lines))
	for _, ln := range lines {
		if !lineHasBox(ln) {
			out = append(out, ln)
			continue
		}
		out = append(out, composeLine(ln, cfg)...)
	}
	return out
}

func lineHasBox(ln Line) bool {
	for _, a := range ln.Atoms {
		if a.Kind == KindBox {
			return true
		}
	}
	return false
}

// boxColumn is one cell of a host line under composition: its declared
// width, its sub-lines, and, when the cell is a lone vertical-fill run,
// the atom that fills rows below it.
type boxColumn struct {
	width int
	lines []Line
	vfill *Atom
}

// composeLine lays the host line's atoms out as side-by-side columns.
// Boxes are rendered at their own width; every other atom is a
// single-line column of its own width. Shorter columns are padded to the
// tallest with fill lines, then rows are concatenated across columns.
func composeLine(host Line, cfg config) []Line {
	cols := make([]boxColumn, 0, len(host.Atoms))
	maxDepth := 0
	for _, a := range host.Atoms {
		var c boxColumn
		if a.Kind == KindBox {
			sub, _ := layoutDoc(a.Inner, a.Width, cfg)
			cfg.hooks.OnBoxCompose(cfg.spanID, a.Width, len(sub))
			c = boxColumn{width: a.Width, lines: sub}
		} else {
			c = boxColumn{
				width: a.Width,
				lines: []Line{{NeedsNewline: host.NeedsNewline, Atoms: []Atom{a}}},
			}
		}
		c.vfill = vfillFor(c)
		if len(c.lines) > maxDepth {
			maxDepth = len(c.lines)
		}
		cols = append(cols, c)
	}

	rows := make([]Line, maxDepth)
	for ci, c := range cols {
		rightmost := ci == len(cols)-1
		for ri := 0; ri < maxDepth; ri++ {
			var src Line
			if ri < len(c.lines) {
				src = c.lines[ri]
			} else {
				src = fillLine(c, rightmost, ri == maxDepth-1, host.NeedsNewline)
			}
			rows[ri].Atoms = append(rows[ri].Atoms, src.Atoms...)
			rows[ri].NeedsNewline = rows[ri].NeedsNewline || src.NeedsNewline
		}
	}
	return rows
}

// vfillFor recognizes a column whose sole line is a single vertical-fill
// run, ignoring padding soft spaces. Such a column repeats its payload on
// every fill row, claiming the column width.
func vfillFor(c boxColumn) *Atom {
	if len(c.lines) != 1 {
		return nil
	}
	var text *Atom
	for i := range c.lines[0].Atoms {
		a := &c.lines[0].Atoms[i]
		if a.Kind == KindSoftSpace {
			continue
		}
		if a.Kind != KindText || a.Fill != FillVertical || text != nil {
			return nil
		}
		text = a
	}
	if text == nil {
		return nil
	}
	fill := textAtom(FillVertical, c.width, text.Text)
	return &fill
}

// fillLine builds the padding row for a column shorter than its
// neighbors: the vertical-fill payload when the column has one, nothing
// for the rightmost column, and soft spaces otherwise. The last fill row
// carries the host line's newline flag.
func fillLine(c boxColumn, rightmost, last, hostNewline bool) Line {
	nl := last && hostNewline
	switch {
	case c.vfill != nil:
		if !last {
			nl = true
		}
		return Line{NeedsNewline: nl, Atoms: []Atom{*c.vfill}}
	case rightmost:
		return Line{NeedsNewline: nl}
	default:
		atoms := make([]Atom, c.width)
		for i := range atoms {
			atoms[i] = softSpaceAtom()
		}
		return Line{NeedsNewline: nl, Atoms: atoms}
	}
}
