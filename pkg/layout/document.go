package layout

// Doc is an ordered sequence of atoms. The zero value is the empty
// document. Docs are values: constructors and transforms return new Docs
// and never mutate their inputs.
type Doc struct {
	atoms []Atom
}

func atomDoc(a Atom) Doc {
	return Doc{atoms: []Atom{a}}
}

// Concat joins documents in order. It is associative, with the zero Doc
// as identity.
func Concat(ds ...Doc) Doc {
	n := 0
	for _, d := range ds {
		n += len(d.atoms)
	}
	if n == 0 {
		return Doc{}
	}
	atoms := make([]Atom, 0, n)
	for _, d := range ds {
		atoms = append(atoms, d.atoms...)
	}
	return Doc{atoms: atoms}
}

// Atoms returns a copy of the document's atom sequence, in emission
// order.
func (d Doc) Atoms() []Atom {
	out := make([]Atom, len(d.atoms))
	copy(out, d.atoms)
	return out
}

// IsEmpty reports whether every atom is non-printing: no text with a
// positive width, no blank-line or newline directives, and no box with
// printable content. Rendering an empty document yields "" at any width.
func (d Doc) IsEmpty() bool {
	for _, a := range d.atoms {
		switch a.Kind {
		case KindText:
			if a.Width > 0 {
				return false
			}
		case KindNewline, KindBlanks:
			return false
		case KindBox:
			if !a.Inner.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Chomp strips trailing soft spaces, newlines and blank-line directives.
// Trailing nesting and alignment pushes and pops are preserved so scopes
// still close correctly; pair pushes with pops before chomping.
func (d Doc) Chomp() Doc {
	tail := make([]Atom, 0, 4)
	i := len(d.atoms) - 1
scan:
	for ; i >= 0; i-- {
		a := d.atoms[i]
		switch a.Kind {
		case KindPushNesting, KindPopNesting, KindPushAlignment, KindPopAlignment:
			tail = append(tail, a)
		case KindSoftSpace, KindNewline, KindBlanks:
			// stripped
		default:
			break scan
		}
	}
	atoms := make([]Atom, 0, i+1+len(tail))
	atoms = append(atoms, d.atoms[:i+1]...)
	for j := len(tail) - 1; j >= 0; j-- {
		atoms = append(atoms, tail[j])
	}
	return Doc{atoms: atoms}
}

// Nestle strips leading newlines and blank-line directives.
func (d Doc) Nestle() Doc {
	i := 0
	for i < len(d.atoms) {
		k := d.atoms[i].Kind
		if k != KindNewline && k != KindBlanks {
			break
		}
		i++
	}
	atoms := make([]Atom, len(d.atoms)-i)
	copy(atoms, d.atoms[i:])
	return Doc{atoms: atoms}
}

// NoWrap replaces every soft space in the document's own stream with an
// ordinary space, so rendering introduces no breaks beyond explicit
// newlines. Box interiors are unaffected: they wrap at their declared
// width.
func (d Doc) NoWrap() Doc {
	atoms := make([]Atom, len(d.atoms))
	copy(atoms, d.atoms)
	for i, a := range atoms {
		if a.Kind == KindSoftSpace {
			atoms[i] = textAtom(FillNone, 1, " ")
		}
	}
	return Doc{atoms: atoms}
}

// normalize collapses the atom stream before layout: adjacent text runs
// with matching fill merge, and adjacent blank-line directives merge to
// their maximum requirement. Non-mergeable atoms retain their order.
func normalize(atoms []Atom) []Atom {
	out := make([]Atom, 0, len(atoms))
	for _, a := range atoms {
		if n := len(out); n > 0 {
			prev := &out[n-1]
			switch {
			case a.Kind == KindText && prev.Kind == KindText && a.Fill == prev.Fill:
				prev.Width += a.Width
				prev.Text += a.Text
				continue
			case a.Kind == KindBlanks && prev.Kind == KindBlanks:
				if a.Count > prev.Count {
					prev.Count = a.Count
				}
				continue
			}
		}
		out = append(out, a)
	}
	return out
}
