package layout

import "testing"

func kinds(d Doc) []Kind {
	out := make([]Kind, len(d.atoms))
	for i, a := range d.atoms {
		out[i] = a.Kind
	}
	return out
}

func equalKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNormalizeMergesText(t *testing.T) {
	atoms := normalize([]Atom{
		textAtom(FillNone, 1, "a"),
		textAtom(FillNone, 1, "b"),
		textAtom(FillNone, 1, "c"),
	})
	if len(atoms) != 1 {
		t.Fatalf("normalize produced %d atoms, want 1", len(atoms))
	}
	if atoms[0].Text != "abc" || atoms[0].Width != 3 {
		t.Errorf("merged atom = %q width %d, want \"abc\" width 3", atoms[0].Text, atoms[0].Width)
	}
}

func TestNormalizeKeepsDistinctFills(t *testing.T) {
	atoms := normalize([]Atom{
		textAtom(FillNone, 1, "a"),
		textAtom(FillVertical, 1, "|"),
	})
	if len(atoms) != 2 {
		t.Fatalf("normalize produced %d atoms, want 2", len(atoms))
	}
}

func TestNormalizeMergesBlanks(t *testing.T) {
	atoms := normalize([]Atom{
		{Kind: KindBlanks, Count: 2},
		{Kind: KindBlanks, Count: 3},
	})
	if len(atoms) != 1 || atoms[0].Count != 3 {
		t.Fatalf("normalize = %+v, want one Blanks(3)", atoms)
	}
}

func TestNormalizeIsStable(t *testing.T) {
	in := []Atom{
		textAtom(FillNone, 1, "a"),
		{Kind: KindNewline},
		textAtom(FillNone, 1, "b"),
		{Kind: KindSoftSpace, Width: 1},
		textAtom(FillNone, 1, "c"),
	}
	out := normalize(in)
	if len(out) != len(in) {
		t.Fatalf("normalize changed length: %d -> %d", len(in), len(out))
	}
	for i := range in {
		if out[i].Kind != in[i].Kind {
			t.Errorf("atom %d: kind %v, want %v", i, out[i].Kind, in[i].Kind)
		}
	}
}

func TestChomp(t *testing.T) {
	t.Run("strips trailing breaks and spaces", func(t *testing.T) {
		d := Concat(Literal("a"), Space(), CR(), BlankLines(2)).Chomp()
		if got, want := kinds(d), []Kind{KindText}; !equalKinds(got, want) {
			t.Errorf("kinds = %v, want %v", got, want)
		}
	})

	t.Run("preserves trailing pops", func(t *testing.T) {
		d := AlignLeft(Literal("a")).Chomp()
		want := []Kind{KindPushAlignment, KindText, KindPopAlignment}
		if got := kinds(d); !equalKinds(got, want) {
			t.Errorf("kinds = %v, want %v", got, want)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		d := Concat(Nest(2, Literal("a")), Space(), CR())
		once := d.Chomp()
		twice := once.Chomp()
		if !equalKinds(kinds(once), kinds(twice)) {
			t.Errorf("chomp not idempotent: %v vs %v", kinds(once), kinds(twice))
		}
	})

	t.Run("all-blank document chomps to empty", func(t *testing.T) {
		d := Concat(Space(), CR(), BlankLine()).Chomp()
		if len(d.atoms) != 0 {
			t.Errorf("atoms = %v, want none", kinds(d))
		}
	})
}

func TestNestle(t *testing.T) {
	t.Run("strips leading breaks", func(t *testing.T) {
		d := Concat(CR(), BlankLines(2), Literal("a")).Nestle()
		if got, want := kinds(d), []Kind{KindText}; !equalKinds(got, want) {
			t.Errorf("kinds = %v, want %v", got, want)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		d := Concat(BlankLine(), CR(), Literal("a"), CR())
		once := d.Nestle()
		twice := once.Nestle()
		if !equalKinds(kinds(once), kinds(twice)) {
			t.Errorf("nestle not idempotent: %v vs %v", kinds(once), kinds(twice))
		}
	})
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		doc  Doc
		want bool
	}{
		{"zero doc", Doc{}, true},
		{"soft space only", Space(), true},
		{"empty nest scope", Nest(2, Doc{}), true},
		{"empty box", Box(3, Doc{}), true},
		{"text", Literal("x"), false},
		{"newline", CR(), false},
		{"blank lines", BlankLine(), false},
		{"box with content", Box(3, Literal("x")), false},
		{"empty literal", Literal(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty = %v, want %v", got, tt.want)
			}
			if tt.want {
				for _, width := range []int{-1, 0, 7} {
					if out := Render(tt.doc, width); out != "" {
						t.Errorf("empty doc rendered %q at width %d", out, width)
					}
				}
			}
		})
	}
}

func TestNoWrap(t *testing.T) {
	d := softDoc().NoWrap()
	if got, want := Render(d, 6), "aaaa bbbb"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
	// Explicit breaks survive.
	d2 := Concat(Literal("a"), CR(), Literal("b")).NoWrap()
	if got, want := Render(d2, 1), "a\nb"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestConcatDoesNotAliasInputs(t *testing.T) {
	a := Literal("a")
	joined := Concat(a, Literal("b"))
	joined.atoms[0].Text = "mutated"
	if a.atoms[0].Text != "a" {
		t.Errorf("Concat aliased its input: %q", a.atoms[0].Text)
	}
}

func TestAtomsReturnsCopy(t *testing.T) {
	d := Literal("x")
	got := d.Atoms()
	got[0].Text = "mutated"
	if d.atoms[0].Text != "x" {
		t.Errorf("Atoms exposed internal state: %q", d.atoms[0].Text)
	}
}
