package layout

import (
	"testing"
	"time"
)

func TestBoxAlignment(t *testing.T) {
	tests := []struct {
		name string
		doc  Doc
		want string
	}{
		{"left block pads with elidable spaces", LBlock(5, Text("hi")), "hi\n"},
		{"right block", RBlock(4, Text("ab")), "  ab\n"},
		{"centered block", CBlock(5, Text("hi")), " hi\n"},
		{"centered block even gap", CBlock(6, Text("hi")), "  hi\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.doc, -1); got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoxPaddingObservableBesideNeighbor(t *testing.T) {
	// Standalone, a block's trailing padding is elided at the line end;
	// with a right-hand neighbor it becomes interior spacing.
	d := Concat(CBlock(4, Text("ab")), Literal("!"))
	if got, want := Render(d, -1), " ab !\n"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestBoxesSideBySide(t *testing.T) {
	d := Concat(LBlock(3, Text("a\nb")), LBlock(2, Text("x")))
	if got, want := Render(d, -1), "a  x\nb\n"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestBoxesVerticalFill(t *testing.T) {
	d := Concat(LBlock(3, Text("a\nb\nc")), LBlock(3, VFill("|")))
	if got, want := Render(d, -1), "a  |\nb  |\nc  |\n"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestBoxWrapsItsInterior(t *testing.T) {
	d := Box(4, Concat(Literal("aa"), Space(), Literal("bb"), Space(), Literal("cc")))
	if got, want := Render(d, -1), "aa\nbb\ncc"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestNestedBoxes(t *testing.T) {
	d := Box(6, Concat(Literal("x"), Box(2, Text("p\nq"))))
	if got, want := Render(d, -1), "xp\n q"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestPrefixed(t *testing.T) {
	t.Run("repeats the prefix down the left edge", func(t *testing.T) {
		d := Prefixed("> ", Text("x\ny"))
		if got, want := Render(d, -1), "> x\n> y"; got != want {
			t.Errorf("Render = %q, want %q", got, want)
		}
	})

	t.Run("wrapping accounts for the prefix width", func(t *testing.T) {
		d := Prefixed("> ", HSep(Literal("one"), Literal("two"), Literal("three")))
		if got, want := Render(d, 9), "> one two\n> three"; got != want {
			t.Errorf("Render = %q, want %q", got, want)
		}
	})
}

func TestResizableBox(t *testing.T) {
	t.Run("sizes to the minimal width", func(t *testing.T) {
		d := ResizableBox(-1, -1, Concat(Literal("ab"), Space(), Literal("c")))
		if got := d.Atoms()[0].Width; got != 2 {
			t.Errorf("width = %d, want 2", got)
		}
	})

	t.Run("clamps to the lower bound", func(t *testing.T) {
		d := ResizableBox(3, -1, Literal("a"))
		if got := d.Atoms()[0].Width; got != 3 {
			t.Errorf("width = %d, want 3", got)
		}
	})

	t.Run("clamps to the upper bound", func(t *testing.T) {
		d := ResizableBox(-1, 2, Literal("abcd"))
		if got := d.Atoms()[0].Width; got != 2 {
			t.Errorf("width = %d, want 2", got)
		}
	})
}

func TestBoxNegativeWidthIsZero(t *testing.T) {
	if got := Box(-5, Literal("x")).Atoms()[0].Width; got != 0 {
		t.Errorf("width = %d, want 0", got)
	}
}

// countingHooks counts compose events for hook-wiring assertions.
type countingHooks struct {
	starts, boxes int
}

func (c *countingHooks) OnRenderStart(string, int, int) { c.starts++ }

func (c *countingHooks) OnRenderComplete(string, int, int, int, time.Duration) {}

func (c *countingHooks) OnBoxCompose(string, int, int) { c.boxes++ }

func TestRenderReportsBoxCompose(t *testing.T) {
	hooks := &countingHooks{}
	d := Concat(LBlock(3, Text("a")), LBlock(3, Text("b")))
	Render(d, -1, WithHooks(hooks))

	if hooks.boxes != 2 {
		t.Errorf("box compose events = %d, want 2", hooks.boxes)
	}
	// One pass for the document plus one per box interior.
	if hooks.starts != 3 {
		t.Errorf("render start events = %d, want 3", hooks.starts)
	}
}
