package layout

import (
	"testing"

	"github.com/BurntSushi/toml"
)

// goldenDocs names the documents the golden corpus can reference.
var goldenDocs = map[string]Doc{
	"soft-wrap":      Concat(Literal("aaaa"), Space(), Literal("bbbb")),
	"blank-coalesce": Concat(Literal("x"), BlankLines(2), BlankLines(3), Literal("y")),
	"hang":           Hang(2, Literal("-"), Concat(Literal("foo"), Space(), Literal("bar"))),
	"cjk":            Literal("日本"),
	"nest":           Nest(2, Text("a\nb")),
	"flush":          Nest(4, Concat(Literal("a"), CR(), Flush(Literal("b")), CR(), Literal("c"))),
	"align-right":    AlignRight(Literal("hi")),
	"prefixed":       Prefixed("> ", Text("x\ny")),
	"vfill-blocks":   Concat(LBlock(3, Text("a\nb\nc")), LBlock(3, VFill("|"))),
}

type goldenCase struct {
	Name  string `toml:"name"`
	Doc   string `toml:"doc"`
	Width int    `toml:"width"`
	Want  string `toml:"want"`
}

type goldenFile struct {
	Cases []goldenCase `toml:"case"`
}

func TestGoldenCorpus(t *testing.T) {
	var corpus goldenFile
	if _, err := toml.DecodeFile("testdata/cases.toml", &corpus); err != nil {
		t.Fatalf("decode corpus: %v", err)
	}
	if len(corpus.Cases) == 0 {
		t.Fatal("corpus is empty")
	}

	for _, tc := range corpus.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			d, ok := goldenDocs[tc.Doc]
			if !ok {
				t.Fatalf("unknown doc %q", tc.Doc)
			}
			if got := Render(d, tc.Width); got != tc.Want {
				t.Errorf("Render(%q, %d) = %q, want %q", tc.Doc, tc.Width, got, tc.Want)
			}
		})
	}
}
