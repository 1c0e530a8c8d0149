// Package pkg provides the libraries of the doclayout pretty-printing
// engine.
//
// # Overview
//
// doclayout renders structured document values into wrapped, aligned,
// possibly multi-column monospaced text that honors East Asian character
// widths. The pkg directory is organized into three areas:
//
//  1. [textwidth] - display-width oracle (codepoint → terminal columns)
//  2. [layout] - document model, streaming layout engine, box compositor
//  3. [observability] - optional hooks for instrumenting render passes
//
// # Architecture
//
// The typical data flow through a render:
//
//	Doc (atom stream built from constructors)
//	         ↓
//	    normalizer (merge adjacent runs and blank requirements)
//	         ↓
//	    layout interpreter (soft spaces, nesting, alignment, blanks)
//	         ↓
//	    box compositor (side-by-side columns, vertical fill)
//	         ↓
//	    line serializer → UTF-8 text
//
// # Quick Start
//
// Build a document and render it at a wrap width:
//
//	import "github.com/sjakobi/doclayout/pkg/layout"
//
//	d := layout.Hang(2,
//	    layout.Literal("-"),
//	    layout.HSep(layout.Literal("first"), layout.Literal("item")),
//	)
//	out := layout.Render(d, 72)
//
// Rendering is pure: no global state, no I/O, safe for concurrent use
// from independent goroutines.
package pkg
