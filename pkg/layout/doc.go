// Package layout renders structured documents as wrapped, aligned,
// possibly multi-column monospaced text.
//
// # Overview
//
// A [Doc] is an ordered sequence of atoms: printable text runs, soft
// spaces that may become line breaks, newline and blank-line directives,
// nesting and alignment scopes, fixed-width boxes, and lazily expanded
// branches that depend on the current column or wrap width. Documents
// form a monoid: [Concat] is associative and the zero Doc is its
// identity.
//
// [Render] streams the atoms through a line builder that resolves soft
// spaces, indentation, alignment padding and blank-line coalescing, then
// composes any boxes side by side and serializes the result. Width is
// measured in terminal columns per [github.com/sjakobi/doclayout/pkg/textwidth],
// so East Asian wide characters count as two columns and combining
// diacritical marks (U+0300–U+036F) as zero.
//
// # Basic Usage
//
// Build documents with the constructors and render at a wrap width:
//
//	d := layout.Concat(
//	    layout.Literal("Usage:"),
//	    layout.Space(),
//	    layout.Literal("doclayout"),
//	)
//	out := layout.Render(d, 72)
//
// A negative width disables wrapping entirely; width 0 selects
// minimal-width mode, where every soft space becomes a break.
//
// # Nesting and Alignment
//
// [Nest], [Aligned], [Flush] and [Hang] control the left margin of
// continuation lines. [AlignLeft], [AlignRight] and [AlignCenter] pad
// emitted lines against the wrap width. Scopes are closed structurally by
// the constructors; an unmatched pop is a guarded no-op rather than an
// error.
//
// # Boxes
//
// [Box] embeds a fixed-width sub-layout as a single cell of its host
// line. Adjacent boxes compose side by side: each is laid out at its own
// width, shorter columns are padded (or vertically filled, see [VFill])
// to the tallest, and the rows are stitched back together. [LBlock],
// [RBlock] and [CBlock] wrap Box with the matching alignment.
//
// # Purity
//
// Rendering has no observable side effects and holds no mutable global
// state; independent documents may be rendered concurrently without
// coordination. The optional logger and hooks (see [WithLogger],
// [WithHooks]) observe a render without affecting its output.
package layout
