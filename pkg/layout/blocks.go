package layout

// Box embeds d as a fixed-width cell on its host line. The interior is
// laid out independently at the given width; lines shorter than width are
// padded when the box composes with right-hand neighbors. Negative widths
// are treated as zero.
func Box(width int, d Doc) Doc {
	if width < 0 {
		width = 0
	}
	return atomDoc(Atom{Kind: KindBox, Width: width, Inner: d})
}

// LBlock is a Box with left-aligned interior lines.
func LBlock(width int, d Doc) Doc {
	return Box(width, AlignLeft(d.Chomp()))
}

// RBlock is a Box with right-aligned interior lines.
func RBlock(width int, d Doc) Doc {
	return Box(width, AlignRight(d.Chomp()))
}

// CBlock is a Box with centered interior lines.
func CBlock(width int, d Doc) Doc {
	return Box(width, AlignCenter(d.Chomp()))
}

// ResizableBox is a Box sized to d's minimal width, clamped between
// minWidth and maxWidth. A negative bound is open.
func ResizableBox(minWidth, maxWidth int, d Doc) Doc {
	w := MinOffset(d)
	if minWidth >= 0 && w < minWidth {
		w = minWidth
	}
	if maxWidth >= 0 && w > maxWidth {
		w = maxWidth
	}
	return Box(w, d)
}
