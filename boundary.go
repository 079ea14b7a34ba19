package slide

// ScrollSurface is scrollable content nested inside a presented surface. The
// coordinator consults it to decide whether a drag should scroll the content
// or begin dismissing the presentation, and pins its offset while a dismissal
// is in progress.
type ScrollSurface interface {
	// ScrollOffset is the current content offset. Offsets grow as content
	// scrolls away past the top/left.
	ScrollOffset() Vec
	// SetScrollOffset repositions the content. Implementations clamp.
	SetScrollOffset(Vec)
	// ContentSize is the full size of the scrollable content.
	ContentSize() Size
	// ViewportSize is the visible region.
	ViewportSize() Size
	// ScrollInsets are margins the content keeps clear at its boundaries.
	ScrollInsets() Insets
	// ScrollAxes reports which axes the surface can scroll on.
	ScrollAxes() (horizontal, vertical bool)
}

// atDismissBoundary reports whether content sits at the boundary nearest the
// presentation edge, in the dismiss direction. Content scrollable only on the
// axis orthogonal to the edge is never at a dismiss boundary: orthogonal
// scrolling must not be hijacked into a dismissal. edge must be resolved.
//
// Consulted only when deciding whether a probe commits to a dismissal; once
// committed, the coordinator re-pins the offset itself instead of re-checking.
func atDismissBoundary(s ScrollSurface, edge Edge) bool {
	horiz, vert := s.ScrollAxes()
	off := s.ScrollOffset()
	ins := s.ScrollInsets()

	if edge.vertical() {
		if !vert {
			return !horiz // orthogonal-only content blocks dismissal
		}
		switch edge {
		case EdgeBottom:
			return off.Y+float64(ins.Top) <= 0
		default: // EdgeTop
			return off.Y >= maxScroll(s.ContentSize().Height, s.ViewportSize().Height, ins.Bottom)
		}
	}

	if !horiz {
		return !vert
	}
	switch edge {
	case EdgeRight:
		return off.X+float64(ins.Left) <= 0
	default: // EdgeLeft
		return off.X >= maxScroll(s.ContentSize().Width, s.ViewportSize().Width, ins.Right)
	}
}

// boundaryOffset is the offset value the content is pinned to while a
// dismissal toward edge is in progress. Only the component on the edge's
// axis is meaningful; the orthogonal component is the current offset,
// untouched.
func boundaryOffset(s ScrollSurface, edge Edge) Vec {
	off := s.ScrollOffset()
	ins := s.ScrollInsets()
	switch edge {
	case EdgeBottom:
		off.Y = -float64(ins.Top)
	case EdgeTop:
		off.Y = maxScroll(s.ContentSize().Height, s.ViewportSize().Height, ins.Bottom)
	case EdgeRight:
		off.X = -float64(ins.Left)
	case EdgeLeft:
		off.X = maxScroll(s.ContentSize().Width, s.ViewportSize().Width, ins.Right)
	}
	return off
}

// scrollBy shifts the content offset along the edge's axis only. A drag of d
// cells moves the content the opposite way, matching touch scrolling.
func scrollBy(s ScrollSurface, edge Edge, d float64) {
	off := s.ScrollOffset()
	if edge.vertical() {
		off.Y -= d
	} else {
		off.X -= d
	}
	s.SetScrollOffset(off)
}

func maxScroll(content, viewport, inset int) float64 {
	m := float64(content - viewport + inset)
	if m < 0 {
		return 0
	}
	return m
}
