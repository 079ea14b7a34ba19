package slide

// DefaultCornerRadius is the fallback corner radius applied when Options does
// not configure one. Injected here rather than read from any global so the
// animator stays pure and testable.
const DefaultCornerRadius = 12.0

// Options describe one presentation style. The value is immutable for the
// lifetime of a presentation; changing the edge of an in-flight presentation
// resets all progress state.
type Options struct {
	// Edge the surface slides in from.
	Edge Edge
	// LayoutDirection resolves leading/trailing edges.
	LayoutDirection LayoutDirection
	// DepthEffect scales and insets the surface underneath while presented.
	// It is suppressed at runtime when the backing surface is translucent or
	// not full-bleed, since the illusion assumes an opaque backdrop.
	DepthEffect bool
	// CornerRadius for both surfaces while clipped. Zero means
	// DefaultCornerRadius.
	CornerRadius float64
	// Interactive enables drag-to-dismiss.
	Interactive bool
	// Animate enables timed transitions. When false every transition skips
	// straight to its end state (reduced motion).
	Animate bool
	// SpringSettle finishes interrupted transitions with a critically damped
	// spring instead of the fixed-duration settle.
	SpringSettle bool
	// SizeFraction is the share of the container the surface occupies along
	// its progress axis, in (0, 1]. Zero means the preset default.
	SizeFraction float64
}

// Sheet is the standard bottom sheet: slides up, rounds its corners and
// pushes the underlying view back while presented.
func Sheet() Options {
	return Options{
		Edge:         EdgeBottom,
		DepthEffect:  true,
		Interactive:  true,
		Animate:      true,
		SizeFraction: 0.6,
	}
}

// Cover is a full-height sheet. Its final frame origin sits at the screen
// origin, so the corner radius is dropped once fully presented.
func Cover() Options {
	o := Sheet()
	o.SizeFraction = 1
	return o
}

// Drawer slides in from the leading edge without a depth effect.
func Drawer() Options {
	return Options{
		Edge:         EdgeLeading,
		Interactive:  true,
		Animate:      true,
		SizeFraction: 0.4,
	}
}

// Toast drops in from the top edge and can be flicked away.
func Toast() Options {
	return Options{
		Edge:         EdgeTop,
		Interactive:  true,
		Animate:      true,
		SizeFraction: 0.25,
	}
}

// resolvedEdge returns the physical edge for the configured layout direction.
func (o Options) resolvedEdge() Edge {
	return o.Edge.Resolve(o.LayoutDirection)
}

// radius returns the configured corner radius or the documented fallback.
func (o Options) radius() float64 {
	if o.CornerRadius > 0 {
		return o.CornerRadius
	}
	return DefaultCornerRadius
}

// sizeFraction returns the configured size share, defaulting to a bottom
// sheet's share when unset.
func (o Options) sizeFraction() float64 {
	if o.SizeFraction > 0 && o.SizeFraction <= 1 {
		return o.SizeFraction
	}
	return 0.6
}
