package slide

// ---------------------------------------------------------------------------
// Geometry primitives
// ---------------------------------------------------------------------------

// Vec is a 2D vector in cell units. Y grows downward, matching terminal rows.
type Vec struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Size is a width/height pair in cells.
type Size struct {
	Width  int
	Height int
}

// Rect is a cell-aligned rectangle with origin at the top-left corner.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Insets are reserved margins around a region, e.g. header and footer rows
// the host keeps outside the presentation area.
type Insets struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// ---------------------------------------------------------------------------
// Edges and layout direction
// ---------------------------------------------------------------------------

// Edge identifies the screen side a presented surface originates from. It is
// fixed for the lifetime of one presentation; reconfiguring it mid-flight
// resets all progress state.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
	// EdgeLeading and EdgeTrailing resolve to left or right depending on
	// the layout direction.
	EdgeLeading
	EdgeTrailing
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeLeading:
		return "leading"
	case EdgeTrailing:
		return "trailing"
	}
	return "unknown"
}

// LayoutDirection mirrors leading/trailing edges for right-to-left scripts.
type LayoutDirection int

const (
	LeftToRight LayoutDirection = iota
	RightToLeft
)

// Resolve maps leading/trailing to a physical edge. Physical edges resolve to
// themselves.
func (e Edge) Resolve(dir LayoutDirection) Edge {
	switch e {
	case EdgeLeading:
		if dir == RightToLeft {
			return EdgeRight
		}
		return EdgeLeft
	case EdgeTrailing:
		if dir == RightToLeft {
			return EdgeLeft
		}
		return EdgeRight
	}
	return e
}

// vertical reports whether progress along e is measured on the Y axis.
// Callers must pass a resolved edge.
func (e Edge) vertical() bool {
	return e == EdgeTop || e == EdgeBottom
}

// dismissSign is the sign of axis translation that moves the surface away
// from its anchor edge: negative for top/left, positive for bottom/right.
func (e Edge) dismissSign() float64 {
	switch e {
	case EdgeTop, EdgeLeft:
		return -1
	default:
		return 1
	}
}

// axisComponent extracts the component of v along the edge's progress axis.
func (e Edge) axisComponent(v Vec) float64 {
	if e.vertical() {
		return v.Y
	}
	return v.X
}

// axisExtent returns the container extent along the edge's progress axis.
func (e Edge) axisExtent(s Size) float64 {
	if e.vertical() {
		return float64(s.Height)
	}
	return float64(s.Width)
}
