package slide

import (
	"math"

	"github.com/charmbracelet/bubbles/viewport"
)

// ViewportSurface adapts a bubbles viewport to ScrollSurface. Viewports
// scroll whole lines vertically, so offsets are line counts and the
// horizontal axis is never scrollable.
type ViewportSurface struct {
	vp *viewport.Model
}

// NewViewportSurface wraps vp. The pointer is retained; the coordinator
// pins the viewport's offset through it while a dismissal is in progress.
func NewViewportSurface(vp *viewport.Model) *ViewportSurface {
	return &ViewportSurface{vp: vp}
}

func (s *ViewportSurface) ScrollOffset() Vec {
	return Vec{Y: float64(s.vp.YOffset)}
}

func (s *ViewportSurface) SetScrollOffset(v Vec) {
	y := int(math.Round(v.Y))
	if y < 0 {
		y = 0
	}
	s.vp.SetYOffset(y)
}

func (s *ViewportSurface) ContentSize() Size {
	return Size{Width: s.vp.Width, Height: s.vp.TotalLineCount()}
}

func (s *ViewportSurface) ViewportSize() Size {
	return Size{Width: s.vp.Width, Height: s.vp.Height}
}

func (s *ViewportSurface) ScrollInsets() Insets { return Insets{} }

func (s *ViewportSurface) ScrollAxes() (horizontal, vertical bool) {
	return false, true
}
