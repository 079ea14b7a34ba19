package slide

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
)

func TestViewportSurfaceAdapts(t *testing.T) {
	vp := viewport.New(80, 10)
	vp.SetContent(strings.TrimRight(strings.Repeat("line\n", 30), "\n"))
	s := NewViewportSurface(&vp)

	if horiz, vert := s.ScrollAxes(); horiz || !vert {
		t.Fatalf("axes = %v %v, want vertical only", horiz, vert)
	}
	if got := s.ContentSize(); got != (Size{Width: 80, Height: 30}) {
		t.Fatalf("content size = %+v, want 80x30", got)
	}
	if got := s.ViewportSize(); got != (Size{Width: 80, Height: 10}) {
		t.Fatalf("viewport size = %+v, want 80x10", got)
	}
	if s.ScrollInsets() != (Insets{}) {
		t.Fatalf("viewport reported scroll insets")
	}

	s.SetScrollOffset(Vec{Y: 5.4})
	if s.ScrollOffset().Y != 5 {
		t.Fatalf("offset = %v, want rounded to 5", s.ScrollOffset().Y)
	}
	s.SetScrollOffset(Vec{Y: -3})
	if s.ScrollOffset().Y != 0 {
		t.Fatalf("offset = %v, want clamped to 0", s.ScrollOffset().Y)
	}

	// The shared pointer keeps the adapter live across viewport mutation.
	vp.SetYOffset(7)
	if s.ScrollOffset().Y != 7 {
		t.Fatalf("offset = %v, want 7 after direct viewport scroll", s.ScrollOffset().Y)
	}
}
