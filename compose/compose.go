// Package compose is a line-grid ANSI compositor: it lays presented surfaces
// over a base view while preserving the base's styling outside the overlay
// region.
package compose

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayAt composites overlay on top of base at cell position (x, y). Both
// strings are treated as line-based grids clipped to width × height.
func OverlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := SplitLines(base)
	overlayLines := SplitLines(overlay)
	overlayWidth := MaxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := PadRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		leftWidth := ansi.StringWidth(left)
		if leftWidth < x {
			left += strings.Repeat(" ", x-leftWidth)
		}

		overlayLine := PadRight(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := ""
		if width > 0 {
			right = ansi.TruncateLeft(target, pos, "")
			rightWidth := ansi.StringWidth(right)
			gap := width - pos - rightWidth
			if gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}

		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

// Fit pads and crops s to exactly width × height cells.
func Fit(s string, width, height int) string {
	lines := SplitLines(s)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = PadRight(ansi.Truncate(lines[i], width, ""), width)
	}
	return strings.Join(lines, "\n")
}

// Inset redraws s inside a margin of dx columns and dy rows on every side,
// cropping what no longer fits. It approximates a scaled-down surface: the
// content shifts in from the edges while the canvas keeps its size.
func Inset(s string, dx, dy, width, height int) string {
	if dx <= 0 && dy <= 0 {
		return Fit(s, width, height)
	}
	innerWidth := width - 2*dx
	innerHeight := height - 2*dy
	if innerWidth < 1 || innerHeight < 1 {
		return Fit("", width, height)
	}
	lines := SplitLines(s)
	out := make([]string, 0, height)
	for i := 0; i < dy; i++ {
		out = append(out, strings.Repeat(" ", width))
	}
	pad := strings.Repeat(" ", dx)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], innerWidth, "")
		}
		out = append(out, PadRight(pad+line, width))
	}
	for len(out) < height {
		out = append(out, strings.Repeat(" ", width))
	}
	return strings.Join(out[:height], "\n")
}

// Shade flattens s to a dimmed, unstyled backdrop. Styling is stripped
// first: re-colored text stacked under an active presentation reads as
// receded, which is the terminal stand-in for a scaled-back surface.
func Shade(s string, width, height int, style lipgloss.Style) string {
	lines := SplitLines(Fit(s, width, height))
	for i, line := range lines {
		lines[i] = style.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

// SplitLines splits on newlines, returning at least one element.
func SplitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// MaxLineWidth returns the visual width of the widest line.
func MaxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// PadRight pads s with spaces so its visual width equals width.
func PadRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Truncate shortens s to width cells, appending an ellipsis if truncated.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
