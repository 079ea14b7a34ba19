package compose

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestOverlayAtReplacesRegion(t *testing.T) {
	base := Fit("aaaa\naaaa\naaaa\naaaa", 4, 4)
	out := OverlayAt(base, "XX\nXX", 1, 1, 4, 4)
	want := "aaaa\naXXa\naXXa\naaaa"
	if out != want {
		t.Fatalf("overlay = %q, want %q", out, want)
	}
}

func TestOverlayAtClipsOffscreenRows(t *testing.T) {
	base := Fit("aa\naa", 2, 2)
	out := OverlayAt(base, "XX\nXX\nXX", 0, 1, 2, 2)
	lines := SplitLines(out)
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if lines[0] != "aa" || lines[1] != "XX" {
		t.Fatalf("lines = %q, want base row then overlay row", lines)
	}

	// Negative origin clips the overlay's top.
	out = OverlayAt(base, "XX\nYY", 0, -1, 2, 2)
	lines = SplitLines(out)
	if lines[0] != "YY" || lines[1] != "aa" {
		t.Fatalf("lines = %q, want overlaid second overlay row", lines)
	}
}

func TestFitPadsAndCrops(t *testing.T) {
	out := Fit("ab", 4, 3)
	want := "ab  \n    \n    "
	if out != want {
		t.Fatalf("fit = %q, want %q", out, want)
	}

	out = Fit("abcdef\nx\ny\nz", 3, 2)
	if out != "abc\nx  " {
		t.Fatalf("fit crop = %q", out)
	}
}

func TestInsetShrinksContentKeepsCanvas(t *testing.T) {
	base := Fit("abcd\nefgh\nijkl\nmnop", 4, 4)
	out := Inset(base, 1, 1, 4, 4)
	lines := SplitLines(out)
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4", len(lines))
	}
	if lines[0] != strings.Repeat(" ", 4) {
		t.Fatalf("top margin = %q, want blank", lines[0])
	}
	if lines[1] != " ab " {
		t.Fatalf("first content row = %q, want %q", lines[1], " ab ")
	}

	// Margins eating the whole canvas leave it blank.
	out = Inset(base, 2, 2, 4, 4)
	if out != Fit("", 4, 4) {
		t.Fatalf("over-inset = %q, want blank canvas", out)
	}

	// Zero margins are a plain fit.
	if Inset(base, 0, 0, 4, 4) != base {
		t.Fatalf("zero inset changed the canvas")
	}
}

func TestShadeStripsExistingStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("200")).Render("hi")
	out := Shade(styled+"\nplain", 5, 2, lipgloss.NewStyle())
	if strings.Contains(out, "200") {
		t.Fatalf("shaded output retains original color: %q", out)
	}
	if !strings.Contains(out, "hi") || !strings.Contains(out, "plain") {
		t.Fatalf("shaded output lost text: %q", out)
	}
}

func TestPadRightAndMaxLineWidth(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Fatalf("pad = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("pad must not truncate, got %q", got)
	}
	if got := MaxLineWidth([]string{"a", "abc", "ab"}); got != 3 {
		t.Fatalf("max width = %d, want 3", got)
	}
}

func TestTruncateEllipsis(t *testing.T) {
	if got := Truncate("hello", 4); got != "hel…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := Truncate("hi", 4); got != "hi" {
		t.Fatalf("short string changed: %q", got)
	}
	if got := Truncate("hi", 0); got != "" {
		t.Fatalf("zero width = %q, want empty", got)
	}
}
