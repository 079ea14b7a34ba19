package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/slide"
	"github.com/jask/slide/compose"
	"github.com/jask/slide/internal/config"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#b4befe"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	lockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

type app struct {
	cfg  config.Config
	keys keymap

	width  int
	height int

	presenter *slide.Presenter
	input     textinput.Model
	noteOpen  bool
	locked    bool
	status    string
}

func newApp(cfg config.Config, keys keymap) *app {
	input := textinput.New()
	input.Placeholder = "type a note, esc to blur"
	input.CharLimit = 80

	a := &app{
		cfg:    cfg,
		keys:   keys,
		input:  input,
		status: "press a key to open a surface, drag it down to dismiss",
	}
	a.presenter = slide.NewPresenter(a.configuredOptions(slide.Sheet()))
	a.presenter.SetDelegate(appDelegate{a})
	a.presenter.SetInsets(slide.Insets{Top: 2, Bottom: 2})
	return a
}

// configuredOptions overlays the user's motion and appearance preferences on
// a preset.
func (a *app) configuredOptions(opts slide.Options) slide.Options {
	opts.Interactive = a.cfg.Motion.Interactive
	opts.Animate = !a.cfg.Motion.Reduced
	opts.SpringSettle = a.cfg.Motion.Spring
	if a.cfg.Appearance.CornerRadius > 0 {
		opts.CornerRadius = a.cfg.Appearance.CornerRadius
	}
	if a.cfg.Appearance.RightToLeft {
		opts.LayoutDirection = slide.RightToLeft
	}
	return opts
}

// sheetOptions is the config-driven default sheet: the configured edge and
// size rather than the preset's.
func (a *app) sheetOptions() slide.Options {
	opts := a.configuredOptions(slide.Sheet())
	opts.DepthEffect = a.cfg.Appearance.DepthEffect
	opts.SizeFraction = a.cfg.Appearance.SizeFraction
	switch strings.ToLower(a.cfg.Appearance.Edge) {
	case "top":
		opts.Edge = slide.EdgeTop
	case "left":
		opts.Edge = slide.EdgeLeft
	case "right":
		opts.Edge = slide.EdgeRight
	case "leading":
		opts.Edge = slide.EdgeLeading
	case "trailing":
		opts.Edge = slide.EdgeTrailing
	default:
		opts.Edge = slide.EdgeBottom
	}
	return opts
}

// appDelegate gates interactive dismissal on the demo's state: a locked
// surface never dismisses, and a focused note input holds on to the gesture.
type appDelegate struct{ a *app }

func (d appDelegate) ShouldBegin() bool { return !d.a.locked }

func (d appDelegate) ReleaseFocus() bool { return !d.a.input.Focused() }

func (d appDelegate) WillDismiss() { d.a.status = "dismissing..." }

func (a *app) Init() tea.Cmd { return nil }

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, a.presenter.Update(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)

	case slide.PresentedMsg:
		a.status = "presented"
		return a, nil

	case slide.DismissedMsg:
		a.status = "dismissed"
		a.noteOpen = false
		a.input.Blur()
		return a, nil
	}
	return a, a.presenter.Update(msg)
}

func (a *app) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.input.Focused() {
		switch msg.String() {
		case "esc":
			a.input.Blur()
			a.status = "note blurred, drags may dismiss again"
		case "enter":
			a.status = fmt.Sprintf("note saved: %q", a.input.Value())
			a.input.Blur()
		default:
			var cmd tea.Cmd
			a.input, cmd = a.input.Update(msg)
			a.refreshNoteContent()
			return a, cmd
		}
		a.refreshNoteContent()
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Sheet):
		return a, a.open(a.sheetOptions(), scrollableBody())

	case key.Matches(msg, a.keys.Cover):
		return a, a.open(a.configuredOptions(slide.Cover()), scrollableBody())

	case key.Matches(msg, a.keys.Drawer):
		return a, a.open(a.configuredOptions(slide.Drawer()), drawerBody())

	case key.Matches(msg, a.keys.Toast):
		return a, a.open(a.configuredOptions(slide.Toast()), "saved · drag up to dismiss early")

	case key.Matches(msg, a.keys.Note):
		cmd := a.open(a.sheetOptions(), "")
		a.noteOpen = true
		a.input.Focus()
		a.refreshNoteContent()
		return a, cmd

	case key.Matches(msg, a.keys.Lock):
		a.locked = !a.locked
		if a.locked {
			a.status = "locked: drags will not dismiss"
		} else {
			a.status = "unlocked"
		}
		return a, nil

	case key.Matches(msg, a.keys.Dismiss):
		return a, a.presenter.Dismiss()
	}
	return a, nil
}

// open switches the presenter to opts and starts the enter transition. An
// already presented surface is left alone.
func (a *app) open(opts slide.Options, content string) tea.Cmd {
	if a.presenter.Presented() {
		return nil
	}
	a.noteOpen = false
	cancel := a.presenter.SetOptions(opts)
	a.presenter.SetContent(content)
	return tea.Batch(cancel, a.presenter.Present())
}

func (a *app) refreshNoteContent() {
	if !a.noteOpen {
		return
	}
	a.presenter.SetContent("leave a note\n\n" + a.input.View() + "\n\nenter saves · esc blurs")
}

func (a *app) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}

	header := titleStyle.Render(" slide demo ")
	if a.locked {
		header += "  " + lockStyle.Render("[locked]")
	}
	chart := renderActivityChart(a.width, a.height-6)
	status := statusStyle.Render(compose.Truncate(a.status, a.width))
	footer := footerStyle.Render(compose.Truncate(a.keys.footer(), a.width))

	base := lipgloss.JoinVertical(lipgloss.Left, header, "", chart, "", status, footer)
	return a.presenter.View(base)
}

func scrollableBody() string {
	var b strings.Builder
	b.WriteString("activity detail\n\n")
	for i := 1; i <= 60; i++ {
		fmt.Fprintf(&b, "%3d  sample row · scroll to the top, keep dragging to dismiss\n", i)
	}
	return b.String()
}

func drawerBody() string {
	items := []string{"overview", "activity", "history", "settings", "about"}
	var b strings.Builder
	b.WriteString("navigation\n\n")
	for _, it := range items {
		b.WriteString("  " + it + "\n")
	}
	return b.String()
}
