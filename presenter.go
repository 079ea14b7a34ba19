package slide

import (
	"math"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/slide/compose"
)

// PresentedMsg reports that a presentation finished its enter transition.
type PresentedMsg struct{}

// DismissedMsg reports that the presented surface left the screen, whether
// by gesture or by a programmatic Dismiss.
type DismissedMsg struct{}

// Presenter hosts one edge-presented surface inside a Bubble Tea program:
// it owns the drag recognizer, the coordinator, the sheet's scrollable body,
// and composites the transition over the host's view.
type Presenter struct {
	opts     Options
	delegate Delegate
	coord    *Coordinator
	rec      *Recognizer

	body    viewport.Model
	surface *ViewportSurface

	// anim drives programmatic (non-interactive) transitions; gesture-driven
	// dismissals live on the coordinator.
	anim      *Animator
	presented bool
	dragging  bool

	width, height int
	insets        Insets
	backingOpaque bool
	backingFull   bool

	borderStyle lipgloss.Style
	shadeStyle  lipgloss.Style
}

// NewPresenter builds a presenter for the given style.
func NewPresenter(opts Options) *Presenter {
	p := &Presenter{
		opts:          opts,
		rec:           NewRecognizer(),
		body:          viewport.New(0, 0),
		backingOpaque: true,
		backingFull:   true,
		borderStyle:   defaultBorderStyle,
		shadeStyle:    defaultShadeStyle,
	}
	p.surface = NewViewportSurface(&p.body)
	p.coord = NewCoordinator(opts, presenterDelegate{p})
	p.coord.AttachContent(p.surface)
	return p
}

// presenterDelegate forwards capability queries to the host delegate, which
// may be swapped at any time.
type presenterDelegate struct{ p *Presenter }

func (d presenterDelegate) ShouldBegin() bool {
	if d.p.delegate == nil {
		return true
	}
	return d.p.delegate.ShouldBegin()
}

func (d presenterDelegate) ReleaseFocus() bool {
	if d.p.delegate == nil {
		return true
	}
	return d.p.delegate.ReleaseFocus()
}

func (d presenterDelegate) WillDismiss() {
	if d.p.delegate != nil {
		d.p.delegate.WillDismiss()
	}
}

// SetDelegate installs the host's capability delegate. A nil delegate
// permits everything.
func (p *Presenter) SetDelegate(d Delegate) { p.delegate = d }

// SetBacking declares the surface underneath: whether it is opaque and
// whether it fills the container. The depth effect is suppressed otherwise.
func (p *Presenter) SetBacking(opaque, fullBleed bool) {
	p.backingOpaque = opaque
	p.backingFull = fullBleed
	p.coord.SetGeometry(p.geometry())
}

// SetInsets reserves rows/columns (header, footer) around the presentation.
func (p *Presenter) SetInsets(ins Insets) {
	p.insets = ins
	p.layout()
}

// SetSize updates the hosting region, typically from tea.WindowSizeMsg.
func (p *Presenter) SetSize(width, height int) {
	p.width, p.height = width, height
	p.layout()
}

// SetContent replaces the sheet body and rewinds its scroll position.
func (p *Presenter) SetContent(s string) {
	p.body.SetContent(s)
	p.body.GotoTop()
}

// SetOptions switches the presentation style. A committed drag dismissal is
// cancelled; the returned command, when non-nil, runs its settle.
func (p *Presenter) SetOptions(opts Options) tea.Cmd {
	p.opts = opts
	cmd := p.coord.SetOptions(opts)
	p.layout()
	return cmd
}

// Presented reports whether the surface is on screen (or entering).
func (p *Presenter) Presented() bool { return p.presented || p.entering() }

// Options returns the active presentation style.
func (p *Presenter) Options() Options { return p.opts }

func (p *Presenter) layout() {
	geo := p.geometry()
	p.coord.SetGeometry(geo)
	p.body.Width = max(geo.FinalFrame.Width-2, 0)
	p.body.Height = max(geo.FinalFrame.Height-2, 0)
}

// geometry derives the final frame from the container size and the style's
// edge and size share.
func (p *Presenter) geometry() Geometry {
	w, h := p.width, p.height
	frac := p.opts.sizeFraction()
	var ff Rect
	switch p.opts.resolvedEdge() {
	case EdgeBottom:
		fh := int(math.Round(float64(h) * frac))
		ff = Rect{X: 0, Y: h - fh, Width: w, Height: fh}
	case EdgeTop:
		fh := int(math.Round(float64(h) * frac))
		ff = Rect{X: 0, Y: 0, Width: w, Height: fh}
	case EdgeLeft:
		fw := int(math.Round(float64(w) * frac))
		ff = Rect{X: 0, Y: 0, Width: fw, Height: h}
	default: // EdgeRight
		fw := int(math.Round(float64(w) * frac))
		ff = Rect{X: w - fw, Y: 0, Width: fw, Height: h}
	}
	return Geometry{
		Container:        Size{Width: w, Height: h},
		FinalFrame:       ff,
		SafeInsets:       p.insets,
		BackingOpaque:    p.backingOpaque,
		BackingFullBleed: p.backingFull,
	}
}

// Present starts the enter transition. No-op while already presented or
// while a transition is in flight.
func (p *Presenter) Present() tea.Cmd {
	if p.presented || p.activeAnimator() != nil {
		return nil
	}
	p.anim = NewAnimator(true, p.opts, p.geometry())
	return p.anim.Finish()
}

// Dismiss starts a programmatic (non-interactive) exit transition.
func (p *Presenter) Dismiss() tea.Cmd {
	if !p.presented || p.activeAnimator() != nil {
		return nil
	}
	p.anim = NewAnimator(false, p.opts, p.geometry())
	return p.anim.Finish()
}

// Update routes messages: mouse into the gesture pipeline, frame ticks into
// whichever animator owns them, settled messages into presentation state.
func (p *Presenter) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return nil

	case tea.MouseMsg:
		return p.handleMouse(msg)

	case FrameMsg:
		if h := p.coord.Animator(); h != nil {
			if cmd := h.Step(msg); cmd != nil {
				return cmd
			}
		}
		if p.anim != nil {
			return p.anim.Step(msg)
		}
		return nil

	case SettledMsg:
		return p.handleSettled(msg)
	}
	return nil
}

func (p *Presenter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !p.presented && p.activeAnimator() == nil {
		return nil
	}
	if isWheel(msg.Button) {
		var cmd tea.Cmd
		p.body, cmd = p.body.Update(msg)
		return cmd
	}

	// Drags must start on the presented surface; presses elsewhere are the
	// host's business.
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if !p.hit(msg.X, msg.Y) {
			return nil
		}
		p.dragging = true
	}
	if !p.dragging {
		return nil
	}
	sample, ok := p.rec.Sample(msg)
	if !ok {
		return nil
	}
	if sample.Phase == PhaseEnded || sample.Phase == PhaseCancelled {
		p.dragging = false
	}
	return p.coord.Handle(sample)
}

func (p *Presenter) handleSettled(msg SettledMsg) tea.Cmd {
	if p.coord.Settled(msg) {
		if msg.Completed {
			p.presented = false
			return func() tea.Msg { return DismissedMsg{} }
		}
		return nil
	}
	if p.anim == nil || msg.Token != p.anim.Token() {
		return nil
	}
	presenting := p.anim.Presenting()
	p.anim = nil
	if !msg.Completed {
		return nil
	}
	if presenting {
		p.presented = true
		return func() tea.Msg { return PresentedMsg{} }
	}
	p.presented = false
	return func() tea.Msg { return DismissedMsg{} }
}

// View composites the presentation over the host's rendered view. With
// nothing presented it returns base unchanged.
func (p *Presenter) View(base string) string {
	if p.width <= 0 || p.height <= 0 {
		return base
	}
	var frame TransitionFrame
	switch {
	case p.activeAnimator() != nil:
		frame = p.activeAnimator().Frame()
	case p.presented:
		frame = restingFrame(p.opts, p.geometry())
	default:
		return base
	}

	geo := p.geometry()
	canvas := compose.Fit(base, p.width, p.height)
	if frame.Backing.Scale < 1 {
		dx := int(math.Round((1 - frame.Backing.Scale) * float64(p.width) / 2))
		dy := int(math.Round((1 - frame.Backing.Scale) * float64(p.height) / 2))
		backing := compose.Shade(canvas, p.width, p.height, p.shadeStyle)
		backing = compose.Inset(backing, dx, dy, p.width, p.height)
		ox := int(math.Round(frame.Backing.Offset.X))
		oy := int(math.Round(frame.Backing.Offset.Y))
		if ox != 0 || oy != 0 {
			backing = compose.OverlayAt(compose.Fit("", p.width, p.height), backing, ox, oy, p.width, p.height)
		}
		canvas = backing
	}

	sheet := p.renderSurface(geo.FinalFrame, frame.Presented.CornerRadius)
	x := geo.FinalFrame.X + int(math.Round(frame.Presented.Offset.X))
	y := geo.FinalFrame.Y + int(math.Round(frame.Presented.Offset.Y))
	return compose.OverlayAt(canvas, sheet, x, y, p.width, p.height)
}

func (p *Presenter) renderSurface(ff Rect, radius float64) string {
	border := lipgloss.NormalBorder()
	if radius > 0 {
		border = lipgloss.RoundedBorder()
	}
	style := p.borderStyle.
		Border(border).
		Width(max(ff.Width-2, 0)).
		Height(max(ff.Height-2, 0))
	return style.Render(p.body.View())
}

func (p *Presenter) activeAnimator() *Animator {
	if h := p.coord.Animator(); h != nil {
		return h
	}
	return p.anim
}

func (p *Presenter) entering() bool {
	return p.anim != nil && p.anim.Presenting()
}

// hit reports whether the cell (x, y) lies on the presented surface's
// current frame.
func (p *Presenter) hit(x, y int) bool {
	var frame TransitionFrame
	if a := p.activeAnimator(); a != nil {
		frame = a.Frame()
	} else {
		frame = restingFrame(p.opts, p.geometry())
	}
	ff := p.geometry().FinalFrame
	fx := ff.X + int(math.Round(frame.Presented.Offset.X))
	fy := ff.Y + int(math.Round(frame.Presented.Offset.Y))
	return x >= fx && x < fx+ff.Width && y >= fy && y < fy+ff.Height
}

func isWheel(b tea.MouseButton) bool {
	switch b {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}
