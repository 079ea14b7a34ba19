package slide

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Animation constants
// ---------------------------------------------------------------------------

const (
	// transitionDuration is the full span of a non-interactive transition.
	// Interrupted settles take the proportional remainder.
	transitionDuration = 350 * time.Millisecond
	animFPS            = 60

	// depthScale is the backing surface's scale while fully presented.
	depthScale = 0.92

	springFrequency = 9.0
	springDamping   = 1.0
	springRestDelta = 0.001
)

// Geometry is the host-supplied layout the animator interpolates within.
type Geometry struct {
	// Container is the hosting region, i.e. the terminal size.
	Container Size
	// FinalFrame is where the presented surface rests at full presentation.
	FinalFrame Rect
	// SafeInsets are rows/columns the host reserves around the container,
	// e.g. header and footer lines.
	SafeInsets Insets
	// BackingOpaque and BackingFullBleed describe the surface underneath.
	// The depth effect assumes an opaque, full-bleed backdrop and is
	// suppressed otherwise.
	BackingOpaque    bool
	BackingFullBleed bool
}

// SurfaceState is the interpolated visual state of one surface.
type SurfaceState struct {
	// Offset is the displacement from the surface's resting frame, in cells.
	Offset Vec
	// Scale of the surface; 1 is identity.
	Scale float64
	// CornerRadius while the surface's bounds are clipped; 0 means square.
	CornerRadius float64
}

// TransitionFrame is one rendered instant of a transition: the presented
// surface and the backing surface underneath it.
type TransitionFrame struct {
	Presented SurfaceState
	Backing   SurfaceState
	// Progress is the transition fraction in [0, 1]: 0 at the initial state,
	// 1 at the committed end state.
	Progress float64
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// FrameMsg advances a settling animator by one frame. Stale frames from a
// superseded settle carry an old tag and are ignored.
type FrameMsg struct {
	Token uuid.UUID
	tag   int
}

// SettledMsg reports a transition's outcome: Completed is true when it
// reached its committed end state, false when it was aborted back to the
// starting state. Delivered exactly once per Finish or Cancel.
type SettledMsg struct {
	Token     uuid.UUID
	Completed bool
}

// ---------------------------------------------------------------------------
// Animator
// ---------------------------------------------------------------------------

type animPhase int

const (
	// animDriving: progress is set externally, either by Update while
	// interactive or still sitting at its initial value.
	animDriving animPhase = iota
	animSettling
	animDone
)

// Animator is an interruptible, progress-addressable transition. It is
// driven either by externally supplied progress (Update) or, after Finish or
// Cancel, by frame ticks until it settles. Its presentation direction is
// fixed at construction.
//
// Every animator carries an ownership token; frame and settled messages echo
// it so a host juggling presentations never acts on a stale animator's
// messages.
type Animator struct {
	token      uuid.UUID
	presenting bool
	opts       Options
	geo        Geometry

	phase    animPhase
	progress float64
	target   float64
	aborted  bool
	speed    float64
	tag      int

	spring    *harmonica.Spring
	springVel float64
}

// NewAnimator builds an animator for one presentation or dismissal. Progress
// starts at 0 (the initial state: off-screen when presenting, fully
// presented when dismissing).
func NewAnimator(presenting bool, opts Options, geo Geometry) *Animator {
	return &Animator{
		token:      uuid.New(),
		presenting: presenting,
		opts:       opts,
		geo:        geo,
		speed:      1,
	}
}

// Token identifies this animator in FrameMsg and SettledMsg.
func (a *Animator) Token() uuid.UUID { return a.token }

// Presenting reports the transition direction fixed at construction.
func (a *Animator) Presenting() bool { return a.presenting }

// Progress is the current transition fraction.
func (a *Animator) Progress() float64 { return a.progress }

// Settled reports whether the transition has reached its resting state.
func (a *Animator) Settled() bool { return a.phase == animDone }

// Update repositions an interactively driven transition to the given
// fraction of its end state. Out-of-range values are clamped; that choice is
// fixed, callers may rely on it. Calling Update after Finish or Cancel, or on
// a non-interactive transition, is a programming error.
func (a *Animator) Update(progress float64) {
	if a.phase != animDriving {
		panic("slide: Animator.Update after Finish or Cancel")
	}
	if !a.opts.Interactive {
		panic("slide: Animator.Update on a non-interactive transition")
	}
	a.progress = clamp01(progress)
}

// Finish commits the transition to its completed end state and runs the
// remaining animation asynchronously. Exactly one of Finish or Cancel may be
// called per transition.
func (a *Animator) Finish() tea.Cmd {
	return a.settle(1, false)
}

// Cancel commits the transition back to its starting state.
func (a *Animator) Cancel() tea.Cmd {
	return a.settle(0, true)
}

// SetCompletionSpeed scales the playback rate of the remaining settle. The
// coordinator uses it to soften slow, undecided releases.
func (a *Animator) SetCompletionSpeed(factor float64) {
	if factor > 0 {
		a.speed = factor
		a.spring = nil
	}
}

func (a *Animator) settle(target float64, aborted bool) tea.Cmd {
	if a.phase != animDriving {
		panic("slide: Finish or Cancel called twice on one transition")
	}
	a.phase = animSettling
	a.target = target
	a.aborted = aborted
	a.tag++
	if !a.opts.Animate {
		// Reduced motion: skip straight to the end state. The settled
		// message is still delivered through the same path.
		a.progress = target
		a.phase = animDone
		return a.settledCmd()
	}
	return a.tickCmd()
}

// Step advances a settling transition by one frame. Messages carrying a
// foreign token or an outdated tag are ignored. Returns the follow-up
// command: another frame tick, or the settled message once resting.
func (a *Animator) Step(msg FrameMsg) tea.Cmd {
	if a.phase != animSettling || msg.Token != a.token || msg.tag != a.tag {
		return nil
	}
	if a.opts.SpringSettle {
		if a.spring == nil {
			s := harmonica.NewSpring(harmonica.FPS(animFPS)*a.speed, springFrequency, springDamping)
			a.spring = &s
		}
		a.progress, a.springVel = a.spring.Update(a.progress, a.springVel, a.target)
		if math.Abs(a.progress-a.target) < springRestDelta && math.Abs(a.springVel) < springRestDelta {
			a.progress = a.target
		}
	} else {
		rate := harmonica.FPS(animFPS) * a.speed / transitionDuration.Seconds()
		if a.progress < a.target {
			a.progress = math.Min(a.progress+rate, a.target)
		} else {
			a.progress = math.Max(a.progress-rate, a.target)
		}
	}
	if a.progress == a.target {
		a.phase = animDone
		return a.settledCmd()
	}
	return a.tickCmd()
}

func (a *Animator) tickCmd() tea.Cmd {
	token, tag := a.token, a.tag
	return tea.Tick(time.Second/animFPS, func(time.Time) tea.Msg {
		return FrameMsg{Token: token, tag: tag}
	})
}

func (a *Animator) settledCmd() tea.Cmd {
	msg := SettledMsg{Token: a.token, Completed: !a.aborted}
	return func() tea.Msg { return msg }
}

// ---------------------------------------------------------------------------
// Visual mapping
// ---------------------------------------------------------------------------

// Frame computes the visual state of both surfaces at the current progress.
// The mapping is a pure interpolation between the two end states: at shown
// fraction 0 the presented surface sits fully past its originating edge and
// the backing surface is identity; at 1 the presented surface rests in its
// final frame and the backing surface, when the depth effect applies, is
// scaled to 0.92 and nudged past the safe-area inset opposite the edge.
func (a *Animator) Frame() TransitionFrame {
	shown := a.progress
	if !a.presenting {
		shown = 1 - a.progress
	}
	return transitionFrame(a.opts, a.geo, shown, a.progress, a.phase == animDone)
}

// transitionFrame is the pure interpolation shared by in-flight animators and
// resting presentations. shown is the presented fraction; resting marks a
// settled transition, where the on-screen-origin radius rule applies.
func transitionFrame(opts Options, geo Geometry, shown, progress float64, resting bool) TransitionFrame {
	edge := opts.resolvedEdge()
	r := opts.radius()

	f := TransitionFrame{Progress: progress}
	f.Presented = SurfaceState{
		Offset:       offscreenOffset(edge, geo).scaled(1 - shown),
		Scale:        1,
		CornerRadius: r * shown,
	}
	// Once fully on-screen with its origin at the screen origin, the surface
	// no longer needs rounding.
	if resting && shown == 1 && geo.FinalFrame.X == 0 && geo.FinalFrame.Y == 0 {
		f.Presented.CornerRadius = 0
	}

	if depthApplies(opts, geo) {
		f.Backing = SurfaceState{
			Offset:       depthCompensation(edge, geo.SafeInsets).scaled(shown),
			Scale:        1 - (1-depthScale)*shown,
			CornerRadius: r * shown,
		}
	} else {
		f.Backing = SurfaceState{Scale: 1}
	}
	return f
}

// restingFrame is the fully presented state with no transition in flight.
func restingFrame(opts Options, geo Geometry) TransitionFrame {
	return transitionFrame(opts, geo, 1, 1, true)
}

func depthApplies(opts Options, geo Geometry) bool {
	return opts.DepthEffect && geo.BackingOpaque && geo.BackingFullBleed
}

// offscreenOffset is the displacement from the final frame at which the
// presented surface is fully hidden past its originating edge.
func offscreenOffset(edge Edge, geo Geometry) Vec {
	switch edge {
	case EdgeBottom:
		return Vec{Y: float64(geo.Container.Height - geo.FinalFrame.Y)}
	case EdgeTop:
		return Vec{Y: -float64(geo.FinalFrame.Y + geo.FinalFrame.Height)}
	case EdgeLeft:
		return Vec{X: -float64(geo.FinalFrame.X + geo.FinalFrame.Width)}
	default: // EdgeRight
		return Vec{X: float64(geo.Container.Width - geo.FinalFrame.X)}
	}
}

// depthCompensation nudges the scaled backing surface toward the presented
// edge so it clears the safe-area inset on the opposite side.
func depthCompensation(edge Edge, ins Insets) Vec {
	switch edge {
	case EdgeBottom:
		return Vec{Y: float64(ins.Top) / 2}
	case EdgeTop:
		return Vec{Y: -float64(ins.Bottom) / 2}
	case EdgeLeft:
		return Vec{X: -float64(ins.Right) / 2}
	default: // EdgeRight
		return Vec{X: float64(ins.Left) / 2}
	}
}

func (v Vec) scaled(f float64) Vec { return Vec{v.X * f, v.Y * f} }

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
