package slide

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Gesture samples
// ---------------------------------------------------------------------------

// Phase tags a gesture sample with the recognizer state that produced it.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	}
	return "unknown"
}

// GestureSample is one observation of an in-flight drag: displacement since
// the press, an estimated velocity in cells per second, and the phase.
type GestureSample struct {
	Translation Vec
	Velocity    Vec
	Phase       Phase
}

// ---------------------------------------------------------------------------
// Recognizer
// ---------------------------------------------------------------------------

// velocitySmoothing blends each instantaneous velocity estimate with the
// previous one; terminal mouse motion arrives in coarse cell steps, so raw
// per-event velocities are far too jumpy to gate the dismissal policy on.
const velocitySmoothing = 0.7

// Recognizer folds Bubble Tea mouse messages into a drag gesture stream.
// Only the left button drags; wheel and other buttons are ignored so the
// host can route them elsewhere.
type Recognizer struct {
	pressed     bool
	origin      Vec
	translation Vec
	velocity    Vec
	lastAt      time.Time

	// now is replaceable in tests.
	now func() time.Time
}

// NewRecognizer returns a recognizer using the wall clock for velocity
// estimation.
func NewRecognizer() *Recognizer {
	return &Recognizer{now: time.Now}
}

// Active reports whether a drag is in progress.
func (r *Recognizer) Active() bool { return r.pressed }

// Sample consumes a mouse message and returns the resulting gesture sample,
// if any. Motion without a preceding press produces nothing.
func (r *Recognizer) Sample(msg tea.MouseMsg) (GestureSample, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return GestureSample{}, false
		}
		r.pressed = true
		r.origin = Vec{float64(msg.X), float64(msg.Y)}
		r.translation = Vec{}
		r.velocity = Vec{}
		r.lastAt = r.now()
		return GestureSample{Phase: PhaseBegan}, true

	case tea.MouseActionMotion:
		if !r.pressed {
			return GestureSample{}, false
		}
		pos := Vec{float64(msg.X), float64(msg.Y)}
		prev := r.translation
		r.translation = pos.Sub(r.origin)

		now := r.now()
		if dt := now.Sub(r.lastAt).Seconds(); dt > 0 {
			delta := r.translation.Sub(prev)
			inst := Vec{delta.X / dt, delta.Y / dt}
			r.velocity = Vec{
				X: velocitySmoothing*inst.X + (1-velocitySmoothing)*r.velocity.X,
				Y: velocitySmoothing*inst.Y + (1-velocitySmoothing)*r.velocity.Y,
			}
		}
		r.lastAt = now
		return GestureSample{Translation: r.translation, Velocity: r.velocity, Phase: PhaseChanged}, true

	case tea.MouseActionRelease:
		if !r.pressed {
			return GestureSample{}, false
		}
		r.pressed = false
		return GestureSample{Translation: r.translation, Velocity: r.velocity, Phase: PhaseEnded}, true
	}
	return GestureSample{}, false
}

// Cancel aborts an in-flight drag, e.g. when the terminal loses focus, and
// returns the cancelled sample to feed the coordinator.
func (r *Recognizer) Cancel() (GestureSample, bool) {
	if !r.pressed {
		return GestureSample{}, false
	}
	r.pressed = false
	return GestureSample{Translation: r.translation, Velocity: r.velocity, Phase: PhaseCancelled}, true
}
