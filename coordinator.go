package slide

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Completion policy
// ---------------------------------------------------------------------------

const (
	// dismissDistanceThreshold is the fraction of the container a drag must
	// cover for a slow release to dismiss.
	dismissDistanceThreshold = 0.5
	// dismissVelocityThreshold dismisses regardless of distance, in cells
	// per second along the dismiss axis.
	dismissVelocityThreshold = 1000.0
	// softCancelSpeed slows the settle of a slow, undecided release so it
	// eases back instead of snapping.
	softCancelSpeed = 0.5
)

// shouldDismiss is the release policy. pct is the signed progress percentage
// and v the release velocity, both sign-normalized so positive means toward
// dismissal.
func shouldDismiss(pct, v float64) bool {
	return (math.Abs(pct) > dismissDistanceThreshold && v > 0) || v >= dismissVelocityThreshold
}

// ---------------------------------------------------------------------------
// Delegate
// ---------------------------------------------------------------------------

// Delegate is the host's capability set consulted before a drag commits to a
// dismissal. Each presentation style supplies one value; there is no implicit
// fallthrough between capabilities.
type Delegate interface {
	// ShouldBegin reports whether dismissal is currently permitted.
	ShouldBegin() bool
	// ReleaseFocus asks the host to resign any focused text input. Returning
	// false blocks the gesture from committing: a drag must not yank
	// keyboard focus away mid-edit.
	ReleaseFocus() bool
	// WillDismiss notifies the host that an interactive dismissal has begun,
	// so it can start its own teardown flow.
	WillDismiss()
}

// AllowDismiss is the zero Delegate: always permitted, nothing focused.
type AllowDismiss struct{}

func (AllowDismiss) ShouldBegin() bool  { return true }
func (AllowDismiss) ReleaseFocus() bool { return true }
func (AllowDismiss) WillDismiss()       {}

// ---------------------------------------------------------------------------
// Coordinator
// ---------------------------------------------------------------------------

// State is the coordinator's position in the gesture life cycle.
type State int

const (
	// StateIdle: no drag in progress.
	StateIdle State = iota
	// StateProbing: drag observed, not yet committed to a dismissal.
	StateProbing
	// StateDismissing: committed; progress drives the animator.
	StateDismissing
	// StateSettling: gesture over, animation finishing or cancelling.
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProbing:
		return "probing"
	case StateDismissing:
		return "dismissing"
	case StateSettling:
		return "settling"
	}
	return "unknown"
}

// Coordinator turns a drag gesture stream into dismissal progress. It
// arbitrates between scrolling nested content and dismissing the
// presentation, drives the animator while a dismissal is active, and applies
// the velocity/threshold policy on release.
//
// It is single-owner, single-sequence: all methods run on the Bubble Tea
// update loop, and gesture samples arriving while a previous sequence is
// settling are ignored.
type Coordinator struct {
	opts     Options
	delegate Delegate
	content  ScrollSurface
	geo      Geometry

	state  State
	active bool
	// translationOffset subtracts out drag motion the nested content
	// consumed before the dismissal began.
	translationOffset Vec
	// pct is the accumulated signed percentage; meaningful only while
	// active.
	pct float64
	// lastTranslation is the previous sample's translation, for routing
	// incremental motion to the content while probing.
	lastTranslation Vec

	handle *Animator
}

// NewCoordinator builds a coordinator for one presentation. delegate may be
// nil, in which case dismissal is always permitted.
func NewCoordinator(opts Options, delegate Delegate) *Coordinator {
	if delegate == nil {
		delegate = AllowDismiss{}
	}
	return &Coordinator{opts: opts, delegate: delegate}
}

// SetGeometry updates the hosting geometry, e.g. after a terminal resize.
func (c *Coordinator) SetGeometry(geo Geometry) { c.geo = geo }

// SetOptions reconfigures the presentation style. A committed dismissal is
// cancelled first, so the animator still receives its one terminal call; the
// returned command, when non-nil, runs that cancel settle. Any other
// in-flight gesture state is reset.
func (c *Coordinator) SetOptions(opts Options) tea.Cmd {
	c.opts = opts
	if c.state == StateDismissing {
		return c.conclude(c.handle.Cancel())
	}
	c.reset()
	if c.state != StateSettling {
		c.state = StateIdle
	}
	return nil
}

// AttachContent registers scrollable content nested inside the presented
// surface. Pass nil to detach; without content every drag in the dismiss
// direction dismisses.
func (c *Coordinator) AttachContent(s ScrollSurface) { c.content = s }

// State returns the current life cycle state.
func (c *Coordinator) State() State { return c.state }

// Dismissing reports whether a committed dismissal is in progress.
func (c *Coordinator) Dismissing() bool { return c.active }

// Animator returns the in-flight transition handle, nil outside an active or
// settling sequence.
func (c *Coordinator) Animator() *Animator { return c.handle }

// Handle consumes one gesture sample and returns any follow-up command for
// the host to run.
func (c *Coordinator) Handle(s GestureSample) tea.Cmd {
	switch c.state {
	case StateSettling:
		// A new gesture while the previous one settles is ignored.
		return nil
	case StateIdle, StateProbing:
		return c.probe(s)
	case StateDismissing:
		return c.dismiss(s)
	}
	return nil
}

// probe tracks a drag that has not committed to a dismissal. Motion scrolls
// nested content away from its boundary; once the content is pinned against
// the boundary nearest the presentation edge and the host permits it, the
// sequence commits.
func (c *Coordinator) probe(s GestureSample) tea.Cmd {
	switch s.Phase {
	case PhaseBegan:
		c.reset()
		c.state = StateProbing
		return nil
	case PhaseEnded, PhaseCancelled:
		c.reset()
		c.state = StateIdle
		return nil
	}
	if c.state != StateProbing {
		return nil
	}

	edge := c.opts.resolvedEdge()
	translation := edge.axisComponent(s.Translation)
	delta := translation - edge.axisComponent(c.lastTranslation)
	c.lastTranslation = s.Translation

	corrected := translation - edge.axisComponent(c.translationOffset)
	extent := edge.axisExtent(c.geo.Container)
	if extent <= 0 {
		return nil
	}
	c.pct = corrected / extent

	// Directional condition: motion away from the anchor edge.
	if corrected*edge.dismissSign() <= 0 {
		c.routeScroll(edge, translation, delta)
		return nil
	}
	if c.content != nil && !atDismissBoundary(c.content, edge) {
		// Content still has room to scroll toward the boundary; the drag
		// scrolls it, and the offset correction absorbs that motion so the
		// eventual dismissal starts from zero.
		c.routeScroll(edge, translation, delta)
		return nil
	}
	if !c.opts.Interactive || !c.delegate.ShouldBegin() || !c.delegate.ReleaseFocus() {
		return nil
	}

	// Commit.
	c.active = true
	c.delegate.WillDismiss()
	c.handle = NewAnimator(false, c.opts, c.geo)
	c.state = StateDismissing
	c.pinContent(edge)
	c.handle.Update(math.Abs(c.pct))
	return nil
}

// dismiss drives the animator while the gesture is committed.
func (c *Coordinator) dismiss(s GestureSample) tea.Cmd {
	edge := c.opts.resolvedEdge()
	translation := edge.axisComponent(s.Translation)
	corrected := translation - edge.axisComponent(c.translationOffset)
	extent := edge.axisExtent(c.geo.Container)
	if extent > 0 {
		c.pct = corrected / extent
	}
	c.lastTranslation = s.Translation

	switch s.Phase {
	case PhaseBegan, PhaseChanged:
		if c.pct*edge.dismissSign() < 0 {
			// Progress flipped against the dismiss direction: abort now,
			// without waiting for the gesture to end.
			return c.conclude(c.handle.Cancel())
		}
		c.pinContent(edge)
		c.handle.Update(math.Abs(c.pct))
		return nil

	case PhaseEnded, PhaseCancelled:
		v := edge.axisComponent(s.Velocity) * edge.dismissSign()
		if shouldDismiss(c.pct, v) {
			return c.conclude(c.handle.Finish())
		}
		if math.Abs(v) < dismissVelocityThreshold {
			c.handle.SetCompletionSpeed(softCancelSpeed)
		}
		return c.conclude(c.handle.Cancel())
	}
	return nil
}

// conclude closes the active sequence: exactly one terminal animator call has
// been issued by the caller, progress state is reset either way.
func (c *Coordinator) conclude(cmd tea.Cmd) tea.Cmd {
	c.reset()
	c.state = StateSettling
	return cmd
}

// Settled consumes an animator completion. It reports true, and returns the
// coordinator to idle, only when the message carries the in-flight handle's
// token; stale completions from earlier presentations are ignored.
func (c *Coordinator) Settled(msg SettledMsg) bool {
	if c.handle == nil || msg.Token != c.handle.Token() {
		return false
	}
	c.handle = nil
	c.state = StateIdle
	return true
}

// routeScroll forwards incremental drag motion to the nested content and
// records the consumed translation, keeping later percentage computation
// relative to where the content was when scroll and dismissal overlapped.
func (c *Coordinator) routeScroll(edge Edge, translation, delta float64) {
	if c.content == nil {
		return
	}
	scrollBy(c.content, edge, delta)
	if edge.vertical() {
		c.translationOffset.Y = translation
	} else {
		c.translationOffset.X = translation
	}
	c.pct = 0
}

// pinContent holds the nested content against the dismiss boundary while the
// presentation is moving. Only the offset component on the edge's axis is
// written; the orthogonal component is never touched.
func (c *Coordinator) pinContent(edge Edge) {
	if c.content == nil {
		return
	}
	c.content.SetScrollOffset(boundaryOffset(c.content, edge))
}

func (c *Coordinator) reset() {
	c.active = false
	c.translationOffset = Vec{}
	c.lastTranslation = Vec{}
	c.pct = 0
}
