package slide

import (
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// testClock hands out timestamps a fixed step apart.
type testClock struct {
	t    time.Time
	step time.Duration
}

func (c *testClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func newTestRecognizer(step time.Duration) *Recognizer {
	r := NewRecognizer()
	r.now = (&testClock{t: time.Unix(0, 0), step: step}).now
	return r
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestRecognizerTracksTranslation(t *testing.T) {
	r := newTestRecognizer(100 * time.Millisecond)

	s, ok := r.Sample(press(10, 20))
	if !ok || s.Phase != PhaseBegan {
		t.Fatalf("press sample = %+v ok = %v, want began", s, ok)
	}
	if !r.Active() {
		t.Fatalf("recognizer not active after press")
	}

	s, ok = r.Sample(motion(10, 25))
	if !ok || s.Phase != PhaseChanged {
		t.Fatalf("motion sample = %+v ok = %v, want changed", s, ok)
	}
	if s.Translation != (Vec{X: 0, Y: 5}) {
		t.Fatalf("translation = %+v, want {0 5}", s.Translation)
	}

	s, _ = r.Sample(motion(13, 22))
	if s.Translation != (Vec{X: 3, Y: 2}) {
		t.Fatalf("translation = %+v, want {3 2}", s.Translation)
	}

	s, ok = r.Sample(release(13, 22))
	if !ok || s.Phase != PhaseEnded {
		t.Fatalf("release sample = %+v ok = %v, want ended", s, ok)
	}
	if s.Translation != (Vec{X: 3, Y: 2}) {
		t.Fatalf("release carries translation %+v, want final {3 2}", s.Translation)
	}
	if r.Active() {
		t.Fatalf("recognizer still active after release")
	}
}

func TestRecognizerSmoothsVelocity(t *testing.T) {
	r := newTestRecognizer(100 * time.Millisecond)
	r.Sample(press(0, 0))

	// 10 cells per 100ms is 100 cells/s instantaneous. The first estimate
	// blends with a zero history.
	s, _ := r.Sample(motion(0, 10))
	if want := velocitySmoothing * 100; math.Abs(s.Velocity.Y-want) > 1e-9 {
		t.Fatalf("velocity after first motion = %v, want %v", s.Velocity.Y, want)
	}

	s, _ = r.Sample(motion(0, 20))
	want := velocitySmoothing*100 + (1-velocitySmoothing)*velocitySmoothing*100
	if math.Abs(s.Velocity.Y-want) > 1e-9 {
		t.Fatalf("velocity after second motion = %v, want %v", s.Velocity.Y, want)
	}
}

func TestRecognizerIgnoresStrayEvents(t *testing.T) {
	r := newTestRecognizer(time.Millisecond)

	if _, ok := r.Sample(motion(5, 5)); ok {
		t.Fatalf("motion without a press produced a sample")
	}
	if _, ok := r.Sample(release(5, 5)); ok {
		t.Fatalf("release without a press produced a sample")
	}
	right := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if _, ok := r.Sample(right); ok {
		t.Fatalf("non-left press produced a sample")
	}
	wheel := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	if _, ok := r.Sample(wheel); ok {
		t.Fatalf("wheel event produced a sample")
	}
}

func TestRecognizerCancel(t *testing.T) {
	r := newTestRecognizer(time.Millisecond)

	if _, ok := r.Cancel(); ok {
		t.Fatalf("cancel with no drag in flight produced a sample")
	}

	r.Sample(press(0, 0))
	r.Sample(motion(0, 7))
	s, ok := r.Cancel()
	if !ok || s.Phase != PhaseCancelled {
		t.Fatalf("cancel sample = %+v ok = %v, want cancelled", s, ok)
	}
	if s.Translation.Y != 7 {
		t.Fatalf("cancel carries translation %v, want 7", s.Translation.Y)
	}
	if r.Active() {
		t.Fatalf("recognizer still active after cancel")
	}
}
