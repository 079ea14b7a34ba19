package slide

import (
	"strings"
	"testing"
	"time"
)

func newTestPresenter() *Presenter {
	opts := Sheet()
	opts.Animate = false
	p := NewPresenter(opts)
	p.SetSize(100, 40)
	p.rec.now = (&testClock{t: time.Unix(0, 0), step: 100 * time.Millisecond}).now
	return p
}

func TestPresenterProgrammaticLifecycle(t *testing.T) {
	p := newTestPresenter()
	if p.Presented() {
		t.Fatalf("presented before Present")
	}

	cmd := p.Present()
	if cmd == nil {
		t.Fatalf("Present returned no command")
	}
	followUp := p.Update(cmd())
	if followUp == nil {
		t.Fatalf("settled message produced no notification")
	}
	if _, ok := followUp().(PresentedMsg); !ok {
		t.Fatalf("notification = %T, want PresentedMsg", followUp())
	}
	if !p.Presented() {
		t.Fatalf("not presented after enter transition settled")
	}
	if p.Present() != nil {
		t.Fatalf("Present while presented returned a command")
	}

	cmd = p.Dismiss()
	if cmd == nil {
		t.Fatalf("Dismiss returned no command")
	}
	followUp = p.Update(cmd())
	if _, ok := followUp().(DismissedMsg); !ok {
		t.Fatalf("notification = %T, want DismissedMsg", followUp())
	}
	if p.Presented() {
		t.Fatalf("still presented after exit transition settled")
	}
	if p.Dismiss() != nil {
		t.Fatalf("Dismiss while hidden returned a command")
	}
}

func TestPresenterIgnoresMouseWhileHidden(t *testing.T) {
	p := newTestPresenter()
	if cmd := p.Update(press(50, 20)); cmd != nil {
		t.Fatalf("press on a hidden presenter produced a command")
	}
	p.Update(motion(50, 30))
	if p.coord.State() != StateIdle {
		t.Fatalf("hidden presenter tracked a gesture")
	}
}

func TestPresenterHitTestGatesDrags(t *testing.T) {
	p := newTestPresenter()
	p.Update(p.Present()())

	// The 60% bottom sheet occupies rows 16-39; a press above it belongs to
	// the host.
	if cmd := p.Update(press(50, 5)); cmd != nil {
		t.Fatalf("press outside the sheet produced a command")
	}
	p.Update(motion(50, 15))
	if p.coord.State() != StateIdle {
		t.Fatalf("drag that started outside the sheet was tracked")
	}
}

func TestPresenterDragDismissLifecycle(t *testing.T) {
	p := newTestPresenter()
	p.Update(p.Present()())

	p.Update(press(50, 20))
	if p.coord.State() != StateProbing {
		t.Fatalf("state after press = %v, want probing", p.coord.State())
	}

	p.Update(motion(50, 28))
	if !p.coord.Dismissing() {
		t.Fatalf("downward drag on the sheet did not commit")
	}

	// Slow release at 20%: snaps back, stays presented.
	cmd := p.Update(release(50, 28))
	if cmd == nil {
		t.Fatalf("release produced no settle command")
	}
	if p.Update(cmd()) != nil {
		t.Fatalf("cancelled dismissal produced a notification")
	}
	if !p.Presented() {
		t.Fatalf("sheet hidden after a cancelled drag")
	}
	if p.coord.State() != StateIdle {
		t.Fatalf("coordinator state = %v, want idle", p.coord.State())
	}

	// A drag past halfway dismisses.
	p.Update(press(50, 17))
	p.Update(motion(50, 38))
	p.Update(motion(50, 39))
	if !p.coord.Dismissing() {
		t.Fatalf("long drag did not commit")
	}
	cmd = p.Update(release(50, 39))
	followUp := p.Update(cmd())
	if followUp == nil {
		t.Fatalf("completed dismissal produced no notification")
	}
	if _, ok := followUp().(DismissedMsg); !ok {
		t.Fatalf("notification = %T, want DismissedMsg", followUp())
	}
	if p.Presented() {
		t.Fatalf("still presented after a completed drag dismissal")
	}
}

func TestPresenterViewCompositesSheet(t *testing.T) {
	p := newTestPresenter()
	base := strings.TrimRight(strings.Repeat(strings.Repeat(".", 100)+"\n", 40), "\n")

	if p.View(base) != base {
		t.Fatalf("hidden presenter altered the base view")
	}

	p.Update(p.Present()())
	out := p.View(base)
	lines := strings.Split(out, "\n")
	if len(lines) != 40 {
		t.Fatalf("composited view has %d lines, want 40", len(lines))
	}
	if strings.Contains(lines[0], "╭") {
		t.Fatalf("sheet border leaked above the final frame")
	}
	if !strings.Contains(lines[16], "╭") {
		t.Fatalf("no rounded sheet border at the final frame's top row: %q", lines[16])
	}
}
