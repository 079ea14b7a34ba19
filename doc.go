// Package slide presents modal surfaces from a screen edge inside Bubble Tea
// programs and lets the user drag them away again.
//
// The package splits the problem into three cooperating pieces:
//
//   - Recognizer turns raw tea.MouseMsg traffic into gesture samples with a
//     smoothed velocity estimate.
//   - Coordinator arbitrates each gesture between the sheet's scrollable
//     content and the dismissal transition, committing to a dismissal only
//     when the drag points off-screen and the content sits at its boundary.
//   - Animator drives the transition itself: gesture-tracked while the drag
//     is live, then settled by frame ticks once the finger lifts, completing
//     or snapping back based on travelled distance and release velocity.
//
// Presenter ties the three together with a bubbles viewport body and overlay
// compositing, which is what most programs want. Programs with their own
// rendering can use the Coordinator and Animator directly.
package slide
