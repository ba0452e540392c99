// Package scroll implements the auto-scroll state machine that decides when a
// lyrics view should be moved to the active line.
//
// The Controller holds only configuration; all mutable data lives in the State
// passed to each event. In ModeAuto every change of the active line yields an
// Effect (a ScrollTo command). A genuine user scroll moves the state to
// ModeSuspended, where the active line is still tracked but no effects are
// produced. RecoveryTick returns the state to ModeAuto once the configured
// quiet interval has elapsed since the last manual scroll and emits a single
// Effect that resynchronizes the view.
//
// Every Effect carries a token from a strictly increasing sequence. Views echo
// that token back with the scroll notifications their programmatic scrolling
// triggers, which lets the Controller ignore its own scrolls without timing
// heuristics.
package scroll
