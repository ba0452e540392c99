// Package syncsession composes the lyrics resolver and the auto-scroll
// controller into a per-track session object.
//
// A Session owns one lyrics.Document and one scroll.State. Callers drive it
// with explicit method calls (Tick for playback position, ManualScroll for
// user scrolling, RecoveryCheck from an external periodic timer) and observe
// the resulting scroll effects either from the return values or through
// observers registered with Subscribe. Replacing the document for a new track
// resets the scroll state.
//
// A Session is not safe for concurrent use; deliver all events from a single
// goroutine.
package syncsession
