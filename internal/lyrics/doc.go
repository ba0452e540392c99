// Package lyrics parses LRC-style timed lyrics and resolves the active line for
// a playback position.
//
// Parse turns raw text into an immutable Document whose lines are sorted by
// timestamp (stable on ties). Records that carry no timestamp tag, including
// ID tags such as [ar:Artist], never produce lines and never fail the parse;
// ID tags are kept in Document.Metadata instead. Resolve performs a binary
// search over the sorted timestamps and is safe to call on every playback tick
// in any order, including backward seeks.
package lyrics
