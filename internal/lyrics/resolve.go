package lyrics

import "sort"

// Resolve returns the index of the last line whose timestamp is at or before
// timeMs. It reports false when timeMs precedes the first line or the document
// is empty.
func Resolve(doc *Document, timeMs int64) (int, bool) {
	n := doc.Len()
	if n == 0 {
		return None, false
	}
	// First index strictly after timeMs; the active line sits just before it.
	next := sort.Search(n, func(i int) bool {
		return doc.lines[i].TimestampMs > timeMs
	})
	if next == 0 {
		return None, false
	}
	return next - 1, true
}

// ActiveIndex is Resolve with None standing in for "no active line".
func (d *Document) ActiveIndex(timeMs int64) int {
	idx, _ := Resolve(d, timeMs)
	return idx
}
