package lyrics

// None marks the absence of an active line.
const None = -1

// Line is a single timed lyric.
type Line struct {
	TimestampMs int64  `json:"timestamp_ms"`
	Text        string `json:"text"`
}

// Metadata holds the ID tags found in a document.
type Metadata struct {
	Artist   string            `json:"artist,omitempty"`
	Title    string            `json:"title,omitempty"`
	Album    string            `json:"album,omitempty"`
	Author   string            `json:"author,omitempty"`
	Length   string            `json:"length,omitempty"`
	OffsetMs int64             `json:"offset_ms,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// Document is an immutable, timestamp-ordered sequence of lines.
type Document struct {
	lines   []Line
	meta    Metadata
	skipped int
}

// Len reports the number of lines.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.lines)
}

// Empty reports whether the document has no synchronized lines.
func (d *Document) Empty() bool {
	return d.Len() == 0
}

// Line returns the line at index i.
func (d *Document) Line(i int) (Line, bool) {
	if d == nil || i < 0 || i >= len(d.lines) {
		return Line{}, false
	}
	return d.lines[i], true
}

// Lines returns a copy of the ordered lines.
func (d *Document) Lines() []Line {
	if d == nil || len(d.lines) == 0 {
		return nil
	}
	out := make([]Line, len(d.lines))
	copy(out, d.lines)
	return out
}

// Metadata returns the document's ID tags.
func (d *Document) Metadata() Metadata {
	if d == nil {
		return Metadata{}
	}
	meta := d.meta
	if len(d.meta.Extra) > 0 {
		meta.Extra = make(map[string]string, len(d.meta.Extra))
		for k, v := range d.meta.Extra {
			meta.Extra[k] = v
		}
	}
	return meta
}

// Skipped reports how many non-blank records produced neither lines nor
// metadata.
func (d *Document) Skipped() int {
	if d == nil {
		return 0
	}
	return d.skipped
}
