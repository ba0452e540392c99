package lyrics

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"lrcsync/internal/textutil"
)

// ErrInvalidInput indicates that no lyrics text was supplied at all.
var ErrInvalidInput = errors.New("lyrics: invalid input")

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
)

// Parse reads an LRC document from r. Malformed records are skipped; only a
// nil reader or a read failure returns an error.
func Parse(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, ErrInvalidInput
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read lyrics: %w", err)
	}
	return ParseString(string(data)), nil
}

// ParseString parses raw LRC text. It never fails; text without any timestamp
// tags yields an empty document.
func ParseString(raw string) *Document {
	doc := &Document{}
	raw = textutil.StripBOM(raw)
	if raw == "" {
		return doc
	}

	for _, record := range strings.Split(raw, "\n") {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}

		stamps, rest := leadingTimestamps(record)
		if len(stamps) > 0 {
			text := textutil.NormalizeLine(rest)
			for _, ms := range stamps {
				doc.lines = append(doc.lines, Line{TimestampMs: ms, Text: text})
			}
			continue
		}

		if key, value, ok := idTag(record); ok {
			doc.meta.set(key, value)
			continue
		}
		doc.skipped++
	}

	sort.SliceStable(doc.lines, func(i, j int) bool {
		return doc.lines[i].TimestampMs < doc.lines[j].TimestampMs
	})
	return doc
}

// leadingTimestamps consumes every timestamp tag at the start of record and
// returns the parsed values with the remaining text.
func leadingTimestamps(record string) ([]int64, string) {
	var stamps []int64
	rest := record
	for strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			break
		}
		ms, ok := parseTimestamp(rest[1:end])
		if !ok {
			break
		}
		stamps = append(stamps, ms)
		rest = strings.TrimLeft(rest[end+1:], " \t")
	}
	if len(stamps) == 0 {
		return nil, record
	}
	return stamps, rest
}

// parseTimestamp converts the inside of a [mm:ss.xxx] tag to milliseconds.
// Minutes may have any number of digits (including none), seconds exactly two,
// and the optional fraction one to three.
func parseTimestamp(tag string) (int64, bool) {
	colon := strings.IndexByte(tag, ':')
	if colon < 0 {
		return 0, false
	}
	minutesText := tag[:colon]
	secondsText := tag[colon+1:]
	fractionText := ""
	hasFraction := false
	if dot := strings.IndexByte(secondsText, '.'); dot >= 0 {
		fractionText = secondsText[dot+1:]
		secondsText = secondsText[:dot]
		hasFraction = true
	}

	if !allDigits(minutesText) || len(secondsText) != 2 || !allDigits(secondsText) {
		return 0, false
	}
	if hasFraction && (len(fractionText) < 1 || len(fractionText) > 3 || !allDigits(fractionText)) {
		return 0, false
	}

	var minutes int64
	if minutesText != "" {
		parsed, err := strconv.ParseInt(minutesText, 10, 64)
		if err != nil || parsed > (1<<62)/msPerMinute {
			return 0, false
		}
		minutes = parsed
	}
	seconds, _ := strconv.ParseInt(secondsText, 10, 64)

	var fraction int64
	if fractionText != "" {
		padded := fractionText + strings.Repeat("0", 3-len(fractionText))
		fraction, _ = strconv.ParseInt(padded, 10, 64)
	}
	return minutes*msPerMinute + seconds*msPerSecond + fraction, true
}

// idTag recognizes records of the form [key:value] with an alphabetic key.
func idTag(record string) (string, string, bool) {
	if len(record) < 3 || record[0] != '[' || record[len(record)-1] != ']' {
		return "", "", false
	}
	inner := record[1 : len(record)-1]
	colon := strings.IndexByte(inner, ':')
	if colon <= 0 {
		return "", "", false
	}
	key := inner[:colon]
	for _, r := range key {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return "", "", false
		}
	}
	return textutil.FoldKey(key), strings.TrimSpace(inner[colon+1:]), true
}

func (m *Metadata) set(key, value string) {
	switch key {
	case "ar":
		m.Artist = value
	case "ti":
		m.Title = value
	case "al":
		m.Album = value
	case "by":
		m.Author = value
	case "length":
		m.Length = value
	case "offset":
		if offset, err := strconv.ParseInt(value, 10, 64); err == nil {
			m.OffsetMs = offset
		}
	default:
		if m.Extra == nil {
			m.Extra = make(map[string]string)
		}
		m.Extra[key] = value
	}
}

func allDigits(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
