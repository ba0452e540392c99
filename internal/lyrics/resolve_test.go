package lyrics_test

import (
	"testing"

	"lrcsync/internal/lyrics"
)

func threeLineDoc() *lyrics.Document {
	return lyrics.ParseString("[00:00.00]a\n[00:01.00]b\n[00:02.00]c")
}

func TestResolveBoundaries(t *testing.T) {
	doc := threeLineDoc()
	tests := []struct {
		timeMs int64
		want   int
		ok     bool
	}{
		{-5, lyrics.None, false},
		{0, 0, true},
		{999, 0, true},
		{1000, 1, true},
		{1999, 1, true},
		{2000, 2, true},
		{5000, 2, true},
	}
	for _, tt := range tests {
		got, ok := lyrics.Resolve(doc, tt.timeMs)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("Resolve(%d) = (%d, %v), want (%d, %v)", tt.timeMs, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveBeforeFirstLine(t *testing.T) {
	doc := lyrics.ParseString("[00:10.00]first\n[00:20.00]second")
	if idx, ok := lyrics.Resolve(doc, 9999); ok || idx != lyrics.None {
		t.Fatalf("expected no active line during intro, got %d", idx)
	}
}

func TestResolveEmptyAndNil(t *testing.T) {
	empty := lyrics.ParseString("")
	for _, timeMs := range []int64{-1, 0, 1000, 1 << 40} {
		if _, ok := lyrics.Resolve(empty, timeMs); ok {
			t.Fatalf("empty document resolved a line at %d", timeMs)
		}
		if _, ok := lyrics.Resolve(nil, timeMs); ok {
			t.Fatalf("nil document resolved a line at %d", timeMs)
		}
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	doc := threeLineDoc()
	for _, timeMs := range []int64{-1, 0, 500, 1000, 2500} {
		first := doc.ActiveIndex(timeMs)
		second := doc.ActiveIndex(timeMs)
		if first != second {
			t.Fatalf("ActiveIndex(%d) not idempotent: %d vs %d", timeMs, first, second)
		}
	}
}

func TestResolveDuplicateTimestampsPicksLast(t *testing.T) {
	doc := lyrics.ParseString("[00:01.00]a\n[00:01.00]b\n[00:02.00]c")
	if idx := doc.ActiveIndex(1500); idx != 1 {
		t.Fatalf("expected last of tied lines, got %d", idx)
	}
}

func TestResolveMatchesLinearScan(t *testing.T) {
	doc := lyrics.ParseString("[00:00.50]a\n[00:01.00]b\n[00:01.00]c\n[00:04.25]d\n[01:00.00]e")
	lines := doc.Lines()
	for timeMs := int64(-100); timeMs <= 61000; timeMs += 50 {
		want := lyrics.None
		for i, line := range lines {
			if line.TimestampMs <= timeMs {
				want = i
			}
		}
		if got := doc.ActiveIndex(timeMs); got != want {
			t.Fatalf("ActiveIndex(%d) = %d, want %d", timeMs, got, want)
		}
	}
}
