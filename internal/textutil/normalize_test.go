package textutil

import "testing"

func TestNormalizeLineComposesAndTrims(t *testing.T) {
	decomposed := "  Cafe\u0301 au lait \t"
	got := NormalizeLine(decomposed)
	if got != "Caf\u00e9 au lait" {
		t.Fatalf("NormalizeLine(%q) = %q", decomposed, got)
	}
	if NormalizeLine("   ") != "" {
		t.Fatal("expected whitespace-only input to normalize to empty")
	}
}

func TestStripBOM(t *testing.T) {
	if got := StripBOM("\ufeff[00:01.00]hi"); got != "[00:01.00]hi" {
		t.Fatalf("unexpected result %q", got)
	}
	if got := StripBOM("plain"); got != "plain" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestFoldKey(t *testing.T) {
	cases := map[string]string{
		"AR":     "ar",
		" Ti ":   "ti",
		"offset": "offset",
		"LENGTH": "length",
		"":       "",
	}
	for in, want := range cases {
		if got := FoldKey(in); got != want {
			t.Fatalf("FoldKey(%q) = %q, want %q", in, got, want)
		}
	}
}
