package simhash

import (
	"testing"
)

func TestFingerprint_Deterministic(t *testing.T) {
	text := "insulated stainless steel water bottle"
	if Fingerprint(text) != Fingerprint(text) {
		t.Error("identical texts produced different fingerprints")
	}
}

func TestFingerprint_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   \t\n  "} {
		if fp := Fingerprint(in); fp != 0 {
			t.Errorf("Fingerprint(%q) = %064b, want 0", in, fp)
		}
	}
}

func TestFingerprint_SingleWord(t *testing.T) {
	if Fingerprint("bottle") == 0 {
		t.Error("single word should produce a non-zero fingerprint")
	}
}

func TestTitle_IgnoresCaseAndPunctuation(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"case", "Stainless Steel Water Bottle 32oz", "stainless steel WATER bottle 32OZ"},
		{"punctuation", "Stainless Steel Water Bottle, 32oz", "Stainless Steel Water Bottle - 32oz"},
		{"spacing", "Water  Bottle (Blue)", "Water Bottle Blue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := Distance(Title(tt.a), Title(tt.b)); d != 0 {
				t.Errorf("Distance(Title(%q), Title(%q)) = %d, want 0", tt.a, tt.b, d)
			}
		})
	}
}

func TestTitle_WordOrderMatters(t *testing.T) {
	if Title("red bottle") == Title("bottle red") {
		t.Error("reordered titles should not share a fingerprint")
	}
	if Fingerprint("red bottle") != Fingerprint("bottle red") {
		t.Error("Fingerprint ignores order and should match")
	}
}

func TestTitle_Empty(t *testing.T) {
	if fp := Title("!!! ---"); fp != 0 {
		t.Errorf("Title of punctuation only = %064b, want 0", fp)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b uint64
		want int
	}{
		{"identical", 0xFF, 0xFF, 0},
		{"all different", 0, ^uint64(0), 64},
		{"one bit", 0, 1, 1},
		{"two bits", 0, 3, 2},
		{"zero zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Distance(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilar(t *testing.T) {
	a := Title("Kids Water Bottle with Straw")
	b := Title("Collapsible Silicone Travel Mug")

	if !Similar(a, a, 0) {
		t.Error("a fingerprint should be similar to itself at threshold 0")
	}

	dist := Distance(a, b)
	if dist > 0 && Similar(a, b, dist-1) {
		t.Errorf("should not be similar below the distance (%d)", dist)
	}
	if !Similar(a, b, dist) {
		t.Errorf("should be similar at threshold equal to distance (%d)", dist)
	}
}
