package core

import (
	"image/color"
	"math"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#E0ECF8", color.RGBA{R: 0xE0, G: 0xEC, B: 0xF8, A: 0xff}},
		{"164776", color.RGBA{R: 0x16, G: 0x47, B: 0x76, A: 0xff}},
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#10203080", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}},
	}
	for _, tc := range cases {
		got, err := ParseHexColor(tc.in)
		if err != nil {
			t.Fatalf("ParseHexColor(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "#12", "#zzzzzz", "#1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("ParseHexColor(%q) expected error", bad)
		}
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	for _, in := range []string{"#E0ECF8", "#164776", "#10203080"} {
		c, err := ParseHexColor(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := HexColor(c); got != in {
			t.Fatalf("HexColor = %s, want %s", got, in)
		}
	}
}

func TestRNGSeededSequence(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 16; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("seeded RNGs diverged at draw %d", i)
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if v := r.Range(5, 15); v < 5 || v >= 15 {
			t.Fatalf("Range out of bounds: %v", v)
		}
		if v := r.Centered(10); v < -5 || v >= 5 {
			t.Fatalf("Centered out of bounds: %v", v)
		}
	}
	if v := r.Range(3, 3); v != 3 {
		t.Fatalf("degenerate Range = %v, want 3", v)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 4, Y: 6}.Sub(Vec2{X: 1, Y: 2})
	if v.Len() != 5 {
		t.Fatalf("Len = %v, want 5", v.Len())
	}
	if (Vec2{X: math.NaN()}).Finite() {
		t.Fatal("NaN vector reported finite")
	}
}
