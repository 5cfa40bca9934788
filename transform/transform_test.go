package transform

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestScaleBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		domain [2]float32
		inner  float32
	}{
		{"unit", [2]float32{0, 1}, 100},
		{"offset", [2]float32{10, 20}, 640},
		{"negative", [2]float32{-5, 5}, 333},
		{"tiny span", [2]float32{0, 1e-3}, 800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScale(tt.domain, tt.inner)
			if got := s(tt.domain[0]); got != 0 {
				t.Errorf("scale(min) = %v, want 0", got)
			}
			if got := s(tt.domain[1]); got != tt.inner {
				t.Errorf("scale(max) = %v, want %v", got, tt.inner)
			}
		})
	}
}

func TestScaleFlipped(t *testing.T) {
	s := NewScaleFlipped([2]float32{0, 10}, 200)
	if got := s(0); got != 200 {
		t.Errorf("flipped scale(min) = %v, want 200", got)
	}
	if got := s(10); got != 0 {
		t.Errorf("flipped scale(max) = %v, want 0", got)
	}
	if got := s(5); got != 100 {
		t.Errorf("flipped scale(mid) = %v, want 100", got)
	}
}

func TestSanitizeDegenerate(t *testing.T) {
	tests := []struct {
		name string
		in   [2]float32
		want [2]float32
	}{
		{"equal", [2]float32{5, 5}, [2]float32{4.5, 5.5}},
		{"inverted", [2]float32{3, 1}, [2]float32{1.5, 2.5}},
		{"zero", [2]float32{0, 0}, [2]float32{-0.5, 0.5}},
		{"valid untouched", [2]float32{1, 2}, [2]float32{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeNonFinite(t *testing.T) {
	nan := math32.NaN()
	inf := math32.Inf(1)
	for _, d := range [][2]float32{{nan, 1}, {0, nan}, {inf, inf}, {nan, nan}} {
		got := Sanitize(d)
		if math32.IsNaN(got[0]) || math32.IsNaN(got[1]) ||
			math32.IsInf(got[0], 0) || math32.IsInf(got[1], 0) {
			t.Errorf("Sanitize(%v) = %v, contains non-finite bound", d, got)
		}
		if got[1] <= got[0] {
			t.Errorf("Sanitize(%v) = %v, not ascending", d, got)
		}
	}
}

func TestDegenerateDomainProducesFiniteOutput(t *testing.T) {
	s := NewScale([2]float32{5, 5}, 100)
	for _, v := range []float32{0, 5, 10} {
		got := s(v)
		if math32.IsNaN(got) || math32.IsInf(got, 0) {
			t.Errorf("scale(%v) = %v on degenerate domain, want finite", v, got)
		}
	}
}

func TestIsDegenerate(t *testing.T) {
	if !IsDegenerate([2]float32{2, 2}) {
		t.Error("IsDegenerate([2,2]) = false, want true")
	}
	if IsDegenerate([2]float32{0, 1}) {
		t.Error("IsDegenerate([0,1]) = true, want false")
	}
}
