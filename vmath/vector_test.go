package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalizeZeroVector(t *testing.T) {
	n := Vec2{}.Normalize()
	if n.X != 0 || n.Y != 0 {
		t.Errorf("Expected zero vector, got %+v", n)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	tests := []Vec2{{3, 4}, {-2, 0}, {0, 0.001}, {-5, -12}}
	for _, v := range tests {
		n := v.Normalize()
		if math.Abs(n.Length()-1) > eps {
			t.Errorf("Normalize(%+v) length = %f, want 1", v, n.Length())
		}
		// direction preserved
		if n.X*v.X < 0 || n.Y*v.Y < 0 {
			t.Errorf("Normalize(%+v) flipped direction: %+v", v, n)
		}
	}
}

func TestAddScaleDistance(t *testing.T) {
	v := NewVec2(1, 2).Add(NewVec2(3, -1)).Scale(2)
	if v.X != 8 || v.Y != 2 {
		t.Errorf("Expected (8,2), got %+v", v)
	}
	if d := Distance(NewVec2(0, 0), NewVec2(3, 4)); math.Abs(d-5) > eps {
		t.Errorf("Expected distance 5, got %f", d)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
		{3 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestWrapAngleExtremeInputs(t *testing.T) {
	for _, in := range []float64{1e18, -1e18, math.MaxFloat64} {
		got := WrapAngle(in)
		if got <= -math.Pi || got > math.Pi {
			t.Errorf("WrapAngle(%g) = %f, outside (-pi, pi]", in, got)
		}
	}
	for _, in := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if got := WrapAngle(in); !math.IsNaN(got) {
			t.Errorf("WrapAngle(%g) = %f, want NaN", in, got)
		}
	}
}
