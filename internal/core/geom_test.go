package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", Vec2{3, 4}, Vec2{3, 4}, 0},
		{"3-4-5 triangle", Vec2{0, 0}, Vec2{3, 4}, 5},
		{"negative coords", Vec2{-1, -1}, Vec2{2, 3}, 5},
		{"horizontal", Vec2{10, 7}, Vec2{35, 7}, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); math.Abs(got-tc.expected) > eps {
				t.Errorf("Distance() = %f, expected %f", got, tc.expected)
			}
			if got := Distance(tc.b, tc.a); math.Abs(got-tc.expected) > eps {
				t.Errorf("Distance() (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestCircleRectDistance(t *testing.T) {
	r := RectF{X: 100, Y: 100, W: 50, H: 40}

	tests := []struct {
		name     string
		center   Vec2
		expected float64
	}{
		{"inside", Vec2{120, 120}, 0},
		{"on left edge", Vec2{100, 110}, 0},
		{"left of box", Vec2{90, 120}, 10},
		{"above box", Vec2{125, 70}, 30},
		{"below box", Vec2{125, 150}, 10},
		{"right of box", Vec2{170, 120}, 20},
		{"diagonal from corner", Vec2{153, 144}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleRectDistance(tc.center, r); math.Abs(got-tc.expected) > eps {
				t.Errorf("CircleRectDistance(%v) = %f, expected %f", tc.center, got, tc.expected)
			}
		})
	}
}

func TestRectFContains(t *testing.T) {
	r := RectF{X: 0, Y: 0, W: 10, H: 10}
	if !r.Contains(Vec2{5, 5}) {
		t.Error("center should be inside")
	}
	if !r.Contains(Vec2{10, 10}) {
		t.Error("bottom-right corner should be inside")
	}
	if r.Contains(Vec2{10.5, 5}) {
		t.Error("point right of box should be outside")
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
}
