package utils

import (
	"math"
	"testing"
)

func TestDirectionZeroDistanceFloor(t *testing.T) {
	nx, ny, d := Direction(5, 5, 5, 5)
	if nx != 0 || ny != 0 {
		t.Errorf("Direction at zero distance: got (%v,%v), want (0,0)", nx, ny)
	}
	if d != MinDistance {
		t.Errorf("Direction distance floor: got %v, want %v", d, MinDistance)
	}
	if math.IsNaN(nx) || math.IsInf(1/d, 0) {
		t.Error("Direction must never produce NaN or Inf")
	}
}

func TestDirectionUnitVector(t *testing.T) {
	nx, ny, d := Direction(0, 0, 3, 4)
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("distance: got %v, want 5", d)
	}
	if math.Abs(nx-0.6) > 1e-9 || math.Abs(ny-0.8) > 1e-9 {
		t.Errorf("unit vector: got (%v,%v), want (0.6,0.8)", nx, ny)
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name string
		want bool
		x2   float64
	}{
		{"重叠", true, 15},
		{"相切不算", false, 20},
		{"分离", false, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(0, 0, 10, tt.x2, 0, 10); got != tt.want {
				t.Errorf("CirclesOverlap(x2=%v) = %v, 期望 %v", tt.x2, got, tt.want)
			}
		})
	}
}

func TestSafeRatio(t *testing.T) {
	if got := SafeRatio(5, 0); got != 0 {
		t.Errorf("SafeRatio(5,0) = %v, 期望 0", got)
	}
	if got := SafeRatio(5, -1); got != 0 {
		t.Errorf("SafeRatio(5,-1) = %v, 期望 0", got)
	}
	if got := SafeRatio(5, 10); got != 0.5 {
		t.Errorf("SafeRatio(5,10) = %v, 期望 0.5", got)
	}
}

func TestLimitSpeed(t *testing.T) {
	vx, vy := LimitSpeed(30, 40, 10)
	if math.Abs(math.Hypot(vx, vy)-10) > 1e-9 {
		t.Errorf("LimitSpeed length: got %v, want 10", math.Hypot(vx, vy))
	}
	vx, vy = LimitSpeed(1, 1, 10)
	if vx != 1 || vy != 1 {
		t.Error("LimitSpeed should not change slow vectors")
	}
}

func TestRotate(t *testing.T) {
	x, y := Rotate(1, 0, math.Pi/2)
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("Rotate 90°: got (%v,%v), want (0,1)", x, y)
	}
}
