package triangle

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSolveValidation(t *testing.T) {
	tests := []struct {
		name       string
		a1, a2, a3 float64
		wantErr    error
	}{
		{name: "valid right triangle", a1: 30, a2: 60, a3: 90},
		{name: "valid equilateral", a1: 60, a2: 60, a3: 60},
		{name: "sum below 180", a1: 30, a2: 60, a3: 80, wantErr: ErrAngleSum},
		{name: "sum above 180", a1: 90, a2: 90, a3: 90, wantErr: ErrAngleSum},
		{name: "negative angle", a1: -10, a2: 100, a3: 90, wantErr: ErrNonPositive},
		{name: "too narrow", a1: 2, a2: 88, a3: 90, wantErr: ErrTooNarrow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.a1, tt.a2, tt.a3)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Solve(%v, %v, %v) error: %v", tt.a1, tt.a2, tt.a3, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Solve(%v, %v, %v) = %v, want %v", tt.a1, tt.a2, tt.a3, err, tt.wantErr)
			}
		})
	}
}

func TestSolveApex(t *testing.T) {
	tests := []struct {
		name       string
		a1, a2, a3 float64
		x3, y3     float64
	}{
		{name: "isoceles right", a1: 45, a2: 45, a3: 90, x3: 0.5, y3: 0.5},
		{name: "thirty sixty ninety", a1: 30, a2: 60, a3: 90, x3: 0.75, y3: 0.4330127},
		{name: "obtuse at origin", a1: 120, a2: 30, a3: 30, x3: -0.5, y3: 0.8660254},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri, err := Solve(tt.a1, tt.a2, tt.a3)
			if err != nil {
				t.Fatalf("Solve error: %v", err)
			}
			if math.Abs(tri.P3.X-tt.x3) > 1e-6 || math.Abs(tri.P3.Y-tt.y3) > 1e-6 {
				t.Errorf("apex = (%v, %v), want (%v, %v)", tri.P3.X, tri.P3.Y, tt.x3, tt.y3)
			}
		})
	}
}

func TestSideLengths(t *testing.T) {
	tri, err := Solve(60, 60, 60)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	base, right, left := tri.SideLengths()
	if base != 1 {
		t.Errorf("base = %v, want 1", base)
	}
	if math.Abs(right-1) > 1e-9 || math.Abs(left-1) > 1e-9 {
		t.Errorf("equilateral sides = %v, %v, want 1, 1", right, left)
	}
}

func TestRender(t *testing.T) {
	tri, err := Solve(30, 60, 90)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	out := tri.Render(40)
	if !strings.Contains(out, "relative sides 1, 0.50, 0.87") {
		t.Errorf("caption missing or wrong:\n%s", out)
	}
	if strings.Count(out, string(vertexRune)) != 3 {
		t.Errorf("expected 3 vertices in render:\n%s", out)
	}
}
