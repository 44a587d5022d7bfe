package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestVec2_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		valid bool
	}{
		{"zero", Vec2{}, true},
		{"normal", Vec2{1.0, -2.0}, true},
		{"with NaN", Vec2{1.0, math.NaN()}, false},
		{"with +Inf", Vec2{math.Inf(1), 0}, false},
		{"with -Inf", Vec2{0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestVec2_Norm(t *testing.T) {
	tests := []struct {
		v        Vec2
		expected float64
	}{
		{Vec2{3, 4}, 5.0},
		{Vec2{1, 0}, 1.0},
		{Vec2{0, 0}, 0.0},
		{Vec2{-6, 8}, 10.0},
	}

	for _, tt := range tests {
		if got := tt.v.Norm(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Norm(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{4, 6}

	if sum := a.Add(b); sum != (Vec2{5, 8}) {
		t.Errorf("Add failed: got %v", sum)
	}
	if diff := b.Sub(a); diff != (Vec2{3, 4}) {
		t.Errorf("Sub failed: got %v", diff)
	}
	if scaled := a.Scale(2); scaled != (Vec2{2, 4}) {
		t.Errorf("Scale failed: got %v", scaled)
	}
}

func TestUnitCircle(t *testing.T) {
	pts := UnitCircle(8)
	if len(pts) != 8 {
		t.Fatalf("expected 8 points, got %d", len(pts))
	}
	for i, p := range pts {
		if math.Abs(p.Norm()-1) > 1e-12 {
			t.Errorf("point %d not on unit circle: %v", i, p)
		}
	}
	if pts[0] != (Vec2{1, 0}) {
		t.Errorf("first point should be (1,0), got %v", pts[0])
	}

	if again := UnitCircle(8); &again[0] != &pts[0] {
		t.Error("expected cached slice on second call")
	}

	if n := len(UnitCircle(1)); n != 3 {
		t.Errorf("expected minimum of 3 points, got %d", n)
	}
}

func TestCircleSamples(t *testing.T) {
	if n := CircleSamples(0.5); n != 12 {
		t.Errorf("small radius should use 12 samples, got %d", n)
	}
	if n := CircleSamples(10); n < 90 {
		t.Errorf("radius 10 needs at least 90 samples, got %d", n)
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "tick_ms", Reason: "must be positive"}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("ConfigError should unwrap to ErrInvalidConfig")
	}
	expected := "dynamo: invalid configuration: tick_ms must be positive"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}
