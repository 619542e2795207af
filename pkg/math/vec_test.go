package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Lerp(t *testing.T) {
	got := Vec2{0, 10}.Lerp(Vec2{10, 0}, 0.25)
	want := Vec2{2.5, 7.5}
	if got != want {
		t.Errorf("Vec2.Lerp() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing the zero vector should return zero")
	}
}

func TestApplyEuler(t *testing.T) {
	half := float32(math.Pi / 2)
	tests := []struct {
		name string
		v    Vec3
		e    Euler
		want Vec3
	}{
		{"identity", Vec3{0, 0, 1}, Euler{}, Vec3{0, 0, 1}},
		{"yaw brings right to back", Vec3{1, 0, 0}, Euler{Y: half}, Vec3{0, 0, -1}},
		{"yaw brings left to front", Vec3{-1, 0, 0}, Euler{Y: half}, Vec3{0, 0, 1}},
		{"positive pitch brings top to front", Vec3{0, 1, 0}, Euler{X: half}, Vec3{0, 0, 1}},
		{"negative pitch brings bottom to front", Vec3{0, -1, 0}, Euler{X: -half}, Vec3{0, 0, 1}},
		// X is applied after Y, so pitch tilts the already yawed vector.
		{"pitch after yaw", Vec3{-1, 0, 0}, Euler{X: half, Y: half}, Vec3{0, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ApplyEuler(tt.e)
			if got.Distance(tt.want) > 1e-5 {
				t.Errorf("ApplyEuler(%v, %v) = %v, want %v", tt.v, tt.e, got, tt.want)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	m := Compose(Vec3{0, 0, 1}, Euler{Y: float32(math.Pi)}, Splat(2))
	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{-2, 0, 1}
	if got.Distance(want) > 1e-5 {
		t.Errorf("Compose transform = %v, want %v", got, want)
	}
}
