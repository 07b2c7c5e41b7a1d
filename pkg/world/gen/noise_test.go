package gen

import (
	"math"
	"testing"
)

func TestNoiseDeterministic(t *testing.T) {
	a, b := NewNoiseGenerator(12345), NewNoiseGenerator(12345)
	for i := range 200 {
		x, y, z := float64(i)*0.13, float64(i)*0.27, float64(i)*0.41
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			t.Fatalf("Noise2D(%f, %f) differs between equal seeds", x, y)
		}
		if a.Noise3D(x, y, z) != b.Noise3D(x, y, z) {
			t.Fatalf("Noise3D(%f, %f, %f) differs between equal seeds", x, y, z)
		}
	}
}

func TestNoiseRange(t *testing.T) {
	ng := NewNoiseGenerator(42)
	for i := range 10000 {
		x := float64(i)*0.37 - 500
		y := float64(i)*0.53 - 500
		z := float64(i)*0.71 - 500
		if v := ng.Noise2D(x, y); v < -1 || v > 1 {
			t.Fatalf("Noise2D(%f, %f) = %f, out of [-1,1]", x, y, v)
		}
		if v := ng.Noise3D(x, y, z); v < -1 || v > 1 {
			t.Fatalf("Noise3D(%f, %f, %f) = %f, out of [-1,1]", x, y, z, v)
		}
		if v := ng.OctaveNoise2D(x, y, 6, 0.5); v < -1 || v > 1 {
			t.Fatalf("OctaveNoise2D(%f, %f) = %f, out of [-1,1]", x, y, v)
		}
	}
}

func TestNoiseSeedsDiffer(t *testing.T) {
	a, b := NewNoiseGenerator(1), NewNoiseGenerator(2)
	for i := range 100 {
		x, y := float64(i)*0.1+0.05, float64(i)*0.2+0.05
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			return
		}
	}
	t.Error("different seeds produced identical noise")
}

func TestOctaveNoise2DSmooth(t *testing.T) {
	ng := NewNoiseGenerator(456)
	prev := ng.OctaveNoise2D(0, 0, 4, 0.5)
	for i := 1; i < 1000; i++ {
		x := float64(i) * 0.01
		cur := ng.OctaveNoise2D(x, 0, 4, 0.5)
		if d := math.Abs(cur - prev); d > 0.1 {
			t.Fatalf("OctaveNoise2D jumped %f at x=%f", d, x)
		}
		prev = cur
	}
}

func TestOctaveNoise2DZeroOctaves(t *testing.T) {
	if v := NewNoiseGenerator(3).OctaveNoise2D(1.5, 2.5, 0, 0.5); v != 0 {
		t.Errorf("OctaveNoise2D with 0 octaves = %f, want 0", v)
	}
}
