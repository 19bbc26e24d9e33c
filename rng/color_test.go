package rng

import "testing"

func TestColorHSV_ChannelsInRange(t *testing.T) {
	e := New(42)
	for i := 0; i < 2000; i++ {
		c := e.ColorHSV(0.2, 0.9, 0.3, 1.0)
		for _, ch := range []float64{c.R, c.G, c.B} {
			if ch < 0 || ch > 1 {
				t.Fatalf("channel out of range: %+v", c)
			}
		}
	}
}

func TestColorHSV_ZeroSaturationIsGrey(t *testing.T) {
	e := New(7)
	c := e.ColorHSV(0, 0, 0.5, 0.5)
	if c.R != c.G || c.G != c.B {
		t.Fatalf("zero saturation should be grey: %+v", c)
	}
}

func TestColorHSV_Deterministic(t *testing.T) {
	a := New(11).ColorHSV(0.1, 0.8, 0.1, 0.8)
	b := New(11).ColorHSV(0.1, 0.8, 0.1, 0.8)
	if a != b {
		t.Fatalf("same seed, different colors: %+v vs %+v", a, b)
	}
}

func TestGreyscale(t *testing.T) {
	e := New(5)
	for i := 0; i < 1000; i++ {
		c := e.Greyscale(0.25, 0.75)
		if c.R != c.G || c.G != c.B {
			t.Fatalf("greyscale channels differ: %+v", c)
		}
		if c.R < 0.25 || c.R >= 0.75 {
			t.Fatalf("greyscale level out of [0.25,0.75): %v", c.R)
		}
	}
}
