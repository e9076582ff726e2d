package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(123)
	b := NewRNG(123)
	for i := 0; i < 100; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatalf("sequence diverged at draw %d", i)
		}
	}
}

func TestRNGSeedsDiffer(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.IntN(1000) == b.IntN(1000) {
			same++
		}
	}
	if same == 100 {
		t.Fatal("different seeds produced identical sequences")
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		if v := r.IntRange(5, 10); v < 5 || v >= 10 {
			t.Fatalf("IntRange(5, 10) = %d", v)
		}
		if v := r.Float64Range(-1, 1); v < -1 || v >= 1 {
			t.Fatalf("Float64Range(-1, 1) = %f", v)
		}
	}
}

func TestRNGDegenerateRanges(t *testing.T) {
	r := NewRNG(7)
	if v := r.IntRange(5, 5); v != 5 {
		t.Errorf("IntRange(5, 5) = %d", v)
	}
	if v := r.Float64Range(2, 1); v != 2 {
		t.Errorf("Float64Range(2, 1) = %f", v)
	}
	if v := r.IntN(0); v != 0 {
		t.Errorf("IntN(0) = %d", v)
	}
}

func TestRNGChanceSaturation(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 50; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) fired")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) missed")
		}
	}
}
