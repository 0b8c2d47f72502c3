package rand

import "testing"

func TestRandomDeterministicSequence(t *testing.T) {
	a, b := NewRandom(12345), NewRandom(12345)
	for i := 0; i < 1000; i++ {
		if av, bv := a.Int31(), b.Int31(); av != bv {
			t.Fatalf("sequences diverged at %d: %d vs %d", i, av, bv)
		}
	}
}

func TestRandomSetSeedRestartsSequence(t *testing.T) {
	r := NewRandom(99)
	first := make([]int32, 16)
	for i := range first {
		first[i] = r.Int31()
	}
	r.SetSeed(99)
	for i := range first {
		if v := r.Int31(); v != first[i] {
			t.Fatalf("sequence not restarted at %d: %d vs %d", i, v, first[i])
		}
	}
}

func TestRandomRangeBounds(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 10000; i++ {
		v := r.Range(-10, 10)
		if v < -10 || v > 10 {
			t.Fatalf("Range(-10, 10) produced %d", v)
		}
	}
	for i := 0; i < 10000; i++ {
		if v := r.Int31n(16); v < 0 || v >= 16 {
			t.Fatalf("Int31n(16) produced %d", v)
		}
	}
}

func TestRandomFloat64Bounds(t *testing.T) {
	r := NewRandom(0)
	for i := 0; i < 10000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 produced %v", f)
		}
	}
}
