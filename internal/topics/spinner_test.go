package topics

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestSpinFrames(t *testing.T) {
	if SpinFrames != 36 {
		t.Fatalf("SpinFrames = %d, want 36", SpinFrames)
	}

	s := NewSpinner(All(), rand.NewPCG(1, 2))
	spin, err := s.Spin()
	if err != nil {
		t.Fatalf("Spin: %v", err)
	}
	if len(spin.Frames) != SpinFrames {
		t.Errorf("frames = %d, want %d", len(spin.Frames), SpinFrames)
	}
	for _, f := range append(spin.Frames, spin.Final) {
		if f < 0 || f >= s.Len() {
			t.Errorf("index %d out of range", f)
		}
	}
}

func TestSpinDeterministicWithSeed(t *testing.T) {
	a, _ := NewSpinner(All(), rand.NewPCG(7, 7)).Spin()
	b, _ := NewSpinner(All(), rand.NewPCG(7, 7)).Spin()
	if a.Final != b.Final {
		t.Errorf("final = %d and %d with the same seed", a.Final, b.Final)
	}
	for i := range a.Frames {
		if a.Frames[i] != b.Frames[i] {
			t.Fatalf("frame %d differs: %d vs %d", i, a.Frames[i], b.Frames[i])
		}
	}
}

func TestSpinEmpty(t *testing.T) {
	s := NewSpinner(nil, nil)
	if _, err := s.Spin(); !errors.Is(err, ErrNoTopics) {
		t.Errorf("Spin() error = %v, want ErrNoTopics", err)
	}
	if _, err := s.Pick(); !errors.Is(err, ErrNoTopics) {
		t.Errorf("Pick() error = %v, want ErrNoTopics", err)
	}
}

func TestPickSingle(t *testing.T) {
	only := Filter(All(), Technology, Hard)[:1]
	got, err := NewSpinner(only, nil).Pick()
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if got != only[0] {
		t.Errorf("Pick() = %+v, want %+v", got, only[0])
	}
}

func TestRandomQuote(t *testing.T) {
	q := RandomQuote(rand.New(rand.NewPCG(3, 4)))
	found := false
	for _, known := range Quotes() {
		if known == q {
			found = true
		}
	}
	if !found {
		t.Errorf("RandomQuote() = %+v, not in Quotes()", q)
	}
	if len(Quotes()) != 5 {
		t.Errorf("len(Quotes()) = %d, want 5", len(Quotes()))
	}
}
