package reveal

import (
	"testing"
	"time"
)

func TestDelaysForFiveElements(t *testing.T) {
	got := Delays(5, PerElementDelay)
	want := []time.Duration{0, 30 * time.Millisecond, 60 * time.Millisecond, 90 * time.Millisecond, 120 * time.Millisecond}
	if len(got) != len(want) {
		t.Fatalf("Delays len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Delays[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if got[2].Seconds() != 0.06 {
		t.Fatalf("Delays[2] = %vs, want 0.06s", got[2].Seconds())
	}
}

func TestDelaysEmpty(t *testing.T) {
	if got := Delays(0, PerElementDelay); got != nil {
		t.Fatalf("Delays(0) = %v, want nil", got)
	}
}

func TestSequenceStartsElementsInOrder(t *testing.T) {
	s := NewSequence(3, PerElementDelay)
	s.Advance(0)
	if !s.Frame(0).Started || s.Frame(1).Started {
		t.Fatal("only the first element should start at t=0")
	}
	if f := s.Frame(2); f.Offset != Rise || f.Opacity != 0 {
		t.Fatalf("pending element moved: %+v", f)
	}

	s.Advance(20 * time.Millisecond)
	s.Advance(15 * time.Millisecond)
	if !s.Frame(1).Started || s.Frame(2).Started {
		t.Fatal("second element should have started, third not")
	}
	if s.Frame(0).Offset >= s.Frame(1).Offset {
		t.Fatalf("earlier element should be further along: %v vs %v", s.Frame(0).Offset, s.Frame(1).Offset)
	}
}

func TestSequenceSettles(t *testing.T) {
	s := NewSequence(len(Glyphs("Hidden Leaf")), PerElementDelay)
	for range 240 {
		s.Advance(time.Second / 60)
	}
	if !s.Done() {
		t.Fatalf("sequence not done, last frame %+v", s.Frame(s.Len()-1))
	}
}
