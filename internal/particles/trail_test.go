package particles

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func sample(x float64) Vertex {
	return Vertex{Pos: r3.Vec{X: x}, Width: 1}
}

func TestTrailPushFrontOrdersNewestFirst(t *testing.T) {
	tr := NewTrail(4)
	for i := 1; i <= 3; i++ {
		tr.PushFront(sample(float64(i)))
	}

	if tr.Len() != 3 {
		t.Fatalf("Len = %d, expected 3", tr.Len())
	}
	for i, want := range []float64{3, 2, 1} {
		if got := tr.At(i).Pos.X; got != want {
			t.Fatalf("At(%d).Pos.X = %v, expected %v", i, got, want)
		}
	}
}

func TestTrailEvictsOldestAtCapacity(t *testing.T) {
	tr := NewTrail(3)
	for i := 1; i <= 5; i++ {
		tr.PushFront(sample(float64(i)))
		if tr.Len() > tr.Cap() {
			t.Fatalf("Len %d exceeded Cap %d", tr.Len(), tr.Cap())
		}
	}

	for i, want := range []float64{5, 4, 3} {
		if got := tr.At(i).Pos.X; got != want {
			t.Fatalf("At(%d).Pos.X = %v, expected %v", i, got, want)
		}
	}
}

func TestTrailReplaceFrontDoesNotGrow(t *testing.T) {
	tr := NewTrail(3)
	tr.PushFront(sample(1))
	tr.PushFront(sample(2))

	tr.ReplaceFront(sample(9))
	if tr.Len() != 2 {
		t.Fatalf("Len = %d after ReplaceFront, expected 2", tr.Len())
	}
	if got := tr.At(0).Pos.X; got != 9 {
		t.Fatalf("newest sample = %v, expected 9", got)
	}
	if got := tr.At(1).Pos.X; got != 1 {
		t.Fatalf("older sample = %v, expected 1", got)
	}
}

func TestTrailReplaceFrontOnEmpty(t *testing.T) {
	tr := NewTrail(2)
	tr.ReplaceFront(sample(7))
	if tr.Len() != 1 {
		t.Fatalf("Len = %d, expected 1", tr.Len())
	}
	if got := tr.At(0).Pos.X; got != 7 {
		t.Fatalf("newest sample = %v, expected 7", got)
	}
}

func TestTrailPopBack(t *testing.T) {
	tr := NewTrail(3)
	tr.PushFront(sample(1))
	tr.PushFront(sample(2))

	tr.PopBack()
	if tr.Len() != 1 {
		t.Fatalf("Len = %d after PopBack, expected 1", tr.Len())
	}
	if got := tr.At(0).Pos.X; got != 2 {
		t.Fatalf("remaining sample = %v, expected 2", got)
	}

	tr.PopBack()
	tr.PopBack() // popping empty is a no-op
	if tr.Len() != 0 {
		t.Fatalf("Len = %d, expected 0", tr.Len())
	}
}
