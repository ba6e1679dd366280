package intervalindex

import (
	"testing"

	"github.com/chrissuu/elastisched/core/model"
)

func iv(low, high int) model.Interval[int] {
	return model.MustInterval(low, high)
}

func TestAnyOverlapFindsMatch(t *testing.T) {
	idx := New[int, string]()
	idx.Insert(iv(0, 10), "a")
	idx.Insert(iv(20, 30), "b")
	idx.Insert(iv(15, 25), "c")

	entry, ok := idx.AnyOverlap(iv(22, 28))
	if !ok {
		t.Fatal("expected a match")
	}
	if entry.Value != "b" && entry.Value != "c" {
		t.Fatalf("unexpected match value %q", entry.Value)
	}
}

func TestAnyOverlapNoMatch(t *testing.T) {
	idx := New[int, string]()
	idx.Insert(iv(0, 10), "a")
	idx.Insert(iv(20, 30), "b")

	if _, ok := idx.AnyOverlap(iv(11, 19)); ok {
		t.Fatal("did not expect a match in the gap")
	}
}

func TestAllOverlappingFindsEveryMatch(t *testing.T) {
	idx := New[int, string]()
	idx.Insert(iv(0, 10), "a")
	idx.Insert(iv(5, 15), "b")
	idx.Insert(iv(8, 20), "c")
	idx.Insert(iv(100, 110), "d")

	matches := idx.AllOverlapping(iv(9, 9))
	found := map[string]bool{}
	for _, m := range matches {
		found[m.Value] = true
	}
	// point query at 9: a=[0,10) contains 9, b=[5,15) contains 9, c=[8,20) contains 9.
	if !found["a"] || !found["b"] || !found["c"] || found["d"] {
		t.Fatalf("unexpected matches: %v", found)
	}
}

func TestAllOverlappingEmptyIndex(t *testing.T) {
	idx := New[int, string]()
	if matches := idx.AllOverlapping(iv(0, 100)); len(matches) != 0 {
		t.Fatalf("expected no matches in empty index, got %v", matches)
	}
}

func TestIndexLen(t *testing.T) {
	idx := New[int, int]()
	for i := 0; i < 5; i++ {
		idx.Insert(iv(i*10, i*10+5), i)
	}
	if got := idx.Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}
}

func TestAllOverlappingManyRandomIntervals(t *testing.T) {
	idx := New[int, int]()
	// insertion order deliberately skips around to exercise both subtrees.
	order := []int{50, 10, 90, 30, 70, 20, 40, 60, 80, 0}
	for _, low := range order {
		idx.Insert(iv(low, low+15), low)
	}
	matches := idx.AllOverlapping(iv(35, 45))
	if len(matches) == 0 {
		t.Fatal("expected at least one overlap")
	}
	for _, m := range matches {
		if !m.Interval.Overlaps(iv(35, 45)) {
			t.Errorf("reported non-overlapping interval %v", m.Interval)
		}
	}
}
