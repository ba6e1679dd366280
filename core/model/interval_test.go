package model

import "testing"

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Interval[int]
		expected bool
	}{
		{"disjoint", MustInterval(0, 10), MustInterval(10, 20), false},
		{"touching-then-overlap", MustInterval(0, 10), MustInterval(9, 20), true},
		{"contained", MustInterval(0, 100), MustInterval(10, 20), true},
		{"identical", MustInterval(5, 15), MustInterval(5, 15), true},
		{"point-inside", Point(5), MustInterval(0, 10), true},
		{"point-at-low", Point(0), MustInterval(0, 10), true},
		{"point-at-high", Point(10), MustInterval(0, 10), false},
		{"point-outside", Point(20), MustInterval(0, 10), false},
		{"both-points-equal", Point(5), Point(5), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlaps(c.b); got != c.expected {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", c.a, c.b, got, c.expected)
			}
			if got := c.b.Overlaps(c.a); got != c.expected {
				t.Errorf("%v.Overlaps(%v) (reversed) = %v, want %v", c.b, c.a, got, c.expected)
			}
		})
	}
}

func TestIntervalOverlapLength(t *testing.T) {
	a := MustInterval(0, 10)
	b := MustInterval(5, 20)
	if got := a.OverlapLength(b); got != 5 {
		t.Errorf("overlap length = %d, want 5", got)
	}
	c := MustInterval(10, 20)
	if got := a.OverlapLength(c); got != 0 {
		t.Errorf("overlap length = %d, want 0", got)
	}
}

func TestIntervalContains(t *testing.T) {
	outer := MustInterval(0, 100)
	inner := MustInterval(10, 20)
	if !outer.Contains(inner) {
		t.Error("expected outer to contain inner")
	}
	if inner.Contains(outer) {
		t.Error("did not expect inner to contain outer")
	}
}

func TestNewIntervalRejectsInverted(t *testing.T) {
	if _, err := NewInterval(10, 5); err != ErrInvalidInterval {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestMustIntervalPanicsOnInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustInterval(10, 5)
}

func TestIntervalLength(t *testing.T) {
	if got := MustInterval[Time](100, 250).Length(); got != 150 {
		t.Errorf("length = %d, want 150", got)
	}
}
