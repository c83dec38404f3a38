package rgatext

import "testing"

func TestSiteCounter_IncrementAndValue(t *testing.T) {
	c := newSiteCounter()
	if c.value(0) != 0 {
		t.Fatalf("expected 0 for an untouched slot, got %d", c.value(0))
	}
	c.increment(0)
	c.increment(0)
	c.increment(3)
	if c.value(0) != 2 {
		t.Fatalf("expected 2, got %d", c.value(0))
	}
	if c.value(3) != 1 {
		t.Fatalf("expected 1, got %d", c.value(3))
	}
	if c.value(7) != 0 {
		t.Fatalf("expected 0 for a slot never incremented, got %d", c.value(7))
	}
}
