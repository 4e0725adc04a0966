package lru

import "testing"

func TestAddGet(t *testing.T) {
	c := New[string, int](4)

	c.Add("a", 1)
	c.Add("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %d, %v; want 2, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d; want 2", c.Len())
	}
}

func TestAddReplacesExisting(t *testing.T) {
	c := New[string, int](2)

	c.Add("a", 1)
	c.Add("a", 10)

	if c.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", c.Len())
	}
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("Get(a) = %d; want 10", v)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)

	c.Add("a", 1)
	c.Add("b", 2)

	// Touch "a" so that "b" becomes the eviction candidate.
	c.Get("a")
	c.Add("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a to survive eviction")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("expected c to be present")
	}
	if c.Evictions() != 1 {
		t.Errorf("Evictions() = %d; want 1", c.Evictions())
	}
}

func TestRemove(t *testing.T) {
	c := New[string, int](2)

	c.Add("a", 1)
	if !c.Remove("a") {
		t.Error("Remove(a) = false; want true")
	}
	if c.Remove("a") {
		t.Error("second Remove(a) = true; want false")
	}
	if _, ok := c.Get("a"); ok {
		t.Error("removed entry still retrievable")
	}
}

func TestClear(t *testing.T) {
	c := New[string, int](4)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d; want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("Get(a) after Clear reported a hit")
	}

	// The cache must remain usable after Clear.
	c.Add("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) after Clear = %d, %v; want 3, true", v, ok)
	}
}

func TestCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New with capacity 0 did not panic")
		}
	}()
	New[string, int](0)
}
