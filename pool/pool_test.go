package pool

import "testing"

func TestArenaAllocFreeReuse(t *testing.T) {
	a := NewArena(8)
	r1 := a.Alloc()
	copy(a.Bytes(r1), []byte("hello!!!"))
	r2 := a.Alloc()
	if r1 == r2 {
		t.Fatalf("expected distinct refs")
	}
	a.Free(r1)
	r3 := a.Alloc()
	if r3 != r1 {
		t.Fatalf("expected freed slot %d to be recycled, got %d", r1, r3)
	}
	if got := a.Bytes(r3); string(got) != "\x00\x00\x00\x00\x00\x00\x00\x00" {
		t.Fatalf("expected recycled slot to be zeroed, got %q", got)
	}
}

func TestArenaInvalidRefPanics(t *testing.T) {
	a := NewArena(4)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on invalid ref")
		}
	}()
	a.Bytes(Ref(99))
}

func TestScratchReuse(t *testing.T) {
	type candidate struct{ X, Y int32 }
	sp := NewScratch[candidate]()
	c1 := sp.Get()
	c1.X = 42
	sp.Put(c1)
	c2 := sp.Get()
	if c2 != c1 {
		t.Fatalf("expected scratch to recycle the same pointer")
	}
	if c2.X != 0 {
		t.Fatalf("expected recycled value to be zeroed, got %+v", c2)
	}
}
