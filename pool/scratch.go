package pool

// Scratch is a typed free-list recycler for values that are allocated and
// released at high frequency within a single call and never escape it --
// the balance engine's transient candidate quadrants (spec 4.E, 9). Unlike
// Arena, Scratch hands back *T pointers directly: candidates are compared
// and discarded by value well before anything needs a stable index handle,
// so the extra indirection an Arena gives buys nothing here.
type Scratch[T any] struct {
	free []*T
}

// NewScratch creates an empty scratch pool.
func NewScratch[T any]() *Scratch[T] {
	return &Scratch[T]{}
}

// Get returns a recycled *T if one is free, or a freshly allocated zero
// value otherwise.
func (s *Scratch[T]) Get() *T {
	if n := len(s.free); n > 0 {
		v := s.free[n-1]
		s.free = s.free[:n-1]
		var zero T
		*v = zero
		return v
	}
	return new(T)
}

// Put returns v to the pool for reuse.
func (s *Scratch[T]) Put(v *T) {
	s.free = append(s.free, v)
}

// Len reports how many values are currently sitting idle in the pool.
func (s *Scratch[T]) Len() int { return len(s.free) }
