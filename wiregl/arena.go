package wiregl

// Arena accounts for mesh storage. Hosted Go cannot observe a failed make, so
// buffer growth is gated on an Arena instead: a refused Reserve is the
// allocation-failure signal, and every refused operation releases whatever it
// had reserved before returning.
//
// Arenas are not safe for concurrent use; each Object hangs on to exactly one.
type Arena interface {
	// Reserve asks for n more bytes of mesh storage. Returns false to refuse.
	Reserve(n int) bool
	// Release returns n bytes to the arena.
	Release(n int)
}

// Heap is the default arena. It never refuses.
type Heap struct{}

func (Heap) Reserve(int) bool { return true }
func (Heap) Release(int)      {}

// Budget is an arena with a hard byte cap.
type Budget struct {
	Limit int

	used int
}

func (b *Budget) Reserve(n int) bool {
	if n < 0 {
		return false
	}
	if b.used+n > b.Limit {
		return false
	}
	b.used += n
	return true
}

func (b *Budget) Release(n int) {
	b.used -= n
	if b.used < 0 {
		b.used = 0
	}
}

// Used reports the bytes currently reserved.
func (b *Budget) Used() int { return b.used }
