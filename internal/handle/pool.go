// Package handle implements the dense, freelist-backed slot vector the
// Context uses for each of its nine owned resource kinds (spec §4.11):
// "handles are dense integer indices into context-owned vectors;
// destroy_* marks a slot reusable (the next create_* may reuse it)."
//
// No third-party slot-map/freelist library is importable for this
// purpose (the closest same-purpose generics bitmap in the retrieved
// corpus is unexported to its own module — see DESIGN.md); this is a
// deliberately small stdlib-only data structure rather than a false
// dependency.
package handle

// Pool is a generic dense slot vector with freelist-based slot reuse.
// The zero value is ready to use.
type Pool[T any] struct {
	slots []slot[T]
	free  []uint32
}

type slot[T any] struct {
	value T
	live  bool
}

// Alloc stores v in a free (or newly appended) slot and returns its
// index.
func (p *Pool[T]) Alloc(v T) uint32 {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		p.slots[idx] = slot[T]{value: v, live: true}
		return idx
	}
	p.slots = append(p.slots, slot[T]{value: v, live: true})
	return uint32(len(p.slots) - 1)
}

// Get returns the value at idx and whether the slot is live.
func (p *Pool[T]) Get(idx uint32) (T, bool) {
	if int(idx) >= len(p.slots) || !p.slots[idx].live {
		var zero T
		return zero, false
	}
	return p.slots[idx].value, true
}

// Set overwrites the value at idx if the slot is live.
func (p *Pool[T]) Set(idx uint32, v T) bool {
	if int(idx) >= len(p.slots) || !p.slots[idx].live {
		return false
	}
	p.slots[idx].value = v
	return true
}

// Free marks idx reusable. Freeing an already-free or out-of-range slot
// is a no-op (spec §7: destroying an invalid handle is undefined
// behavior in release builds; this package simply declines to corrupt
// state rather than asserting). Slots carry no generation counter, so a
// handle to a freed slot that has since been reused reaches the new value.
func (p *Pool[T]) Free(idx uint32) {
	if int(idx) >= len(p.slots) || !p.slots[idx].live {
		return
	}
	var zero T
	p.slots[idx] = slot[T]{value: zero, live: false}
	p.free = append(p.free, idx)
}

// Live reports whether idx names a currently allocated slot.
func (p *Pool[T]) Live(idx uint32) bool {
	return int(idx) < len(p.slots) && p.slots[idx].live
}

// Len returns the dense slot count, including freed holes.
func (p *Pool[T]) Len() int { return len(p.slots) }
