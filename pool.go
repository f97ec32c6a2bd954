package scrollview

// FreePool holds deactivated item instances awaiting reuse.
// Order is irrelevant to callers; Pop returns the most recently pushed
// instance so recently used items are rebound first.
//
// The pool owns its instances: an item is either mounted in a Content or
// held here, never both.
type FreePool struct {
	items []Item
}

// Put deactivates an item and takes ownership of it.
func (p *FreePool) Put(it Item) {
	if it == nil {
		return
	}
	it.SetActive(false)
	p.items = append(p.items, it)
}

// Pop removes and returns an instance, or nil when the pool is empty.
func (p *FreePool) Pop() Item {
	n := len(p.items)
	if n == 0 {
		return nil
	}
	it := p.items[n-1]
	p.items[n-1] = nil // Avoid holding references (helps GC)
	p.items = p.items[:n-1]
	return it
}

// Len returns the number of pooled instances.
func (p *FreePool) Len() int {
	return len(p.items)
}

// Drain disposes every pooled instance and empties the pool.
// Returns the number of instances released.
func (p *FreePool) Drain() int {
	n := len(p.items)
	for i, it := range p.items {
		dispose(it)
		p.items[i] = nil
	}
	p.items = p.items[:0]
	return n
}
