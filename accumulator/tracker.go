package accumulator

// item binds one tracked node to its bucket chain, along with an optional
// cached witness tagged with the accumulator generation it was built
// against.
type item struct {
	node nodeRef

	witness *Witness
	wgen    uint64

	next *item
}

// tracker is the registry of every node ever created, bucketed by the
// first 12 bytes of the digest. Distinct nodes with equal digests share a
// chain, and so do unrelated digests that happen to collide in their first
// 12 bytes, so chain walks always compare the full digest out of the
// arena.
type tracker struct {
	items map[MiniHash]*item
	count int
}

func newTracker() tracker {
	return tracker{items: make(map[MiniHash]*item)}
}

// insert registers a node. Inserting the same node twice is a no-op;
// distinct nodes chain up even when their digests are equal.
func (t *tracker) insert(ar *arena, r nodeRef) error {
	if !ar.valid(r) {
		return ErrInvalidNode
	}

	key := ar.at(r).hash.Mini()
	for it := t.items[key]; it != nil; it = it.next {
		if it.node == r {
			return nil // already tracked
		}
	}

	t.items[key] = &item{node: r, next: t.items[key]}
	t.count++
	return nil
}

// lookup returns the most recently inserted chain entry whose node carries
// this digest, or nil if no node does.
func (t *tracker) lookup(ar *arena, h Hash) *item {
	for it := t.items[h.Mini()]; it != nil; it = it.next {
		if ar.at(it.node).hash == h {
			return it
		}
	}
	return nil
}

// hasRoot reports whether some tracked node with this digest currently has
// no parent.
func (t *tracker) hasRoot(ar *arena, h Hash) bool {
	for it := t.items[h.Mini()]; it != nil; it = it.next {
		n := ar.at(it.node)
		if n.hash == h && n.parent == nilRef {
			return true
		}
	}
	return false
}

// numItems is the live record count.
func (t *tracker) numItems() int {
	return t.count
}

// reset drops every record and every cached witness. The tracker is empty
// and usable afterwards.
func (t *tracker) reset() {
	t.items = make(map[MiniHash]*item)
	t.count = 0
}
