package accumulator

// nodeRef is a stable index into the arena. Refs stay valid for the life of
// the accumulator; pointers into the arena only stay valid until the next
// alloc.
type nodeRef uint32

// nilRef marks an absent relation
const nilRef = ^nodeRef(0)

// node is one vertex of a perfect tree in the forest. All its relations are
// arena refs, never pointers.
type node struct {
	hash   Hash
	leaves uint64 // leaf count under this node; always a power of 2

	parent nodeRef
	left   nodeRef
	right  nodeRef

	// next threads the root list through the forest and only means
	// anything while the node has no parent
	next nodeRef
}

// arena owns the storage for every node ever created. Everything else in
// the package holds nodeRefs into it.
type arena struct {
	nodes []node

	// limit caps how many nodes may be live at once; 0 means unlimited
	limit int
}

// alloc creates a node with no relations and returns its ref.
func (a *arena) alloc(h Hash, leaves uint64) (nodeRef, error) {
	if a.limit > 0 && len(a.nodes) >= a.limit {
		return nilRef, errNodeLimit(a.limit)
	}

	a.nodes = append(a.nodes, node{
		hash:   h,
		leaves: leaves,
		parent: nilRef,
		left:   nilRef,
		right:  nilRef,
		next:   nilRef,
	})
	return nodeRef(len(a.nodes) - 1), nil
}

// at hands out a pointer to the node behind r. The pointer goes stale on
// the next alloc; hold refs across allocs, not pointers.
func (a *arena) at(r nodeRef) *node {
	return &a.nodes[r]
}

// valid reports whether r points at a live node.
func (a *arena) valid(r nodeRef) bool {
	return r != nilRef && int(r) < len(a.nodes)
}

// size is the live node count.
func (a *arena) size() int {
	return len(a.nodes)
}

// truncate drops every node allocated at or after mark. Only safe while
// nothing below mark links to anything at or after it; add's staging keeps
// that true.
func (a *arena) truncate(mark int) {
	a.nodes = a.nodes[:mark]
}

// reset drops everything.
func (a *arena) reset() {
	a.nodes = nil
}
