package accumulator

// createLeaf hashes an element and allocates its leaf node. The leaf
// starts with no relations and stays off the tracker until the add that
// staged it commits.
func createLeaf(ar *arena, element []byte) (nodeRef, error) {
	h, err := leafHash(element)
	if err != nil {
		return nilRef, err
	}
	return ar.alloc(h, 1)
}

// merge hashes two equal size trees into a freshly allocated parent, with
// the carried (newer) root on the left. The parent knows its children but
// the children don't get linked back until the add commits, so a failed
// add can drop its staged nodes without touching the old forest.
func merge(ar *arena, carried, consumed nodeRef) (nodeRef, error) {
	cn, on := ar.at(carried), ar.at(consumed)
	if cn.leaves != on.leaves {
		return nilRef, ErrMismatchedTrees
	}
	h := parentHash(cn.hash, on.hash)
	leaves := cn.leaves * 2

	p, err := ar.alloc(h, leaves)
	if err != nil {
		return nilRef, err
	}
	pn := ar.at(p)
	pn.left = carried
	pn.right = consumed
	return p, nil
}

// link attaches a staged parent's children: each child gets its parent set
// and leaves the root list. Only called at add commit.
func link(ar *arena, p nodeRef) {
	pn := ar.at(p)
	l, r := pn.left, pn.right

	ar.at(l).parent = p
	ar.at(l).next = nilRef
	ar.at(r).parent = p
	ar.at(r).next = nilRef
}
