package accumulator

import (
	"fmt"
)

// MaxWitnessHeight bounds the fold count of any witness this package will
// build or accept. One fold per doubling, so 63 covers every forest a
// 64 bit leaf count can reach.
const MaxWitnessHeight = 63

// Witness proves one element's inclusion. Siblings run bottom-up, and bit
// i of Path says which side the running hash folds in on at level i: set
// means the running hash is the left operand and Siblings[i] the right.
type Witness struct {
	LeafHash Hash
	Siblings []Hash
	Path     uint64
}

// Height is the number of folds to reach a root.
func (w Witness) Height() uint8 {
	return uint8(len(w.Siblings))
}

// String is a short print of the witness for logs.
func (w Witness) String() string {
	return fmt.Sprintf("leaf %x height %d path %b",
		w.LeafHash.Prefix(), w.Height(), w.Path)
}

// clone copies the witness so the caller and the cache can't write into
// each other's sibling slice.
func (w Witness) clone() Witness {
	c := w
	c.Siblings = append([]Hash(nil), w.Siblings...)
	return c
}

// Witness builds an inclusion proof for an element that was added earlier.
// The walk runs leaf to root over parent refs, grabbing the sibling digest
// at every level. Fresh proofs get cached on the element's tracker record,
// and a cached proof is served only while no add has landed since it was
// built.
func (m *MMR) Witness(element []byte) (Witness, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	h, err := leafHash(element)
	if err != nil {
		return Witness{}, err
	}

	it := m.tk.lookup(&m.ar, h)
	if it == nil {
		return Witness{}, errNotFound(h)
	}

	if it.witness != nil && it.wgen == m.gen {
		log.Tracef("witness %x: cache hit at gen %d", h.Prefix(), m.gen)
		return it.witness.clone(), nil
	}

	w, err := m.buildWitness(it.node)
	if err != nil {
		return Witness{}, err
	}

	cached := w.clone()
	it.witness = &cached
	it.wgen = m.gen

	log.Debugf("witness %x: height %d path %b", h.Prefix(), w.Height(), w.Path)
	return w, nil
}

// buildWitness walks from start up to its root, collecting siblings and
// path bits. Callers hold the lock.
func (m *MMR) buildWitness(start nodeRef) (Witness, error) {
	w := Witness{LeafHash: m.ar.at(start).hash}

	cur := start
	for height := uint(0); ; height++ {
		p := m.ar.at(cur).parent
		if p == nilRef {
			break
		}
		if height >= MaxWitnessHeight {
			return Witness{}, errBrokenForest("parent chain too long")
		}
		if !m.ar.valid(p) {
			return Witness{}, errBrokenForest("parent ref out of range")
		}

		pn := m.ar.at(p)
		var sib nodeRef
		switch cur {
		case pn.left:
			// on the left, so the sibling folds in on the right
			w.Path |= 1 << height
			sib = pn.right
		case pn.right:
			sib = pn.left
		default:
			return Witness{}, errBrokenForest("node not a child of its parent")
		}
		if !m.ar.valid(sib) {
			return Witness{}, errBrokenForest("sibling ref out of range")
		}

		w.Siblings = append(w.Siblings, m.ar.at(sib).hash)
		cur = p
	}

	return w, nil
}

// Verify replays a witness fold and accepts only if the digest left after
// consuming every sibling is a current root. Matching a root part way down
// the path proves a subtree, not the element, and is rejected.
func (m *MMR) Verify(w Witness) bool {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	if len(w.Siblings) > MaxWitnessHeight {
		return false
	}
	if w.Path >= 1<<uint(len(w.Siblings)) {
		return false
	}
	if w.LeafHash == empty {
		return false
	}

	n := w.LeafHash
	for i, sib := range w.Siblings {
		if sib == empty {
			return false
		}
		if w.Path>>uint(i)&1 == 1 {
			n = parentHash(n, sib)
		} else {
			n = parentHash(sib, n)
		}
	}

	return m.tk.hasRoot(&m.ar, n)
}
