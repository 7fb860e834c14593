package accumulator

import (
	"fmt"
	"sync"
)

// maxRoots bounds the root list; one root per set bit of a 64 bit leaf
// count.
const maxRoots = 64

// MMR is a merkle mountain range accumulator. Everything ever added lives
// in a forest of perfect trees whose sizes mirror the binary
// representation of the element count, and the ordered root hashes are the
// whole commitment.
type MMR struct {
	mtx sync.RWMutex

	ar arena
	tk tracker

	// top is the biggest current root; the rest of the root list threads
	// through the nodes' next refs in strictly shrinking size order
	top nodeRef

	// numLeaves is how many elements have ever been added
	numLeaves uint64

	// gen advances on every add; cached witnesses carry the gen they
	// were built against so stale ones get recomputed instead of served
	gen uint64
}

// NewMMR returns an empty accumulator.
func NewMMR() *MMR {
	return &MMR{
		tk:  newTracker(),
		top: nilRef,
	}
}

// newMMRWithLimit is NewMMR with a cap on live nodes. Adds that would
// overflow the cap fail without changing anything.
func newMMRWithLimit(limit int) *MMR {
	m := NewMMR()
	m.ar.limit = limit
	return m
}

// Add appends one element to the accumulator. The new leaf merges with the
// run of smallest roots the way incrementing a binary counter carries
// bits; the merge count equals the trailing set bits of the current leaf
// count. Every node the add needs is staged before the forest is touched,
// so a failed add leaves the accumulator exactly as it was.
func (m *MMR) Add(element []byte) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	mark := m.ar.size()

	n, err := createLeaf(&m.ar, element)
	if err != nil {
		return err
	}
	leaf := n

	staged := make([]nodeRef, 1, 8)
	staged[0] = n

	// the roots matching the trailing set bits of numLeaves are exactly
	// the tail of the shrinking root list
	roots := m.rootRefs()
	cut := len(roots)
	for h := uint8(0); (m.numLeaves>>h)&1 == 1; h++ {
		n, err = merge(&m.ar, n, roots[cut-1])
		if err != nil {
			m.ar.truncate(mark)
			return err
		}
		staged = append(staged, n)
		cut--
	}

	// commit: track everything staged, link the staged parents' children
	// out of the root list, splice the carried node in as the new
	// smallest root
	for _, r := range staged {
		if err := m.tk.insert(&m.ar, r); err != nil {
			return err
		}
	}
	for _, r := range staged[1:] {
		link(&m.ar, r)
	}
	if cut == 0 {
		m.top = n
	} else {
		m.ar.at(roots[cut-1]).next = n
	}
	m.numLeaves++
	m.gen++

	log.Tracef("add %x: %d merges, %d leaves, %d nodes",
		m.ar.at(leaf).hash.Prefix(), len(staged)-1, m.numLeaves, m.ar.size())
	return nil
}

// Remove is a stub. Removal has no semantics in this accumulator and every
// call fails.
func (m *MMR) Remove(w Witness) error {
	return ErrRemoveUnsupported
}

// Reset releases every node, every tracker record, and every cached
// witness. The accumulator is empty and usable afterwards.
func (m *MMR) Reset() {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	released := m.ar.size()
	m.ar.reset()
	m.tk.reset()
	m.top = nilRef
	m.numLeaves = 0
	m.gen = 0

	log.Debugf("reset: released %d nodes", released)
}

// NumLeaves returns how many elements have been added.
func (m *MMR) NumLeaves() uint64 {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.numLeaves
}

// NumNodes returns how many nodes are currently allocated. Leaves, roots,
// and all the interior history count; the forest never sheds nodes while
// it's alive.
func (m *MMR) NumNodes() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.ar.size()
}

// GetRoots returns the current root hashes, biggest tree first.
func (m *MMR) GetRoots() []Hash {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	refs := m.rootRefs()
	roots := make([]Hash, 0, len(refs))
	for _, r := range refs {
		roots = append(roots, m.ar.at(r).hash)
	}
	return roots
}

// ToString prints the root list on one line, biggest tree first.
func (m *MMR) ToString() string {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	s := ""
	for _, r := range m.rootRefs() {
		n := m.ar.at(r)
		s += fmt.Sprintf("%x...: [size %d] -> ", n.hash.Prefix(), n.leaves)
	}
	return s + "nil"
}

// rootRefs collects the current root refs, biggest first. Callers hold the
// lock.
func (m *MMR) rootRefs() []nodeRef {
	refs := make([]nodeRef, 0, maxRoots)
	for r := m.top; r != nilRef; r = m.ar.at(r).next {
		if len(refs) >= maxRoots {
			panic("more than 64 roots; the forest is corrupt")
		}
		refs = append(refs, r)
	}
	return refs
}
