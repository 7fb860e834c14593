package accumulator

import (
	"crypto/sha256"

	"github.com/mit-dci/mmr/common"
)

// Hash is the 32 bytes of a sha256 hash
type Hash [32]byte

// MiniHash is the first 12 bytes of a sha256 hash
type MiniHash [12]byte

// empty is the all-zero hash; no live node ever carries it
var empty Hash

// Prefix returns the first 4 bytes of the hash, used for printfs
func (h Hash) Prefix() []byte {
	return h[:4]
}

// Mini takes the first 12 bytes of a hash and outputs a MiniHash
func (h Hash) Mini() (m MiniHash) {
	copy(m[:], h[:12])
	return
}

// HashFromString takes a string and hashes with sha256
func HashFromString(s string) Hash {
	return sha256.Sum256([]byte(s))
}

// leafHash turns raw element bytes into a leaf digest. Empty elements
// don't get one.
func leafHash(element []byte) (Hash, error) {
	if len(element) == 0 {
		return empty, ErrEmptyElement
	}
	return sha256.Sum256(element), nil
}

// parentHash gets you the merkle parent of two child hashes. There's no
// committing to height; a leaf digest and an interior digest over the same
// bytes are the same commitment.
func parentHash(l, r Hash) Hash {
	if l == empty || r == empty {
		panic("got an empty leaf here. ")
	}
	buf := common.NewFreeBytes()
	defer buf.Free()

	buf.Bytes = append(buf.Bytes, l[:]...)
	buf.Bytes = append(buf.Bytes, r[:]...)
	return sha256.Sum256(buf.Bytes)
}
