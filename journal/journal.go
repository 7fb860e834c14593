// Package journal is an append-only element log backed by leveldb. Entries
// keep their insertion order under big-endian sequence keys, so replaying a
// journal feeds an accumulator the exact add sequence that built it. Every
// journal gets a uuid stamped at creation so restarts can tell whose
// history they picked up.
package journal

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var ErrEmptyEntry = errors.New("empty journal entry")

// the identity key and the prefix all element entries sort under
var (
	idKey      = []byte("meta:id")
	elemPrefix = []byte("e:")
)

// Journal wraps the backing db with the next sequence number to hand out.
type Journal struct {
	db   *leveldb.DB
	id   uuid.UUID
	next uint64
}

// Open opens the journal at path, creating and stamping it if it doesn't
// exist yet.
func Open(path string) (*Journal, error) {
	o := new(opt.Options)
	db, err := leveldb.OpenFile(path, o)
	if err != nil {
		return nil, err
	}

	j := &Journal{db: db}

	idb, err := db.Get(idKey, nil)
	switch err {
	case nil:
		j.id, err = uuid.FromBytes(idb)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("bad journal id: %v", err)
		}
	case leveldb.ErrNotFound:
		j.id = uuid.New()
		err = db.Put(idKey, j.id[:], nil)
		if err != nil {
			db.Close()
			return nil, err
		}
	default:
		db.Close()
		return nil, err
	}

	// pick the sequence back up after the last entry
	iter := db.NewIterator(util.BytesPrefix(elemPrefix), nil)
	if iter.Last() {
		j.next = seqFromKey(iter.Key()) + 1
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		db.Close()
		return nil, err
	}

	log.Infof("journal %s open with %d entries", j.id, j.next)
	return j, nil
}

func elemKey(seq uint64) []byte {
	key := make([]byte, len(elemPrefix)+8)
	copy(key, elemPrefix)
	binary.BigEndian.PutUint64(key[len(elemPrefix):], seq)
	return key
}

func seqFromKey(key []byte) uint64 {
	return binary.BigEndian.Uint64(key[len(elemPrefix):])
}

// Add appends one element to the journal.
func (j *Journal) Add(element []byte) error {
	if len(element) == 0 {
		return ErrEmptyEntry
	}

	err := j.db.Put(elemKey(j.next), element, nil)
	if err != nil {
		return err
	}
	j.next++
	return nil
}

// Replay feeds every journaled element, oldest first, into apply, stopping
// on the first error apply returns.
func (j *Journal) Replay(apply func(element []byte) error) error {
	iter := j.db.NewIterator(util.BytesPrefix(elemPrefix), nil)
	defer iter.Release()

	n := 0
	for iter.Next() {
		// the iterator reuses its value buffer
		element := append([]byte(nil), iter.Value()...)
		if err := apply(element); err != nil {
			return err
		}
		n++
	}
	if err := iter.Error(); err != nil {
		return err
	}

	log.Debugf("replayed %d entries", n)
	return nil
}

// ID is the identity stamped into the journal when it was created.
func (j *Journal) ID() uuid.UUID {
	return j.id
}

// NumEntries is how many elements the journal holds.
func (j *Journal) NumEntries() uint64 {
	return j.next
}

// Close closes the backing db.
func (j *Journal) Close() error {
	return j.db.Close()
}
