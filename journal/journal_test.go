package journal

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mit-dci/mmr/accumulator"
)

func TestJournalRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journal")

	j, err := Open(dir)
	require.NoError(t, err)

	elems := [][]byte{[]byte("1"), []byte("11"), []byte("111")}
	for _, e := range elems {
		require.NoError(t, j.Add(e))
	}
	id := j.ID()
	require.NoError(t, j.Close())

	// a reopen keeps the identity, the count, and the order
	j, err = Open(dir)
	require.NoError(t, err)
	defer j.Close()

	require.Equal(t, id, j.ID())
	require.Equal(t, uint64(3), j.NumEntries())

	var got [][]byte
	require.NoError(t, j.Replay(func(e []byte) error {
		got = append(got, e)
		return nil
	}))
	require.Equal(t, elems, got)

	// and appends continue after the existing entries
	require.NoError(t, j.Add([]byte("1111")))
	require.Equal(t, uint64(4), j.NumEntries())
}

func TestJournalRebuild(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journal")

	j, err := Open(dir)
	require.NoError(t, err)
	defer j.Close()

	direct := accumulator.NewMMR()
	for i := 1; i <= 10; i++ {
		elem := bytes.Repeat([]byte("1"), i)
		require.NoError(t, direct.Add(elem))
		require.NoError(t, j.Add(elem))
	}

	replayed := accumulator.NewMMR()
	require.NoError(t, j.Replay(replayed.Add))

	require.Equal(t, direct.NumLeaves(), replayed.NumLeaves())
	require.Equal(t, direct.GetRoots(), replayed.GetRoots())
}

func TestJournalEmptyEntry(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal"))
	require.NoError(t, err)
	defer j.Close()

	require.ErrorIs(t, j.Add(nil), ErrEmptyEntry)
	require.ErrorIs(t, j.Add([]byte{}), ErrEmptyEntry)
	require.Equal(t, uint64(0), j.NumEntries())
}

func TestJournalReplayStops(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal"))
	require.NoError(t, err)
	defer j.Close()

	for i := 1; i <= 5; i++ {
		require.NoError(t, j.Add(bytes.Repeat([]byte("x"), i)))
	}

	boom := errors.New("boom")
	seen := 0
	err = j.Replay(func(e []byte) error {
		seen++
		if seen == 3 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 3, seen)
}

func TestJournalFreshIdentity(t *testing.T) {
	a, err := Open(filepath.Join(t.TempDir(), "a"))
	require.NoError(t, err)
	defer a.Close()

	b, err := Open(filepath.Join(t.TempDir(), "b"))
	require.NoError(t, err)
	defer b.Close()

	require.NotEqual(t, a.ID(), b.ID())
}
