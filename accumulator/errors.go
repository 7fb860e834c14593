package accumulator

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyElement = errors.New("empty element")

	ErrInvalidNode = errors.New("invalid node reference")

	ErrNotFound = errors.New("element not tracked")

	ErrNodeLimit = errors.New("node limit reached")

	ErrBrokenForest = errors.New("broken parent/child link")

	ErrRemoveUnsupported = errors.New("remove not supported")

	ErrMismatchedTrees = errors.New("merge size mismatch")
)

func errNotFound(h Hash) error {
	return fmt.Errorf("%w: %x", ErrNotFound, h.Prefix())
}

func errNodeLimit(limit int) error {
	return fmt.Errorf("%w: %d nodes", ErrNodeLimit, limit)
}

func errBrokenForest(reason string) error {
	return fmt.Errorf("%w: %s", ErrBrokenForest, reason)
}
