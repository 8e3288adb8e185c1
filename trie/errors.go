package trie

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Sentinel errors distinguishable with errors.Is. Key and argument
// failures wrap ErrNotFound or ErrBadArgument with github.com/pkg/errors
// so a caller gets both a stable sentinel to switch on and a call-site
// message; walkers return ErrStaleIterator itself, unwrapped.
var (
	// ErrNotFound is returned by Lookup/Remove when the key is absent
	// or names a non-terminal node.
	ErrNotFound = errors.New("trie: key not found")

	// ErrBadArgument is returned when a key argument is not a valid
	// character sequence for this trie: invalid UTF-8, or (for Insert)
	// the empty key, which the root can never represent as terminal.
	ErrBadArgument = errors.New("trie: bad argument")

	// ErrStaleIterator is returned by every step of a walker once the
	// trie has been structurally mutated since the walker was created.
	// Once returned, a walker returns it forever.
	ErrStaleIterator = errors.New("trie: stale iterator")
)

// errorf wraps sentinel with a call-site message while keeping it
// matchable with errors.Is(err, sentinel).
func errorf(sentinel error, format string, args ...any) error {
	return errors.Wrapf(sentinel, format, args...)
}

// errIs reports whether err wraps sentinel.
func errIs(err, sentinel error) bool {
	return stderrors.Is(err, sentinel)
}
