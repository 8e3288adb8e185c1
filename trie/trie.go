// Package trie implements an in-memory trie (prefix tree) keyed by
// Unicode scalar values, associating each stored key with an opaque
// caller-provided value of type V.
//
// Beyond exact lookup and mutation it offers three structural queries:
// suffixes (keys beneath a prefix), prefixes (stored keys that are a
// prefix of a query), and corrections (stored keys within a bounded
// Damerau-Levenshtein distance of a query). Each has both an eager,
// materialized form and a lazy walker form; walkers are validated
// against a mutation epoch and fail deterministically if the trie is
// mutated while they are still live (see epoch.go).
//
// The trie is not safe for concurrent use: it is exclusively owned by
// a single logical operator at a time, and carries no internal
// locking. Multiple walkers may coexist over the same trie as long as
// no mutation happens while they are live.
package trie

import (
	"fmt"
	"unicode/utf8"
)

// Trie is a prefix tree over Unicode scalar values, holding values of
// type V. The zero value is not usable; construct with New.
type Trie[V any] struct {
	root      *Node[V]
	size      int
	nodeCount int
	epoch     uint64
}

// New returns an empty trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{root: newNode[V](), nodeCount: 1}
}

// Len returns the number of keys currently stored.
func (t *Trie[V]) Len() int {
	return t.size
}

// NodeCount returns the total number of nodes reachable from the
// root, including the root itself. Always >= 1.
func (t *Trie[V]) NodeCount() int {
	return t.nodeCount
}

// String reports a short summary, useful for debugging and the
// cmd/triez demo.
func (t *Trie[V]) String() string {
	return fmt.Sprintf("trie.Trie{len=%d, node_count=%d}", t.size, t.nodeCount)
}

func validateKeyArg(key string, allowEmpty bool) error {
	if !allowEmpty && key == "" {
		return errorf(ErrBadArgument, "empty key is not a valid insert target")
	}
	if !utf8.ValidString(key) {
		return errorf(ErrBadArgument, "key is not a valid UTF-8 character sequence")
	}
	return nil
}

// Insert associates key with value. If key is already present, the
// previous value is released (overwritten) and len is unchanged;
// otherwise len grows by one. The empty key is rejected with
// ErrBadArgument since the root can never be terminal.
func (t *Trie[V]) Insert(key string, value V) error {
	if err := validateKeyArg(key, false); err != nil {
		return err
	}
	cur := t.root
	for _, ch := range key {
		child, ok := cur.children.Get(ch)
		if !ok {
			child = newNode[V]()
			cur.children.Put(ch, child)
			t.nodeCount++
		}
		cur = child
	}
	if cur.terminal {
		cur.value = value
	} else {
		cur.terminal = true
		cur.value = value
		t.size++
	}
	t.epoch++
	return nil
}

// InsertAll inserts every key/value pair in m. It is a bulk-load
// convenience equivalent to calling Insert for each entry, useful when
// seeding a trie from a dictionary file.
func (t *Trie[V]) InsertAll(m map[string]V) error {
	for k, v := range m {
		if err := t.Insert(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (t *Trie[V]) descend(key string) (*Node[V], error) {
	if !utf8.ValidString(key) {
		return nil, errorf(ErrBadArgument, "key is not a valid UTF-8 character sequence")
	}
	cur := t.root
	for _, ch := range key {
		child, ok := cur.children.Get(ch)
		if !ok {
			return nil, errorf(ErrNotFound, "key %q not present", key)
		}
		cur = child
	}
	return cur, nil
}

// Lookup returns the value associated with key.
func (t *Trie[V]) Lookup(key string) (V, error) {
	var zero V
	n, err := t.descend(key)
	if err != nil {
		return zero, err
	}
	if !n.terminal {
		return zero, errorf(ErrNotFound, "key %q not present", key)
	}
	return n.value, nil
}

// Contains reports whether key is stored in the trie.
func (t *Trie[V]) Contains(key string) (bool, error) {
	n, err := t.descend(key)
	if err != nil {
		if errIs(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return n.terminal, nil
}

type pruneFrame[V any] struct {
	parent *Node[V]
	ch     rune
}

// Remove deletes key from the trie, releasing its value and pruning
// any node left with no children and no terminal marker, up to (but
// never including) the root.
func (t *Trie[V]) Remove(key string) error {
	if !utf8.ValidString(key) {
		return errorf(ErrBadArgument, "key is not a valid UTF-8 character sequence")
	}
	path := newFrameStack[pruneFrame[V]]()
	cur := t.root
	for _, ch := range key {
		child, ok := cur.children.Get(ch)
		if !ok {
			return errorf(ErrNotFound, "key %q not present", key)
		}
		path.Push(pruneFrame[V]{parent: cur, ch: ch})
		cur = child
	}
	if !cur.terminal {
		return errorf(ErrNotFound, "key %q not present", key)
	}
	cur.terminal = false
	var zero V
	cur.value = zero
	t.size--

	for {
		frame, ok := path.Pop()
		if !ok {
			break
		}
		child, _ := frame.parent.children.Get(frame.ch)
		if child.children.Len() == 0 && !child.terminal {
			frame.parent.children.Remove(frame.ch)
			t.nodeCount--
		} else {
			break
		}
	}
	t.epoch++
	return nil
}

// Clear empties the trie, releasing every stored value. Matches the
// discipline of stack.Clear: the underlying structure is dropped
// rather than walked and zeroed node by node.
func (t *Trie[V]) Clear() {
	t.root = newNode[V]()
	t.size = 0
	t.nodeCount = 1
	t.epoch++
}
