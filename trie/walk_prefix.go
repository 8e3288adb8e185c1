package trie

// PrefixWalker lazily enumerates every stored key that is a prefix of
// (or equal to) a fixed query string, shortest first. Construct with
// (*Trie[V]).IterPrefixes.
type PrefixWalker[V any] struct {
	guard   snapshotGuard[V]
	query   []rune
	cur     *Node[V]
	pos     int
	blocked bool // descent hit a missing child; no further yields possible
}

// IterPrefixes returns a lazy walker over every stored key that is a
// prefix of query, including query itself if stored. An empty query
// yields nothing, since the root is never terminal.
func (t *Trie[V]) IterPrefixes(query string) *PrefixWalker[V] {
	return &PrefixWalker[V]{
		guard: newSnapshotGuard(t),
		query: []rune(query),
		cur:   t.root,
	}
}

// Next returns the next stored prefix of query, shortest first.
func (w *PrefixWalker[V]) Next() (key string, ok bool, err error) {
	if err := w.guard.check(); err != nil {
		return "", false, err
	}
	for !w.blocked && w.pos < len(w.query) {
		ch := w.query[w.pos]
		child, found := w.cur.children.Get(ch)
		if !found {
			w.blocked = true
			break
		}
		w.cur = child
		w.pos++
		if w.cur.terminal {
			return string(w.query[:w.pos]), true, nil
		}
	}
	return "", false, nil
}

// Collect materializes every remaining prefix, shortest first,
// optionally capped at limit results (limit <= 0 means unlimited).
func (w *PrefixWalker[V]) Collect(limit int) ([]string, error) {
	var out []string
	for limit <= 0 || len(out) < limit {
		k, ok, err := w.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, k)
	}
	return out, nil
}

// Prefixes eagerly returns every stored key that is a prefix of (or
// equal to) query, shortest first.
func (t *Trie[V]) Prefixes(query string) ([]string, error) {
	if !validUTF8Query(query) {
		return nil, errorf(ErrBadArgument, "query is not a valid UTF-8 character sequence")
	}
	return t.IterPrefixes(query).Collect(0)
}

// PrefixesLimit is Prefixes bounded to the first maxCount results
// (shortest first). maxCount <= 0 behaves like Prefixes.
func (t *Trie[V]) PrefixesLimit(query string, maxCount int) ([]string, error) {
	if !validUTF8Query(query) {
		return nil, errorf(ErrBadArgument, "query is not a valid UTF-8 character sequence")
	}
	return t.IterPrefixes(query).Collect(maxCount)
}
