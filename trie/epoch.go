package trie

// snapshotGuard is embedded in every walker. It captures the trie's
// epoch at walker creation and, once the epoch has moved, latches into
// a permanent stale state: every subsequent call, not just the one
// that first observes the change, reports ErrStaleIterator.
type snapshotGuard[V any] struct {
	trie   *Trie[V]
	epoch0 uint64
	stale  bool
}

func newSnapshotGuard[V any](t *Trie[V]) snapshotGuard[V] {
	return snapshotGuard[V]{trie: t, epoch0: t.epoch}
}

// check reports ErrStaleIterator if the trie has mutated since this
// guard was created, or previously went stale. It latches: once it
// returns an error, it always will, even if by coincidence the epoch
// counter were to match again.
func (g *snapshotGuard[V]) check() error {
	if g.stale {
		return ErrStaleIterator
	}
	if g.trie.epoch != g.epoch0 {
		g.stale = true
		return ErrStaleIterator
	}
	return nil
}
