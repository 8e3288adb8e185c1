package trie

// corrFrame is one stack frame of a CorrectionsWalker's DFS: the node
// being visited, its own DP row, and the row and edge char of its
// parent (needed to derive a child's row, including the
// transposition term).
type corrFrame[V any] struct {
	node      *Node[V]
	keys      []rune
	idx       int
	row       []int
	parentRow []int
	edgeChar  rune
	hasChar   bool // false only for the root frame
}

// CorrectionsWalker lazily enumerates every stored key whose
// restricted Damerau-Levenshtein distance to a fixed query is at most
// a fixed bound, via a DP-row-pruned depth-first trie traversal. A
// transposition is counted only for an adjacent pair with no other
// edit between it. Construct with (*Trie[V]).IterCorrections.
type CorrectionsWalker[V any] struct {
	guard       snapshotGuard[V]
	query       []rune
	maxDistance int
	stack       *frameStack[corrFrame[V]]
	path        []rune
}

// IterCorrections returns a lazy walker over every stored key k whose
// restricted Damerau-Levenshtein distance to query (substitution,
// insertion, deletion, transposition of an adjacent pair with no edit
// between) is at most maxDistance. That distance is never below
// DamerauLevenshtein(k, query); a key within maxDistance only through
// a transposition with other edits between it is not yielded. A
// negative maxDistance is clamped to 0.
func (t *Trie[V]) IterCorrections(query string, maxDistance int) *CorrectionsWalker[V] {
	if maxDistance < 0 {
		maxDistance = 0
	}
	q := []rune(query)
	w := &CorrectionsWalker[V]{
		guard:       newSnapshotGuard(t),
		query:       q,
		maxDistance: maxDistance,
		stack:       newFrameStack[corrFrame[V]](),
	}
	w.stack.Push(corrFrame[V]{
		node: t.root,
		keys: t.root.childKeys(),
		idx:  -1,
		row:  rootRow(len(q)),
	})
	return w
}

// Next returns the next key within the distance bound. The DFS order
// is ascending code-point order, deterministic but not meaningful as
// a ranking.
func (w *CorrectionsWalker[V]) Next() (key string, ok bool, err error) {
	if err := w.guard.check(); err != nil {
		return "", false, err
	}
	for {
		top := w.stack.Top()
		if top == nil {
			return "", false, nil
		}
		if top.idx == -1 {
			top.idx = 0
			if minRow(top.row) > w.maxDistance {
				top.idx = len(top.keys) // prune: do not descend
			}
			if top.node.terminal && top.row[len(w.query)] <= w.maxDistance {
				return string(w.path), true, nil
			}
			continue
		}
		if top.idx >= len(top.keys) {
			frame, _ := w.stack.Pop()
			if frame.hasChar {
				w.path = w.path[:len(w.path)-1]
			}
			continue
		}
		ch := top.keys[top.idx]
		top.idx++
		child, _ := top.node.children.Get(ch)
		depth := len(w.path) + 1
		newRow := computeRow(ch, top.row, top.parentRow, w.query, depth, top.edgeChar, top.hasChar)
		w.path = append(w.path, ch)
		w.stack.Push(corrFrame[V]{
			node:      child,
			keys:      child.childKeys(),
			idx:       -1,
			row:       newRow,
			parentRow: top.row,
			edgeChar:  ch,
			hasChar:   true,
		})
	}
}

// Collect materializes every remaining key from the walker.
func (w *CorrectionsWalker[V]) Collect() ([]string, error) {
	var out []string
	for {
		k, ok, err := w.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, k)
	}
}

// Corrections eagerly returns every stored key within maxDistance of
// query, by the same restricted Damerau-Levenshtein distance as
// IterCorrections (substitution/insertion/deletion/adjacent-
// transposition). A negative maxDistance is clamped to 0.
func (t *Trie[V]) Corrections(query string, maxDistance int) ([]string, error) {
	if !validUTF8Query(query) {
		return nil, errorf(ErrBadArgument, "query is not a valid UTF-8 character sequence")
	}
	return t.IterCorrections(query, maxDistance).Collect()
}

// IterCorrectionsAll returns a lazy walker over every stored key, with
// no distance bound: the "no query provided" mode from the original
// corrections() call, equivalent to IterSuffixes("").
func (t *Trie[V]) IterCorrectionsAll() *SuffixWalker[V] {
	return t.IterSuffixes("")
}

// CorrectionsAll eagerly returns every stored key: the "no query
// provided" mode of Corrections, equivalent to All().
func (t *Trie[V]) CorrectionsAll() []string {
	return t.All()
}
