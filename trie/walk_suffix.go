package trie

// suffixFrame is one stack frame of a SuffixWalker's depth-first
// traversal: the node currently being visited, its children in
// ascending order, and a cursor into that slice.
type suffixFrame[V any] struct {
	node    *Node[V]
	keys    []rune
	idx     int
	hasChar bool // false only for the walker's start frame
}

// SuffixWalker lazily enumerates every stored key beginning with a
// fixed prefix, in ascending code-point order. Construct with
// (*Trie[V]).IterSuffixes. A SuffixWalker is single-use: once Next
// reports ok=false it stays exhausted.
type SuffixWalker[V any] struct {
	guard  snapshotGuard[V]
	stack  *frameStack[suffixFrame[V]]
	path   []rune
	baseAt int // len(path) once popped back past this, the walker is exhausted
}

// IterSuffixes returns a lazy walker over every stored key beginning
// with prefix. An empty or omitted prefix matches every key. If
// prefix does not resolve to a node, the walker yields nothing.
func (t *Trie[V]) IterSuffixes(prefix string) *SuffixWalker[V] {
	w := &SuffixWalker[V]{
		guard: newSnapshotGuard(t),
		stack: newFrameStack[suffixFrame[V]](),
	}
	start, err := t.descend(prefix)
	if err != nil {
		return w // resolution failed: empty sequence, no error surfaced
	}
	w.path = []rune(prefix)
	w.baseAt = len(w.path)
	w.stack.Push(suffixFrame[V]{node: start, keys: start.childKeys(), idx: -1})
	return w
}

// Next returns the next key in the traversal. ok is false once the
// walker is exhausted, with err nil; err is non-nil only on
// ErrStaleIterator.
func (w *SuffixWalker[V]) Next() (key string, ok bool, err error) {
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
			if top.node.terminal {
				return string(w.path), true, nil
			}
			continue
		}
		if top.idx >= len(top.keys) {
			w.stack.Pop()
			if len(w.path) > w.baseAt {
				w.path = w.path[:len(w.path)-1]
			}
			continue
		}
		ch := top.keys[top.idx]
		top.idx++
		child, _ := top.node.children.Get(ch)
		w.path = append(w.path, ch)
		w.stack.Push(suffixFrame[V]{node: child, keys: child.childKeys(), idx: -1, hasChar: true})
	}
}

// Collect materializes every remaining key from the walker, in
// traversal order.
func (w *SuffixWalker[V]) Collect() ([]string, error) {
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

// Suffixes eagerly returns every stored key beginning with prefix, in
// ascending code-point order.
func (t *Trie[V]) Suffixes(prefix string) ([]string, error) {
	if !validUTF8Query(prefix) {
		return nil, errorf(ErrBadArgument, "prefix is not a valid UTF-8 character sequence")
	}
	return t.IterSuffixes(prefix).Collect()
}

// All returns every key stored in the trie, equivalent to
// Suffixes("").
func (t *Trie[V]) All() []string {
	keys, _ := t.Suffixes("")
	return keys
}
