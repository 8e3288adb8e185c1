package trie

import "github.com/Zubayear/triez/internal/ordmap"

// Node is a single node in the trie. Each node owns a child set keyed by
// the next rune on some stored key's path, and, if terminal, the value
// associated with the key that ends here.
type Node[V any] struct {
	children *ordmap.Map[rune, *Node[V]]
	terminal bool
	value    V
}

func newNode[V any]() *Node[V] {
	return &Node[V]{children: ordmap.New[rune, *Node[V]]()}
}

// childKeys returns this node's child runes in ascending order, the
// order every walker in this package must visit them in.
func (n *Node[V]) childKeys() []rune {
	return n.children.Keys()
}
