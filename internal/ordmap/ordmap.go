// Package ordmap provides a generic, ordered map backed by a red-black
// tree. It is the node store behind trie.Node's child set: it gives
// O(log C) lookup/insert/delete for a node's children while keeping
// ascending iteration over the key space, which the trie needs for
// deterministic depth-first traversal.
package ordmap

import "golang.org/x/exp/constraints"

type color bool

const (
	red   color = true
	black color = false
)

type node[K constraints.Ordered, V any] struct {
	key    K
	value  V
	color  color
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// Map is an ordered map keyed by K, implemented as a red-black tree.
// The zero value is not usable; construct with New.
type Map[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty Map.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

func (m *Map[K, V]) isRed(n *node[K, V]) bool {
	if n == nil {
		return false
	}
	return n.color == red
}

func (m *Map[K, V]) grandparent(n *node[K, V]) *node[K, V] {
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent.parent
}

func (m *Map[K, V]) rotateLeft(x *node[K, V]) *node[K, V] {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		m.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	return y
}

func (m *Map[K, V]) rotateRight(x *node[K, V]) *node[K, V] {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		m.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.right = x
	x.parent = y
	return y
}

// Put inserts or overwrites the value for key. Returns true if key was
// newly inserted (size grew), false if an existing key was overwritten.
func (m *Map[K, V]) Put(key K, value V) bool {
	n := m.findNode(key)
	if n != nil {
		n.value = value
		return false
	}
	newNode := &node[K, V]{key: key, value: value, color: red}
	m.root = m.insertBST(m.root, newNode)
	m.fixInsert(newNode)
	m.size++
	return true
}

func (m *Map[K, V]) insertBST(root, n *node[K, V]) *node[K, V] {
	if root == nil {
		return n
	}
	if n.key < root.key {
		root.left = m.insertBST(root.left, n)
		root.left.parent = root
	} else {
		root.right = m.insertBST(root.right, n)
		root.right.parent = root
	}
	return root
}

func (m *Map[K, V]) fixInsert(n *node[K, V]) {
	for n != m.root && m.isRed(n.parent) {
		g := m.grandparent(n)
		if g == nil {
			break
		}
		if n.parent == g.left {
			u := g.right
			if m.isRed(u) {
				n.parent.color = black
				u.color = black
				g.color = red
				n = g
			} else {
				if n == n.parent.right {
					n = n.parent
					m.rotateLeft(n)
				}
				n.parent.color = black
				g.color = red
				m.rotateRight(g)
			}
		} else {
			u := g.left
			if m.isRed(u) {
				n.parent.color = black
				u.color = black
				g.color = red
				n = g
			} else {
				if n == n.parent.left {
					n = n.parent
					m.rotateRight(n)
				}
				n.parent.color = black
				g.color = red
				m.rotateLeft(g)
			}
		}
	}
	if m.root != nil {
		m.root.color = black
	}
}

// Get returns the value stored for key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n := m.findNode(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

func (m *Map[K, V]) findNode(key K) *node[K, V] {
	cur := m.root
	for cur != nil {
		if key == cur.key {
			return cur
		} else if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil
}

func (m *Map[K, V]) transplant(u, v *node[K, V]) {
	if u.parent == nil {
		m.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (m *Map[K, V]) minimum(n *node[K, V]) *node[K, V] {
	cur := n
	for cur.left != nil {
		cur = cur.left
	}
	return cur
}

// Remove deletes key from the map. Returns the removed value and true
// if key was present.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	z := m.findNode(key)
	var zero V
	if z == nil {
		return zero, false
	}
	removed := z.value

	y := z
	originalColor := y.color
	var x *node[K, V]
	var xParent *node[K, V]

	if z.left == nil {
		x = z.right
		xParent = z.parent
		m.transplant(z, z.right)
	} else if z.right == nil {
		x = z.left
		xParent = z.parent
		m.transplant(z, z.left)
	} else {
		y = m.minimum(z.right)
		originalColor = y.color
		x = y.right
		if y.parent == z {
			if x != nil {
				x.parent = y
			}
			xParent = y
		} else {
			xParent = y.parent
			m.transplant(y, y.right)
			y.right = z.right
			if y.right != nil {
				y.right.parent = y
			}
		}
		m.transplant(z, y)
		y.left = z.left
		if y.left != nil {
			y.left.parent = y
		}
		y.color = z.color
	}

	if originalColor == black {
		m.fixDelete(x, xParent)
	}

	m.size--
	return removed, true
}

func (m *Map[K, V]) fixDelete(x *node[K, V], parent *node[K, V]) {
	for (x != m.root) && (x == nil || !m.isRed(x)) {
		var sib *node[K, V]
		if parent == nil {
			break
		}
		if x == parent.left {
			sib = parent.right
			if m.isRed(sib) {
				sib.color = black
				parent.color = red
				m.rotateLeft(parent)
				sib = parent.right
			}
			if sib == nil || (!m.isRed(sib.left) && !m.isRed(sib.right)) {
				if sib != nil {
					sib.color = red
				}
				x = parent
				parent = x.parent
			} else {
				if !m.isRed(sib.right) {
					if sib.left != nil {
						sib.left.color = black
					}
					sib.color = red
					m.rotateRight(sib)
					sib = parent.right
				}
				if sib != nil {
					sib.color = parent.color
					if sib.right != nil {
						sib.right.color = black
					}
				}
				parent.color = black
				m.rotateLeft(parent)
				x = m.root
				parent = nil
			}
		} else {
			sib = parent.left
			if m.isRed(sib) {
				sib.color = black
				parent.color = red
				m.rotateRight(parent)
				sib = parent.left
			}
			if sib == nil || (!m.isRed(sib.left) && !m.isRed(sib.right)) {
				if sib != nil {
					sib.color = red
				}
				x = parent
				parent = x.parent
			} else {
				if !m.isRed(sib.left) {
					if sib.right != nil {
						sib.right.color = black
					}
					sib.color = red
					m.rotateLeft(sib)
					sib = parent.left
				}
				if sib != nil {
					sib.color = parent.color
					if sib.left != nil {
						sib.left.color = black
					}
				}
				parent.color = black
				m.rotateRight(parent)
				x = m.root
				parent = nil
			}
		}
	}
	if x != nil {
		x.color = black
	}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Keys returns every key in ascending order.
func (m *Map[K, V]) Keys() []K {
	result := make([]K, 0, m.size)
	m.inorder(m.root, &result)
	return result
}

func (m *Map[K, V]) inorder(n *node[K, V], result *[]K) {
	if n == nil {
		return
	}
	m.inorder(n.left, result)
	*result = append(*result, n.key)
	m.inorder(n.right, result)
}
