package ordbtree

// newRoot creates an internal node over two siblings and their separator.
// It is used when the old root splits.
func newRoot[K Weighted, V any](left child[K, V], sepKey K, sepValue V, right child[K, V]) *innerNode[K, V] {
	maxElements := left.store().maxLen()
	root := newInner[K, V](maxElements, !left.isLeaf())
	_, overflow := root.children.push(left)
	assert(!overflow, "newRoot: child overflow")
	root.size = left.size()
	_, _, _, overflow = root.push(sepKey, sepValue, right)
	assert(!overflow, "newRoot: element overflow")
	return root
}

func (n *innerNode[K, V]) numElements() int { return n.len() }
func (n *innerNode[K, V]) numChildren() int { return n.children.len() }

// push appends a separator together with its right-hand child.
func (n *innerNode[K, V]) push(key K, value V, c child[K, V]) (K, V, child[K, V], bool) {
	return n.insert(n.len(), key, value, c)
}

// insert places separator i and child i+1 atomically. Either both element
// store and children overflow, returning the trailing triple, or neither does.
func (n *innerNode[K, V]) insert(i int, key K, value V, c child[K, V]) (K, V, child[K, V], bool) {
	assert(n.children.len() == n.len()+1, "node insert: element/child count mismatch")
	overflowKey, overflowValue, elemOverflow := n.elements.insert(i, key, value)
	n.size += c.size()
	overflowChild, childOverflow := n.children.insert(i+1, c)
	assert(elemOverflow == childOverflow, "node insert: asymmetric overflow of elements and children")
	if childOverflow {
		n.size -= overflowChild.size()
	}
	return overflowKey, overflowValue, overflowChild, childOverflow
}

// pop removes the last separator and the last child. The node must hold at
// least one element.
func (n *innerNode[K, V]) pop() (K, V, child[K, V]) {
	return n.remove(n.len() - 1)
}

// remove removes separator i together with child i+1.
func (n *innerNode[K, V]) remove(i int) (K, V, child[K, V]) {
	key, value := n.elements.remove(i)
	c := n.children.remove(i + 1)
	n.size -= c.size()
	return key, value, c
}

// pushFront inserts a separator and child in front of all others.
func (n *innerNode[K, V]) pushFront(key K, value V, c child[K, V]) {
	_, _, overflow := n.elements.insert(0, key, value)
	assert(!overflow, "node pushFront: element overflow")
	_, overflow = n.children.insert(0, c)
	assert(!overflow, "node pushFront: child overflow")
	n.size += c.size()
}

// popFront removes the first separator and the first child.
func (n *innerNode[K, V]) popFront() (K, V, child[K, V]) {
	key, value := n.elements.remove(0)
	c := n.children.remove(0)
	n.size -= c.size()
	return key, value, c
}

// split partitions a full node plus a pending overflow triple. The receiver
// keeps B separators and B+1 children; the new right sibling receives B-1
// separators and B children. Separator B is promoted.
func (n *innerNode[K, V]) split(overflowKey K, overflowValue V, overflowChild child[K, V]) (K, V, *innerNode[K, V]) {
	assert(n.isFull() && n.children.len() == n.len()+1, "node split requires a full node")
	right := newInner[K, V](n.maxLen(), n.children.ofNodes)
	b := n.base()
	sepKey, sepValue := n.elements.split(overflowKey, overflowValue, &right.elements)
	right.children = n.children.splitOff(b + 1)
	moved := right.children.sizeOf()
	n.size -= moved
	right.size += moved
	_, overflow := right.children.push(overflowChild)
	assert(!overflow, "node split: sibling child overflow")
	right.size += overflowChild.size()
	assert(n.children.len() == n.len()+1 && right.children.len() == right.len()+1,
		"node split: element/child count mismatch")
	return sepKey, sepValue, right
}

// merge appends a separator and the complete content of right. The combined
// element count must stay below 2B-1.
func (n *innerNode[K, V]) merge(sepKey K, sepValue V, right *innerNode[K, V]) {
	n.children.appendAll(&right.children)
	n.elements.merge(sepKey, sepValue, &right.elements)
	assert(n.children.len() == n.len()+1, "node merge: element/child count mismatch")
}

// resolveUnderflow repairs child i after it dropped below B-1 elements.
//
// In order of preference it rotates an element in from the right sibling,
// from the left sibling, or merges the child with a neighbour. Merging takes
// a separator from n and may leave n itself underfull. The total size of n
// is unchanged.
func (n *innerNode[K, V]) resolveUnderflow(i int) {
	minElements := n.base() - 1
	assert(n.children.get(i).numElements() < minElements, "resolveUnderflow called on healthy child")
	if n.children.ofNodes {
		n.resolveNodeUnderflow(i, minElements)
	} else {
		n.resolveLeafUnderflow(i, minElements)
	}
}

func (n *innerNode[K, V]) resolveLeafUnderflow(i, minElements int) {
	leafs := n.children.leafs
	child := leafs[i]
	switch {
	case i+1 < len(leafs) && leafs[i+1].len() > minElements:
		k, v := leafs[i+1].remove(0)
		k, v = n.exchange(i, k, v)
		_, _, overflow := child.push(k, v)
		assert(!overflow, "rotate left: leaf overflow")
	case i > 0 && leafs[i-1].len() > minElements:
		k, v := leafs[i-1].pop()
		k, v = n.exchange(i-1, k, v)
		_, _, overflow := child.insert(0, k, v)
		assert(!overflow, "rotate right: leaf overflow")
	default:
		left := max(i-1, 0)
		k, v, right := n.remove(left)
		n.size += k.Weight() + right.size()
		n.children.leafs[left].merge(k, v, &right.leaf.elements)
	}
}

func (n *innerNode[K, V]) resolveNodeUnderflow(i, minElements int) {
	nodes := n.children.nodes
	child := nodes[i]
	switch {
	case i+1 < len(nodes) && nodes[i+1].len() > minElements:
		k, v, c := nodes[i+1].popFront()
		k, v = n.exchange(i, k, v)
		_, _, _, overflow := child.push(k, v, c)
		assert(!overflow, "rotate left: node overflow")
	case i > 0 && nodes[i-1].len() > minElements:
		k, v, c := nodes[i-1].pop()
		k, v = n.exchange(i-1, k, v)
		child.pushFront(k, v, c)
	default:
		left := max(i-1, 0)
		k, v, right := n.remove(left)
		n.size += k.Weight() + right.size()
		n.children.nodes[left].merge(k, v, right.node)
	}
}
