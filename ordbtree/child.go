package ordbtree

// child is a tree edge: it references either a leaf or an internal node,
// never both. The kind expected at a given position follows from the tree
// depth; asking for the wrong kind is a logic error.
type child[K Weighted, V any] struct {
	leaf *leafNode[K, V]
	node *innerNode[K, V]
}

func leafChild[K Weighted, V any](l *leafNode[K, V]) child[K, V] {
	assert(l != nil, "leafChild called with nil leaf")
	return child[K, V]{leaf: l}
}

func nodeChild[K Weighted, V any](n *innerNode[K, V]) child[K, V] {
	assert(n != nil, "nodeChild called with nil node")
	return child[K, V]{node: n}
}

func (c child[K, V]) isLeaf() bool { return c.leaf != nil }

func (c child[K, V]) asLeaf() (*leafNode[K, V], bool) { return c.leaf, c.leaf != nil }
func (c child[K, V]) asNode() (*innerNode[K, V], bool) { return c.node, c.node != nil }

func (c child[K, V]) store() *elements[K, V] {
	if c.leaf != nil {
		return &c.leaf.elements
	}
	assert(c.node != nil, "empty child variant")
	return &c.node.elements
}

func (c child[K, V]) size() int        { return c.store().size }
func (c child[K, V]) numElements() int { return c.store().len() }
func (c child[K, V]) keys() []K        { return c.store().keys }
func (c child[K, V]) values() []V      { return c.store().values }

// replaceWithChild collapses an internal node without separators into its
// sole child, in place. It reports false for leaves.
func (c *child[K, V]) replaceWithChild() bool {
	if c.node == nil {
		return false
	}
	assert(c.node.len() == 0, "replaceWithChild called on node with elements")
	assert(c.node.children.len() == 1, "replaceWithChild requires exactly one child")
	*c = c.node.children.pop()
	return true
}

// --- Children --------------------------------------------------------------

// children is a homogeneous, bounded collection of tree edges: either all
// leaves or all internal nodes. Only the slice matching ofNodes is in use.
type children[K Weighted, V any] struct {
	leafs   []*leafNode[K, V]
	nodes   []*innerNode[K, V]
	ofNodes bool
}

func makeChildren[K Weighted, V any](maxChildren int, ofNodes bool) children[K, V] {
	if ofNodes {
		return children[K, V]{nodes: make([]*innerNode[K, V], 0, maxChildren), ofNodes: true}
	}
	return children[K, V]{leafs: make([]*leafNode[K, V], 0, maxChildren)}
}

func (cs *children[K, V]) len() int {
	if cs.ofNodes {
		return len(cs.nodes)
	}
	return len(cs.leafs)
}

func (cs *children[K, V]) get(i int) child[K, V] {
	if cs.ofNodes {
		return nodeChild(cs.nodes[i])
	}
	return leafChild(cs.leafs[i])
}

func (cs *children[K, V]) last() child[K, V] {
	return cs.get(cs.len() - 1)
}

func (cs *children[K, V]) checkKind(c child[K, V]) {
	if cs.ofNodes == c.isLeaf() {
		panic("children: mixing leaf and node children")
	}
}

func (cs *children[K, V]) push(c child[K, V]) (child[K, V], bool) {
	return cs.insert(cs.len(), c)
}

// insert places c at index i. If the collection is full, the last child of
// the resulting sequence is returned as overflow.
func (cs *children[K, V]) insert(i int, c child[K, V]) (child[K, V], bool) {
	cs.checkKind(c)
	if cs.ofNodes {
		var over *innerNode[K, V]
		var ok bool
		if cs.nodes, over, ok = boundedInsert(cs.nodes, i, c.node); ok {
			return nodeChild(over), true
		}
		return child[K, V]{}, false
	}
	var over *leafNode[K, V]
	var ok bool
	if cs.leafs, over, ok = boundedInsert(cs.leafs, i, c.leaf); ok {
		return leafChild(over), true
	}
	return child[K, V]{}, false
}

func (cs *children[K, V]) pop() child[K, V] {
	return cs.remove(cs.len() - 1)
}

func (cs *children[K, V]) remove(i int) child[K, V] {
	if cs.ofNodes {
		var n *innerNode[K, V]
		cs.nodes, n = boundedRemove(cs.nodes, i)
		return nodeChild(n)
	}
	var l *leafNode[K, V]
	cs.leafs, l = boundedRemove(cs.leafs, i)
	return leafChild(l)
}

// splitOff moves the children at indices [at:] into a new collection of the
// same kind and capacity.
func (cs *children[K, V]) splitOff(at int) children[K, V] {
	right := children[K, V]{ofNodes: cs.ofNodes}
	if cs.ofNodes {
		cs.nodes, right.nodes = splitOff(cs.nodes, at)
	} else {
		cs.leafs, right.leafs = splitOff(cs.leafs, at)
	}
	return right
}

// appendAll moves all children of other to the end of cs.
func (cs *children[K, V]) appendAll(other *children[K, V]) {
	assert(cs.ofNodes == other.ofNodes, "children: appending different kinds")
	if cs.ofNodes {
		cs.nodes = appendBounded(cs.nodes, other.nodes)
		clear(other.nodes)
		other.nodes = other.nodes[:0]
		return
	}
	cs.leafs = appendBounded(cs.leafs, other.leafs)
	clear(other.leafs)
	other.leafs = other.leafs[:0]
}

// sizeOf sums the sizes of all children.
func (cs *children[K, V]) sizeOf() int {
	total := 0
	if cs.ofNodes {
		for _, n := range cs.nodes {
			total += n.size
		}
		return total
	}
	for _, l := range cs.leafs {
		total += l.size
	}
	return total
}
