package ordbtree

// Tree is a positional B-tree over weighted keys.
//
// K is the key type, which contributes its weight to element offsets. V is an
// arbitrary value type carried alongside each key.
//
// A zero Tree is not usable; create trees with New or NewWithConfig.
type Tree[K Weighted, V any] struct {
	cfg   Config
	root  child[K, V]
	len   int
	depth int // root-to-leaf edge count; a single leaf root has depth 1
}

// pathFrame records one step of a mutating descent: the internal node passed
// and the index of the child the walk continued with.
type pathFrame[K Weighted, V any] struct {
	node *innerNode[K, V]
	idx  int
}

// New creates an empty tree with the default branching parameter.
func New[K Weighted, V any]() *Tree[K, V] {
	t, err := NewWithConfig[K, V](Config{})
	assert(err == nil, "default configuration must validate")
	return t
}

// NewWithConfig creates an empty tree with a validated configuration.
func NewWithConfig[K Weighted, V any](cfg Config) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{
		cfg:   cfg,
		root:  leafChild(newLeaf[K, V](cfg.maxElements())),
		depth: 1,
	}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config {
	return t.cfg
}

// Len returns the number of elements in the tree.
func (t *Tree[K, V]) Len() int {
	return t.len
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.len == 0
}

// Depth returns the number of levels, where 1 means a single leaf root.
func (t *Tree[K, V]) Depth() int {
	return t.depth
}

// Size returns the total weight of all elements, i.e. the offset just past
// the last element.
func (t *Tree[K, V]) Size() int {
	return t.root.size()
}

// Get returns the element whose offset range contains offset, together with
// the offset the element starts at.
func (t *Tree[K, V]) Get(offset int) (start int, key K, value V, ok bool) {
	if offset < 0 || offset >= t.Size() {
		return 0, key, value, false
	}
	cur := t.root
	partial := 0
descent:
	for {
		node, isNode := cur.asNode()
		if !isNode {
			break
		}
		for i, k := range node.keys {
			c := node.children.get(i)
			if offset < partial+c.size() {
				cur = c
				continue descent
			}
			partial += c.size()
			w := k.Weight()
			if offset < partial+w {
				return partial, k, node.values[i], true
			}
			partial += w
		}
		cur = node.children.last()
	}
	leaf, _ := cur.asLeaf()
	for i, k := range leaf.keys {
		w := k.Weight()
		if offset < partial+w {
			return partial, k, leaf.values[i], true
		}
		partial += w
	}
	return 0, key, value, false
}

// Insert inserts key/value so that the new element starts at offset. offset
// must coincide with an element boundary: the start of an existing element or
// the end of the sequence. Otherwise Insert leaves the tree untouched and
// returns an *InsertError holding the rejected pair.
//
// Keys with non-positive weight violate the Weighted contract and cause a panic.
func (t *Tree[K, V]) Insert(offset int, key K, value V) error {
	w := key.Weight()
	assert(w > 0, "ordbtree: key weight must be positive")
	if offset < 0 || offset > t.Size() {
		return &InsertError[K, V]{Offset: offset, Key: key, Value: value}
	}
	path := make([]pathFrame[K, V], 0, t.depth)
	cur := t.root
	partial := 0
	for {
		node, isNode := cur.asNode()
		if !isNode {
			break
		}
		idx := node.numElements()
		for i, k := range node.keys {
			cs := node.children.get(i).size()
			if offset <= partial+cs {
				idx = i
				break
			}
			partial += cs + k.Weight()
			if offset < partial {
				return &InsertError[K, V]{Offset: offset, Key: key, Value: value}
			}
		}
		path = append(path, pathFrame[K, V]{node: node, idx: idx})
		cur = node.children.get(idx)
	}
	leaf, _ := cur.asLeaf()
	i, ok := leaf.locateInsert(offset - partial)
	if !ok {
		return &InsertError[K, V]{Offset: offset, Key: key, Value: value}
	}
	t.len++
	overflowKey, overflowValue, overflow := leaf.insert(i, key, value)
	if !overflow {
		grow(path, w)
		return nil
	}
	right := newLeaf[K, V](t.cfg.maxElements())
	sepKey, sepValue := leaf.split(overflowKey, overflowValue, &right.elements)
	sibling := leafChild(right)
	for len(path) > 0 {
		fr := path[len(path)-1]
		path = path[:len(path)-1]
		// account for the insert, minus what n.insert is about to add itself
		fr.node.size += w - sepKey.Weight() - sibling.size()
		var overflowChild child[K, V]
		overflowKey, overflowValue, overflowChild, overflow = fr.node.insert(fr.idx, sepKey, sepValue, sibling)
		if !overflow {
			grow(path, w)
			return nil
		}
		var rightNode *innerNode[K, V]
		sepKey, sepValue, rightNode = fr.node.split(overflowKey, overflowValue, overflowChild)
		sibling = nodeChild(rightNode)
	}
	t.root = nodeChild(newRoot(t.root, sepKey, sepValue, sibling))
	t.depth++
	tracer().Debugf("ordbtree: root split, depth is now %d", t.depth)
	return nil
}

// grow adds an inserted weight to all nodes remaining on a path.
func grow[K Weighted, V any](path []pathFrame[K, V], w int) {
	for _, fr := range path {
		fr.node.size += w
	}
}

// Remove removes the element starting exactly at offset. It reports false,
// leaving the tree untouched, if no element starts there.
func (t *Tree[K, V]) Remove(offset int) (key K, value V, ok bool) {
	if offset < 0 || offset >= t.Size() {
		return key, value, false
	}
	if leaf, isLeaf := t.root.asLeaf(); isLeaf {
		i, found := leaf.locateStart(offset)
		if !found {
			return key, value, false
		}
		key, value = leaf.remove(i)
		t.len--
		return key, value, true
	}
	path := make([]pathFrame[K, V], 0, t.depth)
	cur := t.root
	partial := 0
	for {
		node, isNode := cur.asNode()
		if !isNode {
			break
		}
		idx := node.numElements()
		for i, k := range node.keys {
			cs := node.children.get(i).size()
			if offset < partial+cs {
				idx = i
				break
			}
			if offset == partial+cs {
				path = append(path, pathFrame[K, V]{node: node, idx: i})
				return t.removeSeparator(path)
			}
			partial += cs + k.Weight()
			if offset < partial {
				return key, value, false
			}
		}
		path = append(path, pathFrame[K, V]{node: node, idx: idx})
		cur = node.children.get(idx)
	}
	leaf, _ := cur.asLeaf()
	i, found := leaf.locateStart(offset - partial)
	if !found {
		return key, value, false
	}
	key, value = leaf.remove(i)
	w := key.Weight()
	t.rebalance(path, len(path), w, w)
	t.len--
	return key, value, true
}

// removeSeparator removes the separator addressed by the last frame of path.
// The separator is replaced by its in-order predecessor, which is physically
// removed from the rightmost leaf of the left subtree.
func (t *Tree[K, V]) removeSeparator(path []pathFrame[K, V]) (K, V, bool) {
	level := len(path) - 1
	x := path[level]
	cur := x.node.children.get(x.idx)
	for {
		node, isNode := cur.asNode()
		if !isNode {
			break
		}
		last := node.numElements()
		path = append(path, pathFrame[K, V]{node: node, idx: last})
		cur = node.children.get(last)
	}
	leaf, _ := cur.asLeaf()
	predKey, predValue := leaf.pop()
	key, value := x.node.exchange(x.idx, predKey, predValue)
	x.node.size += predKey.Weight() - key.Weight()
	t.rebalance(path, level, predKey.Weight(), key.Weight())
	t.len--
	return key, value, true
}

// rebalance walks path bottom-up after a leaf lost an element. Frames at
// index >= level lose leafWeight; frames above lose removedWeight (they differ
// when a separator got replaced by its predecessor). Underfull children are
// repaired until a level without underflow is reached; above it only sizes
// change. Finally an empty root node is collapsed into its single child.
func (t *Tree[K, V]) rebalance(path []pathFrame[K, V], level, leafWeight, removedWeight int) {
	delta := func(j int) int {
		if j >= level {
			return leafWeight
		}
		return removedWeight
	}
	minElements := t.cfg.minElements()
	j := len(path) - 1
	for ; j >= 0; j-- {
		fr := path[j]
		fr.node.size -= delta(j)
		if fr.node.children.get(fr.idx).numElements() >= minElements {
			break
		}
		fr.node.resolveUnderflow(fr.idx)
	}
	for j--; j >= 0; j-- {
		path[j].node.size -= delta(j)
	}
	if root, isNode := t.root.asNode(); isNode && root.numElements() == 0 {
		assert(t.root.replaceWithChild(), "root collapse failed")
		t.depth--
		tracer().Debugf("ordbtree: root collapsed, depth is now %d", t.depth)
	}
}
