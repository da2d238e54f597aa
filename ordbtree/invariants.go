package ordbtree

import "fmt"

// Check validates structural tree invariants: cached sizes, occupancy bounds
// of non-root nodes, element/child correspondence, uniform leaf depth and the
// element count. It is meant for tests and debugging, as it visits every node.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	if t.depth <= 0 {
		return fmt.Errorf("%w: depth %d must be positive", ErrCorrupted, t.depth)
	}
	count, depth, err := t.checkChild(t.root, true)
	if err != nil {
		return err
	}
	if depth != t.depth {
		return fmt.Errorf("%w: depth mismatch (%d != %d)", ErrCorrupted, depth, t.depth)
	}
	if count != t.len {
		return fmt.Errorf("%w: element count mismatch (%d != %d)", ErrCorrupted, count, t.len)
	}
	return nil
}

func (t *Tree[K, V]) checkChild(c child[K, V], isRoot bool) (count int, depth int, err error) {
	if c.leaf == nil && c.node == nil {
		return 0, 0, fmt.Errorf("%w: empty child variant", ErrCorrupted)
	}
	if c.leaf != nil && c.node != nil {
		return 0, 0, fmt.Errorf("%w: child references both leaf and node", ErrCorrupted)
	}
	if err := t.checkStore(c.store(), isRoot); err != nil {
		return 0, 0, err
	}
	node, isNode := c.asNode()
	if !isNode {
		leaf := c.leaf
		if w := weightOf(leaf.keys); w != leaf.size {
			return 0, 0, fmt.Errorf("%w: leaf size %d, weights sum to %d", ErrCorrupted, leaf.size, w)
		}
		return leaf.len(), 1, nil
	}
	if isRoot && node.len() == 0 {
		return 0, 0, fmt.Errorf("%w: root node without elements", ErrCorrupted)
	}
	if node.children.len() != node.len()+1 {
		return 0, 0, fmt.Errorf("%w: node has %d elements but %d children",
			ErrCorrupted, node.len(), node.children.len())
	}
	if node.children.ofNodes && len(node.children.leafs) > 0 ||
		!node.children.ofNodes && len(node.children.nodes) > 0 {
		return 0, 0, fmt.Errorf("%w: mixed children collection", ErrCorrupted)
	}
	if maxChildren := t.cfg.maxElements() + 1; cap(node.children.leafs) > maxChildren || cap(node.children.nodes) > maxChildren {
		return 0, 0, fmt.Errorf("%w: children capacity exceeds %d", ErrCorrupted, maxChildren)
	}
	count = node.len()
	size := weightOf(node.keys)
	for i := range node.children.len() {
		cc := node.children.get(i)
		cCount, cDepth, cErr := t.checkChild(cc, false)
		if cErr != nil {
			return 0, 0, cErr
		}
		count += cCount
		size += cc.size()
		if i == 0 {
			depth = cDepth
		} else if cDepth != depth {
			return 0, 0, fmt.Errorf("%w: non-uniform leaf depth", ErrCorrupted)
		}
	}
	if size != node.size {
		return 0, 0, fmt.Errorf("%w: node size %d, content sums to %d", ErrCorrupted, node.size, size)
	}
	return count, depth + 1, nil
}

func (t *Tree[K, V]) checkStore(e *elements[K, V], isRoot bool) error {
	if len(e.keys) != len(e.values) {
		return fmt.Errorf("%w: %d keys but %d values", ErrCorrupted, len(e.keys), len(e.values))
	}
	if cap(e.keys) != t.cfg.maxElements() || cap(e.values) != t.cfg.maxElements() {
		return fmt.Errorf("%w: element capacity %d, expected %d",
			ErrCorrupted, cap(e.keys), t.cfg.maxElements())
	}
	if !isRoot && e.len() < t.cfg.minElements() {
		return fmt.Errorf("%w: %d elements below minimum %d", ErrCorrupted, e.len(), t.cfg.minElements())
	}
	for i, k := range e.keys {
		if k.Weight() <= 0 {
			return fmt.Errorf("%w: element %d has non-positive weight", ErrCorrupted, i)
		}
	}
	return nil
}
