package ordbtree

// elements is a bounded, ordered store of key/value pairs.
//
// keys and values are parallel views with identical length. Their capacity is
// fixed at allocation time to 2B-1 and never grows; code inserting into a full
// store receives the trailing element back as overflow.
//
// size caches the total weight held by the owner of the store. For a leaf
// this is the sum of its key weights. For an internal node it additionally
// includes the sizes of all children (see innerNode).
type elements[K Weighted, V any] struct {
	keys   []K
	values []V
	size   int
}

// leafNode is a tree leaf. It is nothing more than an element store.
type leafNode[K Weighted, V any] struct {
	elements[K, V]
}

// innerNode is an internal tree node. Separator i lies between children i
// and i+1, and the invariant len(children) == len(keys)+1 holds whenever
// control is outside of innerNode methods.
//
// The embedded size covers separators and children.
type innerNode[K Weighted, V any] struct {
	elements[K, V]
	children children[K, V]
}

func makeElements[K Weighted, V any](maxElements int) elements[K, V] {
	return elements[K, V]{
		keys:   make([]K, 0, maxElements),
		values: make([]V, 0, maxElements),
	}
}

func newLeaf[K Weighted, V any](maxElements int) *leafNode[K, V] {
	return &leafNode[K, V]{elements: makeElements[K, V](maxElements)}
}

// newInner allocates an empty internal node. ofNodes selects the kind of its
// children collection.
func newInner[K Weighted, V any](maxElements int, ofNodes bool) *innerNode[K, V] {
	return &innerNode[K, V]{
		elements: makeElements[K, V](maxElements),
		children: makeChildren[K, V](maxElements+1, ofNodes),
	}
}

// --- Bounded slice helpers -------------------------------------------------

// boundedInsert inserts x at index i of s without ever growing s beyond its
// capacity. If s is full, the last item of the resulting sequence is not kept
// and is returned as overflow.
func boundedInsert[T any](s []T, i int, x T) ([]T, T, bool) {
	assert(i >= 0 && i <= len(s), "boundedInsert index out of range")
	if len(s) < cap(s) {
		s = s[:len(s)+1]
		copy(s[i+1:], s[i:])
		s[i] = x
		var zero T
		return s, zero, false
	}
	if i == len(s) {
		return s, x, true
	}
	last := s[len(s)-1]
	copy(s[i+1:], s[i:len(s)-1])
	s[i] = x
	return s, last, true
}

// boundedRemove removes the item at index i, clearing the vacated slot.
func boundedRemove[T any](s []T, i int) ([]T, T) {
	assert(i >= 0 && i < len(s), "boundedRemove index out of range")
	x := s[i]
	copy(s[i:], s[i+1:])
	clear(s[len(s)-1:])
	return s[:len(s)-1], x
}

// splitOff moves s[at:] into a fresh slice with the same capacity as s.
func splitOff[T any](s []T, at int) (left, right []T) {
	assert(at >= 0 && at <= len(s), "splitOff index out of range")
	right = make([]T, len(s)-at, cap(s))
	copy(right, s[at:])
	clear(s[at:])
	return s[:at], right
}

// appendBounded appends all of tail to s; the result must fit into cap(s).
func appendBounded[T any](s, tail []T) []T {
	assert(len(s)+len(tail) <= cap(s), "appendBounded exceeds capacity")
	return append(s, tail...)
}

// --- Element store ---------------------------------------------------------

func (e *elements[K, V]) len() int     { return len(e.keys) }
func (e *elements[K, V]) maxLen() int  { return cap(e.keys) }
func (e *elements[K, V]) base() int    { return (cap(e.keys) + 1) / 2 }
func (e *elements[K, V]) isFull() bool { return len(e.keys) == cap(e.keys) }

func (e *elements[K, V]) get(i int) (K, V) {
	return e.keys[i], e.values[i]
}

// push appends an element. See insert for overflow behaviour.
func (e *elements[K, V]) push(key K, value V) (K, V, bool) {
	return e.insert(len(e.keys), key, value)
}

// insert places key/value at index i. When the store already holds 2B-1
// elements, the last element of the resulting sequence is returned as overflow
// and is not accounted for in size.
func (e *elements[K, V]) insert(i int, key K, value V) (K, V, bool) {
	var ok, ov bool
	var overflowKey K
	var overflowValue V
	e.keys, overflowKey, ok = boundedInsert(e.keys, i, key)
	e.values, overflowValue, ov = boundedInsert(e.values, i, value)
	assert(ok == ov, "element store: keys and values out of sync")
	e.size += key.Weight()
	if ok {
		e.size -= overflowKey.Weight()
	}
	return overflowKey, overflowValue, ok
}

// pop removes the last element. The store must not be empty.
func (e *elements[K, V]) pop() (K, V) {
	return e.remove(len(e.keys) - 1)
}

// remove removes the element at index i and subtracts its weight.
func (e *elements[K, V]) remove(i int) (K, V) {
	var key K
	var value V
	e.keys, key = boundedRemove(e.keys, i)
	e.values, value = boundedRemove(e.values, i)
	e.size -= key.Weight()
	return key, value
}

// exchange replaces the element at index i and returns the previous one.
// size is left untouched; callers account for weight differences.
func (e *elements[K, V]) exchange(i int, key K, value V) (K, V) {
	oldKey, oldValue := e.keys[i], e.values[i]
	e.keys[i], e.values[i] = key, value
	return oldKey, oldValue
}

func weightOf[K Weighted](keys []K) int {
	w := 0
	for _, k := range keys {
		w += k.Weight()
	}
	return w
}

// split partitions a full store plus one pending overflow element.
//
// The receiver keeps the first B elements, element B is returned as the new
// separator, and right receives the remaining B-2 elements followed by the
// overflow element. right must be empty and have the receiver's capacity.
func (e *elements[K, V]) split(overflowKey K, overflowValue V, right *elements[K, V]) (K, V) {
	assert(e.isFull(), "element split requires a full store")
	assert(right.len() == 0 && right.maxLen() == e.maxLen(), "element split requires an empty sibling")
	b := e.base()
	var movedKeys []K
	var movedValues []V
	e.keys, movedKeys = splitOff(e.keys, b+1)
	e.values, movedValues = splitOff(e.values, b+1)
	moved := weightOf(movedKeys)
	e.size -= moved
	right.keys, right.values = movedKeys, movedValues
	right.size += moved
	_, _, overflow := right.push(overflowKey, overflowValue)
	assert(!overflow, "element split: sibling overflow")
	return e.pop()
}

// merge appends a separator and all elements of right. right is drained.
// right.size is transferred completely, which for internal nodes includes the
// children the caller moves alongside.
func (e *elements[K, V]) merge(sepKey K, sepValue V, right *elements[K, V]) {
	assert(e.len()+right.len() < e.maxLen(), "element merge exceeds capacity")
	_, _, overflow := e.push(sepKey, sepValue)
	assert(!overflow, "element merge: separator overflow")
	e.keys = appendBounded(e.keys, right.keys)
	e.values = appendBounded(e.values, right.values)
	e.size += right.size
	clear(right.keys)
	clear(right.values)
	right.keys, right.values, right.size = right.keys[:0], right.values[:0], 0
}

// locateStart finds the element starting exactly at a leaf-local offset.
func (e *elements[K, V]) locateStart(offset int) (int, bool) {
	partial := 0
	for i, k := range e.keys {
		if offset == partial {
			return i, true
		}
		partial += k.Weight()
		if offset < partial {
			return 0, false
		}
	}
	return 0, false
}

// locateInsert finds the insertion index for a leaf-local offset. The offset
// must hit an element start or the end of the store.
func (e *elements[K, V]) locateInsert(offset int) (int, bool) {
	partial := 0
	for i, k := range e.keys {
		if offset == partial {
			return i, true
		}
		if offset < partial {
			return 0, false
		}
		partial += k.Weight()
	}
	if offset == partial {
		return len(e.keys), true
	}
	return 0, false
}
