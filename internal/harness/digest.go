package harness

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
	"github.com/npillmayer/dstructs/ordbtree"
)

// digest fingerprints an in-order sequence of keys and values. Keys
// contribute their weight and, if they are fmt.Stringers, their text.
func digest[K ordbtree.Weighted](seq iter.Seq2[K, int]) uint64 {
	d := xxhash.New()
	var buf [16]byte
	for k, v := range seq {
		binary.LittleEndian.PutUint64(buf[:8], uint64(k.Weight()))
		binary.LittleEndian.PutUint64(buf[8:], uint64(v))
		d.Write(buf[:])
		if s, ok := any(k).(fmt.Stringer); ok {
			d.WriteString(s.String())
		}
	}
	return d.Sum64()
}

// sliceSeq presents a reference model as a sequence.
func sliceSeq[K any](keys []K, values []int) iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		for i, k := range keys {
			if !yield(k, values[i]) {
				return
			}
		}
	}
}
