package weighted

import (
	"fmt"
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

// Unit is a key of weight 1. The integer value is a payload and irrelevant
// for positioning.
type Unit int

// Weight is always 1.
func (Unit) Weight() int { return 1 }

// Bytes is a string key weighted by its length in bytes.
type Bytes struct {
	s string
}

// NewBytes creates a byte-weighted key. s must not be empty.
func NewBytes(s string) (Bytes, error) {
	if len(s) == 0 {
		return Bytes{}, ErrEmptyKey
	}
	return Bytes{s: s}, nil
}

// Weight returns the byte length.
func (b Bytes) Weight() int { return len(b.s) }

func (b Bytes) String() string { return b.s }

// Text is a string key weighted by its number of grapheme clusters.
type Text struct {
	s      string
	weight int
}

var setupGraphemes sync.Once

// NewText creates a grapheme-weighted key. s must contain at least one
// grapheme cluster.
func NewText(s string) (Text, error) {
	if len(s) == 0 {
		return Text{}, ErrEmptyKey
	}
	setupGraphemes.Do(func() {
		tracer().Debugf("weighted: setting up grapheme classes")
		grapheme.SetupGraphemeClasses()
	})
	n := grapheme.StringFromString(s).Len()
	if n <= 0 {
		return Text{}, fmt.Errorf("%w: %q", ErrEmptyKey, s)
	}
	return Text{s: s, weight: n}, nil
}

// Weight returns the number of grapheme clusters.
func (t Text) Weight() int { return t.weight }

func (t Text) String() string { return t.s }
