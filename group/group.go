/*
Package group defines the algebraic capabilities needed by prefix-sum
structures: commutative monoids and abelian groups.

A Monoid combines values with an associative, commutative Add and has a
neutral element Zero. A Group additionally inverts values with Neg, which
enables subtraction of partial sums.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package group

// Monoid is a commutative monoid over T.
type Monoid[T any] interface {
	Zero() T
	Add(a, b T) T
}

// Group is an abelian group over T.
type Group[T any] interface {
	Monoid[T]
	Neg(a T) T
}

// Sub returns a - b in group g.
func Sub[T any](g Group[T], a, b T) T {
	return g.Add(a, g.Neg(b))
}

// Signed is the set of numeric types with additive inverses.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Additive is the additive group of a signed numeric type.
type Additive[T Signed] struct{}

func (Additive[T]) Zero() T      { return 0 }
func (Additive[T]) Add(a, b T) T { return a + b }
func (Additive[T]) Neg(a T) T    { return -a }

// Max is the commutative monoid of maxima over a numeric type, with the
// given lower bound as neutral element.
type Max[T Signed] struct {
	Min T
}

func (m Max[T]) Zero() T { return m.Min }

func (Max[T]) Add(a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Func adapts plain functions to a Monoid.
type Func[T any] struct {
	ZeroFn func() T
	AddFn  func(a, b T) T
}

func (f Func[T]) Zero() T      { return f.ZeroFn() }
func (f Func[T]) Add(a, b T) T { return f.AddFn(a, b) }
