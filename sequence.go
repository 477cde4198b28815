/*
Package sequence reimplements a small family of Clojure's sequence
functions -- reduce, count, filter, map and pmap -- in Go, as a learning
exercise in evaluation order, memoization and concurrency.

Everything operates on Seq, an ordered collection observed one element
at a time through IsEmpty, Head and Tail.  The lazy operations (Filter,
Map, Zip) build their results out of memoizing Lazy nodes, so elements
are computed on demand, at most once each, no matter how many times the
result is traversed.  Pmap dispatches one concurrent task per element
before any result is awaited, then hands back a lazy view over the
pending results.

Sequences can be built from slices, channels, scanners or generator
functions; see FromSlice, FromChannel, FromScanner, Generate, Iterate
and Range.
*/
package sequence

// Seq is a generic interface for an ordered, possibly-empty sequence of
// elements, observed one element at a time.
type Seq[T any] interface {
	// IsEmpty reports whether the sequence has no elements.  Emptiness
	// is structural: a sequence of zero-value elements is not empty.
	IsEmpty() bool

	// Head returns the first element of the sequence, or the zero
	// value of T if the sequence is empty.
	Head() T

	// Tail returns the sequence of elements after the first, or an
	// empty sequence if there are none.
	Tail() Seq[T]
}

// Empty returns the empty sequence of type T.
func Empty[T any]() Seq[T] {
	return emptySeq[T]{}
}

type emptySeq[T any] struct{}

func (emptySeq[T]) IsEmpty() bool {
	return true
}

func (emptySeq[T]) Head() T {
	var zero T
	return zero
}

func (e emptySeq[T]) Tail() Seq[T] {
	return e
}

// seqOrEmpty normalizes an absent (nil) sequence to the empty sequence.
// A missing collection and an empty collection are deliberately
// indistinguishable to every operation in this package.
func seqOrEmpty[T any](s Seq[T]) Seq[T] {
	if s == nil {
		return Empty[T]()
	}
	return s
}
