package sequence

// FilterFunc is a generic function type that takes a single element and
// returns true if it is to be included or false if the element is to be
// excluded from the result.
//
// Example:
//
//	func findEvenInts(i int) bool {
//	    return i%2 == 0
//	}
type FilterFunc[T any] func(T) bool

// Filter returns the lazy sequence of the elements of s for which f
// returns true, in their original order.
//
// Nothing is evaluated until the result is observed, so an infinite
// input is fine as long as only a finite prefix is ever forced.  f is
// invoked strictly left to right, only as far into s as the consumer
// forces, and at most once per source element no matter how many times
// the result is traversed.
func Filter[T any](s Seq[T], f FilterFunc[T]) Seq[T] {
	return Lazy(func() *Cell[T] {
		// A run of non-matching elements is skipped here, inside one
		// node's computation: an arbitrarily long skip forces no extra
		// lookahead past the next match and builds no recursion depth.
		for cur := seqOrEmpty(s); !cur.IsEmpty(); cur = cur.Tail() {
			if v := cur.Head(); f(v) {
				return &Cell[T]{Value: v, Rest: Filter(cur.Tail(), f)}
			}
		}
		return nil
	})
}
