package sequence

// MapFunc is a generic function that takes a single element and returns
// a single transformed element.
//
// Example:
//
//	func domainName(email string) string {
//	    return strings.SplitN(email, "@", 2)[1]
//	}
type MapFunc[T, M any] func(T) M

// Map returns the lazy sequence of f applied to each element of s.  The
// result has the same length as s, and the same per-element memoization
// guarantee as Filter: f runs at most once per position, the first time
// that position is forced.
func Map[T, M any](s Seq[T], f MapFunc[T, M]) Seq[M] {
	return Lazy(func() *Cell[M] {
		cur := seqOrEmpty(s)
		if cur.IsEmpty() {
			return nil
		}
		return &Cell[M]{Value: f(cur.Head()), Rest: Map(cur.Tail(), f)}
	})
}

// Map2 returns the lazy sequence of f applied to the elements of a and
// b in lockstep, stopping at the end of the shorter input.
//
// The inputs are transposed with Zip2 and f is applied to each pair.
// Map2 must be used instead of MapN when the two collections have
// different element types, due to limitations of Golang's generic
// syntax.
func Map2[T, U, M any](a Seq[T], b Seq[U], f func(T, U) M) Seq[M] {
	return Map(Zip2(a, b), func(p Pair[T, U]) M {
		return f(p.First, p.Second)
	})
}

// MapN returns the lazy sequence of f applied positionally across any
// number of sequences: element i of the result is f(s1[i], ..., sN[i]).
// The result stops at the shortest input; with no inputs it is empty.
//
// The inputs are transposed with Zip and f is spread across each tuple.
// Applying f positionally -- never by folding pairs of already-mapped
// results together -- is what keeps the argument order correct when f
// is not commutative.
func MapN[T, M any](f func(...T) M, seqs ...Seq[T]) Seq[M] {
	return Map(Zip(seqs...), func(vals []T) M {
		return f(vals...)
	})
}
