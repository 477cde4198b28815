package sequence

// Zip transposes any number of sequences into a lazy sequence of
// tuples: tuple i holds element i of every input, in input order.  The
// result ends as soon as any one input runs out; with no inputs it is
// empty.
func Zip[T any](seqs ...Seq[T]) Seq[[]T] {
	if len(seqs) == 0 {
		return Empty[[]T]()
	}

	normalized := make([]Seq[T], len(seqs))
	for i, s := range seqs {
		normalized[i] = seqOrEmpty(s)
	}
	return zipSeq(FromSlice(normalized))
}

// zipSeq is mutually recursive with Map: the next tuple projects the
// head of every input via Map, and the continuation transposes the
// tails, again projected via Map.  There is no cycle in data, only in
// the call graph.
func zipSeq[T any](seqs Seq[Seq[T]]) Seq[[]T] {
	return Lazy(func() *Cell[[]T] {
		for cur := seqs; !cur.IsEmpty(); cur = cur.Tail() {
			if cur.Head().IsEmpty() {
				return nil
			}
		}

		heads := Collect(Map(seqs, func(s Seq[T]) T { return s.Head() }))
		tails := Map(seqs, func(s Seq[T]) Seq[T] { return s.Tail() })

		return &Cell[[]T]{Value: heads, Rest: zipSeq(tails)}
	})
}

// Pair holds one element from each of two zipped sequences.
type Pair[T, U any] struct {
	First  T
	Second U
}

// Zip2 transposes two sequences of possibly different element types
// into a lazy sequence of pairs, ending at the shorter input.
func Zip2[T, U any](a Seq[T], b Seq[U]) Seq[Pair[T, U]] {
	return Lazy(func() *Cell[Pair[T, U]] {
		ca, cb := seqOrEmpty(a), seqOrEmpty(b)
		if ca.IsEmpty() || cb.IsEmpty() {
			return nil
		}
		return &Cell[Pair[T, U]]{
			Value: Pair[T, U]{First: ca.Head(), Second: cb.Head()},
			Rest:  Zip2(ca.Tail(), cb.Tail()),
		}
	})
}
