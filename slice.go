package sequence

// FromSlice returns a sequence backed by the provided slice.  A nil
// slice yields the empty sequence.
//
// The sequence shares the slice's backing array; callers should not
// mutate the slice while traversing.
func FromSlice[T any](s []T) Seq[T] {
	return &sliceSeq[T]{s: s}
}

type sliceSeq[T any] struct {
	s   []T
	pos int
}

func (r *sliceSeq[T]) IsEmpty() bool {
	return r.pos >= len(r.s)
}

func (r *sliceSeq[T]) Head() T {
	if r.IsEmpty() {
		var zero T
		return zero
	}
	return r.s[r.pos]
}

func (r *sliceSeq[T]) Tail() Seq[T] {
	if r.pos+1 >= len(r.s) {
		return Empty[T]()
	}
	return &sliceSeq[T]{s: r.s, pos: r.pos + 1}
}

// Collect realizes every element of s into a new slice.  It does not
// return if s is infinite; use Take for those.
func Collect[T any](s Seq[T]) []T {
	out := []T{}
	for s = seqOrEmpty(s); !s.IsEmpty(); s = s.Tail() {
		out = append(out, s.Head())
	}
	return out
}

// Take realizes at most n leading elements of s into a new slice,
// fewer if s runs out first.
func Take[T any](s Seq[T], n int) []T {
	out := []T{}
	for s = seqOrEmpty(s); n > 0 && !s.IsEmpty(); s = s.Tail() {
		out = append(out, s.Head())
		n--
	}
	return out
}
