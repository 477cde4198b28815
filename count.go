package sequence

// Count returns the number of elements in s, or 0 for an empty or nil
// sequence.
//
// Counting is a specialization of folding: each element bumps an
// accumulator by one.  Count is exactly as eager as Fold and does not
// short-circuit; counting an infinite sequence does not return.
func Count[T any](s Seq[T]) int {
	n, _ := Fold(s, 0, func(acc int, _ T) (int, error) {
		return acc + 1, nil
	})
	return n
}
