package sequence

// Generate returns a lazy sequence of the values produced by next,
// ending when next reports false.  next is called at most once per
// position, when that position is first forced.
func Generate[T any](next func() (T, bool)) Seq[T] {
	return Lazy(func() *Cell[T] {
		v, ok := next()
		if !ok {
			return nil
		}
		return &Cell[T]{Value: v, Rest: Generate(next)}
	})
}

// Iterate returns the infinite lazy sequence seed, step(seed),
// step(step(seed)), ...
func Iterate[T any](seed T, step func(T) T) Seq[T] {
	return Lazy(func() *Cell[T] {
		return &Cell[T]{Value: seed, Rest: Iterate(step(seed), step)}
	})
}

// Range returns the lazy sequence of integers from from (inclusive) to
// to (exclusive); empty when from >= to.
func Range(from, to int) Seq[int] {
	return Lazy(func() *Cell[int] {
		if from >= to {
			return nil
		}
		return &Cell[int]{Value: from, Rest: Range(from+1, to)}
	})
}
