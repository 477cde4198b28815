package sequence

// FromChannel returns a lazy sequence of the values read from ch,
// ending when ch is closed.
//
// Each value is pulled from the channel the first time its position is
// forced and cached thereafter, so the sequence is restartable even
// though the channel itself is not.  Forcing a position blocks until a
// value is available or the channel is closed.
func FromChannel[T any](ch <-chan T) Seq[T] {
	return Lazy(func() *Cell[T] {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return &Cell[T]{Value: v, Rest: FromChannel(ch)}
	})
}
