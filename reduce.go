package sequence

import "fmt"

// ReduceFunc combines elements during a Reduce.  It is invoked with two
// arguments -- the running value and the next element -- on every step
// of the fold.  When the input sequence is empty, Reduce invokes it
// once with no arguments to produce the result; functions with no
// meaningful zero-argument result should return an *ArityError (see
// Binary, which does this for you).
type ReduceFunc[T any] func(vals ...T) (T, error)

// FoldFunc combines an accumulated value with the next element during a
// Fold.  The accumulator may be a different type than the elements.
type FoldFunc[A, T any] func(acc A, v T) (A, error)

// ArityError reports that a ReduceFunc was invoked with a number of
// arguments it does not accept; in practice, that Reduce of an empty
// sequence called a function with no zero-argument form.
type ArityError struct {
	Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("reduce function does not accept %d argument(s)", e.Got)
}

// Binary adapts a plain binary combining function to a ReduceFunc.  The
// adapted function rejects anything but exactly two arguments, so
// reducing an empty sequence with it returns an *ArityError.
func Binary[T any](f func(a, b T) T) ReduceFunc[T] {
	return func(vals ...T) (T, error) {
		if len(vals) != 2 {
			var zero T
			return zero, &ArityError{Got: len(vals)}
		}
		return f(vals[0], vals[1]), nil
	}
}

// WithIdentity adapts a binary combining function that has an identity
// element to a ReduceFunc.  The zero-argument invocation returns the
// identity, so reducing an empty sequence yields it.
func WithIdentity[T any](f func(a, b T) T, identity T) ReduceFunc[T] {
	return func(vals ...T) (T, error) {
		switch len(vals) {
		case 0:
			return identity, nil
		case 2:
			return f(vals[0], vals[1]), nil
		default:
			var zero T
			return zero, &ArityError{Got: len(vals)}
		}
	}
}

// Reduce folds s from the left using f, seeding the running value from
// the sequence itself:
//
//   - an empty (or nil) sequence returns the result of calling f with
//     no arguments, which for functions adapted with Binary is an
//     *ArityError -- a documented limitation, not handled internally;
//   - a single-element sequence returns that element without ever
//     invoking f;
//   - otherwise the first element seeds the running value and the rest
//     of the sequence folds as in Fold.
//
// The fold is iterative, eager and strictly left to right; it uses
// constant auxiliary space however long the input is.
func Reduce[T any](s Seq[T], f ReduceFunc[T]) (T, error) {
	s = seqOrEmpty(s)

	if s.IsEmpty() {
		return f()
	}

	running := s.Head()
	for s = s.Tail(); !s.IsEmpty(); s = s.Tail() {
		var err error
		running, err = f(running, s.Head())
		if err != nil {
			var zero T
			return zero, err
		}
	}

	return running, nil
}

// Fold folds s from the left using f, starting the accumulator at init.
// An empty (or nil) sequence returns init without invoking f.
//
// Fold is the seeded version of Reduce.  It must be used instead of
// Reduce when the accumulator is a different type than the elements,
// due to limitations of Golang's generic syntax.
func Fold[A, T any](s Seq[T], init A, f FoldFunc[A, T]) (A, error) {
	acc := init
	for s = seqOrEmpty(s); !s.IsEmpty(); s = s.Tail() {
		var err error
		acc, err = f(acc, s.Head())
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}
