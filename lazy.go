package sequence

import "sync"

// Cell is one realized element of a lazy sequence: a head value and the
// sequence of elements that follow it.  A nil Rest means nothing
// follows.
type Cell[T any] struct {
	Value T
	Rest  Seq[T]
}

// ComputeFunc produces the next step of a lazy sequence.  It returns
// nil when the sequence is exhausted.  The Rest of a returned Cell may
// itself be another Lazy node, permitting unbounded deferral.
type ComputeFunc[T any] func() *Cell[T]

// Lazy returns a sequence whose first element is produced on demand by
// compute.  The computation runs at most once per node, the first time
// emptiness, Head or Tail is observed; the result is cached for every
// later observation, including re-traversal from a retained reference.
// A panic raised by compute is cached the same way: each observation of
// the node re-raises the same value without running compute again.
//
// compute must not mutate external state that anything else relies on,
// or the cached replay becomes observably inconsistent with the first
// traversal.
func Lazy[T any](compute ComputeFunc[T]) Seq[T] {
	return &lazySeq[T]{compute: compute}
}

type lazySeq[T any] struct {
	mu       sync.Mutex
	done     bool
	compute  ComputeFunc[T]
	cell     *Cell[T]
	panicked any
}

// force runs the deferred computation on first use and caches the
// outcome, value or panic.  The mutex makes forcing from multiple
// goroutines safe: every caller observes the one cached outcome.
func (l *lazySeq[T]) force() *Cell[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.done {
		func() {
			defer func() {
				if r := recover(); r != nil {
					l.panicked = r
				}
			}()
			l.cell = l.compute()
		}()
		l.compute = nil // release the captured computation
		l.done = true
	}

	if l.panicked != nil {
		panic(l.panicked)
	}
	return l.cell
}

func (l *lazySeq[T]) IsEmpty() bool {
	return l.force() == nil
}

func (l *lazySeq[T]) Head() T {
	if c := l.force(); c != nil {
		return c.Value
	}
	var zero T
	return zero
}

func (l *lazySeq[T]) Tail() Seq[T] {
	c := l.force()
	if c == nil {
		return Empty[T]()
	}
	return seqOrEmpty(c.Rest)
}
