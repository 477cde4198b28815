package sequence

import (
	"github.com/joncoder/implementing-clojure-functions/future"
)

type pmapOptions struct {
	maxParallelism uint
	tracer         TraceFunc
	tracing        bool
}

// PmapOption customizes how a single Pmap call runs its tasks.
type PmapOption func(o *pmapOptions)

// Parallelism bounds the number of transform invocations that execute
// concurrently.  Every task is still submitted before any result is
// awaited; the bound gates execution, never submission.
//
// If not specified, one worker runs per element with no bound.
func Parallelism(max uint) PmapOption {
	return func(o *pmapOptions) {
		o.maxParallelism = max
	}
}

// WithTraceFunc sets the trace function for the call.  Use WithTracing
// to enable/disable tracing.
func WithTraceFunc(f TraceFunc) PmapOption {
	return func(o *pmapOptions) {
		o.tracer = f
	}
}

// WithTracing enables tracing for the call.  If a custom trace function
// has not been set using WithTraceFunc, trace messages are printed to
// stderr.
func WithTracing(enable bool) PmapOption {
	return func(o *pmapOptions) {
		o.tracing = enable
	}
}

func (o *pmapOptions) newTracer(description string, v ...any) tracer {
	if !o.tracing {
		return nullTracer{}
	}
	return newTracer(traceCounter.Add(1), description, o.tracer, v...)
}

// Pmap returns a sequence with the same elements, in the same order, as
// Map(s, f); the difference is that f runs concurrently.
//
// Pmap works in two strictly ordered phases.  The dispatch phase is
// eager: a Fold walks the whole input and submits one task per element,
// in input order, with every task submitted before any result is
// awaited.  The collection phase is lazy: the returned sequence is a
// Map of await over the dispatched tasks, so forcing position i blocks
// until task i alone has finished -- not until all tasks have.  The
// laziness of the result controls only when the caller observes
// results, never when the work starts.
//
// If f panics for some element, the panic is captured in that element's
// task and re-raised as a *future.PanicError when that position is
// forced.  The sibling tasks run to completion regardless.
//
// A transform with side effects has undefined behavior under Pmap, as
// it does under any lazy operation in this package.
func Pmap[T, M any](s Seq[T], f MapFunc[T, M], opts ...PmapOption) Seq[M] {
	var o pmapOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := o.newTracer("Pmap")
	defer t.end()

	pool := future.NewPool(o.maxParallelism)

	tDispatch := t.subTracer("dispatch")
	tasks, _ := Fold(s, []*future.Task[M]{},
		func(acc []*future.Task[M], v T) ([]*future.Task[M], error) {
			return append(acc, future.Submit(pool, func() M { return f(v) })), nil
		})
	tDispatch.msg("%d tasks submitted", len(tasks))
	tDispatch.end()

	return Map(FromSlice(tasks), func(task *future.Task[M]) M {
		v, err := task.Wait()
		if err != nil {
			// Surface the captured worker panic to whoever forced
			// this position.
			panic(err)
		}
		return v
	})
}

// Pmap2 is the two-collection form of Pmap, with Map2's contract: the
// inputs are transposed into pairs and f runs concurrently on each
// pair, stopping at the shorter input.
func Pmap2[T, U, M any](a Seq[T], b Seq[U], f func(T, U) M, opts ...PmapOption) Seq[M] {
	return Pmap(Zip2(a, b), func(p Pair[T, U]) M {
		return f(p.First, p.Second)
	}, opts...)
}

// PmapN is the N-collection form of Pmap, with MapN's contract: f is
// applied positionally to each transposed tuple, concurrently across
// tuples, stopping at the shortest input.
//
// PmapN cannot accept options alongside its variadic sequences; calls
// that need Parallelism or tracing can apply Pmap to Zip directly.
func PmapN[T, M any](f func(...T) M, seqs ...Seq[T]) Seq[M] {
	return Pmap(Zip(seqs...), func(vals []T) M {
		return f(vals...)
	})
}
