package sequence

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// TraceFunc defines the function prototype of a tracing function.
// Per-call trace functions can be configured using WithTraceFunc.
type TraceFunc func(format string, v ...any)

// DefaultTracer is the global default trace function.  It prints
// messages to stderr.  DefaultTracer can be replaced by another tracing
// function to affect all traced calls.
var DefaultTracer = func(format string, v ...any) {
	fmt.Fprintf(os.Stderr, "<TRACE> "+format+"\n", v...)
}

var traceCounter atomic.Uint32

type tracer interface {
	subTracer(description string, v ...any) tracer
	msg(format string, v ...any)
	end()
}

type realTracer struct {
	begin       time.Time
	description string
	ids         []uint32
	subids      *atomic.Uint32
	traceFunc   TraceFunc
}

func newTracer(id uint32, description string, f TraceFunc, v ...any) tracer {
	if f == nil {
		f = DefaultTracer
	}

	t := &realTracer{
		description: fmt.Sprintf(description, v...),
		ids:         []uint32{id},
		subids:      &atomic.Uint32{},
		traceFunc:   f,
	}

	t.start()
	return t
}

func (t *realTracer) id() string {
	idStrings := make([]string, len(t.ids))
	for i, n := range t.ids {
		idStrings[i] = strconv.Itoa(int(n))
	}
	return strings.Join(idStrings, ".")
}

func (t *realTracer) start() {
	t.begin = time.Now()
	t.traceFunc("%s: START [pmap #%s] %s", t.begin.Format(time.RFC3339), t.id(), t.description)
}

func (t *realTracer) subTracer(description string, v ...any) tracer {
	subID := t.subids.Add(1)

	t2 := &realTracer{
		description: t.description + " / " + fmt.Sprintf(description, v...),
		ids:         append(slices.Clone(t.ids), subID),
		subids:      &atomic.Uint32{},
		traceFunc:   t.traceFunc,
	}

	t2.start()
	return t2
}

func (t *realTracer) msg(format string, v ...any) {
	args := []any{
		time.Now().Format(time.RFC3339), t.id(), t.description,
	}
	args = append(args, v...)
	t.traceFunc("%s: MSG [pmap #%s] %s: "+format, args...)
}

func (t *realTracer) end() {
	t.traceFunc("%s: END [pmap #%s] %s (took %s)",
		time.Now().Format(time.RFC3339), t.id(), t.description, time.Since(t.begin))
}

type nullTracer struct{}

func (t nullTracer) subTracer(string, ...any) tracer { return t }
func (t nullTracer) msg(string, ...any)              {}
func (t nullTracer) end()                            {}
