//go:build asn1der_debug

package asn1der

/*
trace_on.go contains the debug-tracer implementation activated by the
"asn1der_debug" build tag. See trace_off.go for the no-op stand-in
compiled in by default, so that the instrumentation calls sprinkled
through tag.go, length.go, object.go and sequence.go cost nothing in a
normal build.
*/

import (
	"fmt"
	"io"
	"os"
	"sync"
)

/*
EnvDebugVar names the environment variable consulted at init time to
enable tracing without a rebuild.
*/
const EnvDebugVar = "ASN1DER_DEBUG"

/*
Tracer receives [TraceEvent] values as this package walks the wire
grammar and the SEQUENCE composition engine.
*/
type Tracer interface {
	Trace(TraceEvent)
}

/*
TraceEvent describes a single traced occurrence.
*/
type TraceEvent struct {
	Func string
	Msg  string
	Args []any
}

/*
DefaultTracer writes [TraceEvent] values to an [io.Writer], one line
per event.
*/
type DefaultTracer struct {
	mu sync.Mutex
	w  io.Writer
}

/*
NewDefaultTracer returns a [*DefaultTracer] writing to w.
*/
func NewDefaultTracer(w io.Writer) *DefaultTracer { return &DefaultTracer{w: w} }

func (r *DefaultTracer) Trace(ev TraceEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "%s: %s %v\n", ev.Func, ev.Msg, ev.Args)
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{}
)

type discardTracer struct{}

func (*discardTracer) Trace(TraceEvent) {}

/*
EnableDebug installs t as the package-level [Tracer].
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug restores the no-op [Tracer].
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

func debugTrace(fn, msg string, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()
	t.Trace(TraceEvent{Func: fn, Msg: msg, Args: args})
}

func init() {
	if os.Getenv(EnvDebugVar) != "" {
		EnableDebug(NewDefaultTracer(os.Stderr))
	}
}
