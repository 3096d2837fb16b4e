//go:build klv_debug

package klv

/*
trace_on.go implements the optional parse-error-to-blob logging sink
described in §4.1/§7 of the codec design: when a typed reader fails,
the generic format wrapper logs the failure at error level through
this sink before falling back to [Unparsed]. Built with the
"klv_debug" tag; see trace_off.go for the zero-cost default build.
*/

import (
	"io"
	"os"
	"sync"
	"time"
)

/*
EnvDebugVar names the environment variable consulted at init time to
enable the [DefaultTracer] without requiring a code change.
*/
const EnvDebugVar = "KLVCODEC_DEBUG"

/*
EventType enumerates the kinds of events a [Tracer] may observe.
*/
type EventType int

const (
	EventNone         EventType = 0
	EventParseFailure EventType = 1 << iota
	EventIO
	EventAll = ^EventType(0)
)

/*
TraceRecord captures one observed event: the time it occurred, its
kind, and a free-form message describing it (e.g. the format name,
the byte length involved, and the underlying parse error).
*/
type TraceRecord struct {
	Time time.Time
	Type EventType
	Msg  string
}

/*
Tracer is implemented by any sink willing to receive [TraceRecord]
values. [DefaultTracer] is the package-supplied implementation.
*/
type Tracer interface {
	Trace(TraceRecord)
}

/*
DefaultTracer writes [TraceRecord] values to an [io.Writer] as
single-line, timestamped text.
*/
type DefaultTracer struct {
	mu sync.Mutex
	w  io.Writer
}

/*
NewDefaultTracer returns a [*DefaultTracer] writing to w.
*/
func NewDefaultTracer(w io.Writer) *DefaultTracer { return &DefaultTracer{w: w} }

func (r *DefaultTracer) Trace(rec TraceRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ts := rec.Time.Format("15:04:05.000")
	r.w.Write([]byte(ts + " " + rec.Type.String() + " " + rec.Msg + "\n"))
}

func (e EventType) String() string {
	switch {
	case e&EventParseFailure != 0:
		return "parse-failure"
	case e&EventIO != 0:
		return "io"
	default:
		return "event"
	}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = nil
)

/*
EnableDebug registers t as the active [Tracer].
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug removes any active [Tracer].
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = nil
}

func logParseFailure(formatName string, length int, cause error) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()
	if t == nil {
		return
	}
	t.Trace(TraceRecord{
		Time: time.Now(),
		Type: EventParseFailure,
		Msg:  formatName + ": length=" + itoa(length) + " falling back to blob: " + cause.Error(),
	})
}

func init() {
	if os.Getenv(EnvDebugVar) != "" {
		EnableDebug(NewDefaultTracer(os.Stderr))
	}
}
