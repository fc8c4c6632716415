package llm

import (
	"fmt"
	"io"
	"time"
)

// LLMCallEvent is the telemetry for one model invocation.
type LLMCallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives one event per completed call, success or not.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver prints call events as logfmt-style lines, one per call.
// Wired to stderr when ENJAZ_LLM_LOG_CALLS is set.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] llm_call task=%s model=%s latency_ms=%d status=%s\n",
		time.Now().UTC().Format(time.RFC3339), event.Task, event.Model, event.LatencyMs, status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
