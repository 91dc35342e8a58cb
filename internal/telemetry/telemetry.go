// Package telemetry provides runtime introspection as an injected
// capability, keeping process-global state out of the request handlers.
package telemetry

import (
	"runtime"
	"time"
)

// Provider exposes the runtime figures the health payload reports.
type Provider interface {
	Uptime() time.Duration
	GoVersion() string
	NumGoroutine() int
	HeapAllocBytes() uint64
}

type runtimeProvider struct {
	start time.Time
}

// NewRuntimeProvider returns a Provider backed by the Go runtime, anchored
// at the current time.
func NewRuntimeProvider() Provider {
	return &runtimeProvider{start: time.Now()}
}

func (p *runtimeProvider) Uptime() time.Duration {
	return time.Since(p.start)
}

func (p *runtimeProvider) GoVersion() string {
	return runtime.Version()
}

func (p *runtimeProvider) NumGoroutine() int {
	return runtime.NumGoroutine()
}

func (p *runtimeProvider) HeapAllocBytes() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}
