package aiclass

import (
	"sync"
	"sync/atomic"
)

// Diagnostics counts remote classification attempts and remembers the most
// recent failure. It is safe for concurrent use.
type Diagnostics struct {
	requests atomic.Int64

	mu        sync.Mutex
	lastError string
}

// DiagnosticsSnapshot is a point-in-time copy of Diagnostics.
type DiagnosticsSnapshot struct {
	RequestCount int64  `json:"requestCount"`
	LastError    string `json:"lastError,omitempty"`
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// RecordRequest counts one attempt.
func (d *Diagnostics) RecordRequest() {
	d.requests.Add(1)
}

// RecordError stores err as the last error. A nil err clears it.
func (d *Diagnostics) RecordError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err == nil {
		d.lastError = ""
		return
	}
	d.lastError = err.Error()
}

// ClearError forgets the last error.
func (d *Diagnostics) ClearError() {
	d.RecordError(nil)
}

func (d *Diagnostics) Snapshot() DiagnosticsSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DiagnosticsSnapshot{
		RequestCount: d.requests.Load(),
		LastError:    d.lastError,
	}
}
