// Package capture records the implicit inputs a rule observes through
// capturing services and checks later whether they still hold.
package capture

import (
	"sync"

	"go.trai.ch/rulecache/internal/core/domain"
)

// Recorder collects the implicit input records of one rule execution.
// It is safe for concurrent use by the goroutines of a single rule.
type Recorder struct {
	mu        sync.Mutex
	implicits domain.Implicits
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Register appends record to the group of service.
func (r *Recorder) Register(service string, record domain.ImplicitInputRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.implicits.Put(service, record)
}

// Implicits returns a copy of everything registered so far.
func (r *Recorder) Implicits() domain.Implicits {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.implicits.Clone()
}
