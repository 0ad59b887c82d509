package domain

import (
	"iter"
	"time"
)

// ImplicitInputRecord is one observed interaction with a capturing service:
// the input a rule passed and the output the service returned.
type ImplicitInputRecord struct {
	Input  any
	Output any
}

// Implicits groups implicit input records by service name.
//
// Service names keep the order in which they were first registered and each
// service keeps its records in registration order, so an encoded entry
// decodes to the same sequence. The zero value is empty and ready to use.
type Implicits struct {
	names   []string
	records map[string][]ImplicitInputRecord
}

// Put appends a record to the group of the named service.
func (im *Implicits) Put(service string, record ImplicitInputRecord) {
	if im.records == nil {
		im.records = make(map[string][]ImplicitInputRecord)
	}
	if _, ok := im.records[service]; !ok {
		im.names = append(im.names, service)
	}
	im.records[service] = append(im.records[service], record)
}

// PutAll appends several records to the group of the named service.
func (im *Implicits) PutAll(service string, records []ImplicitInputRecord) {
	for _, r := range records {
		im.Put(service, r)
	}
}

// Services returns the service names in first-registration order.
func (im Implicits) Services() []string {
	out := make([]string, len(im.names))
	copy(out, im.names)
	return out
}

// Records returns the records registered for the named service.
func (im Implicits) Records(service string) []ImplicitInputRecord {
	return im.records[service]
}

// All iterates over every service group in first-registration order.
func (im Implicits) All() iter.Seq2[string, []ImplicitInputRecord] {
	return func(yield func(string, []ImplicitInputRecord) bool) {
		for _, name := range im.names {
			if !yield(name, im.records[name]) {
				return
			}
		}
	}
}

// Len returns the number of distinct services.
func (im Implicits) Len() int {
	return len(im.names)
}

// Size returns the total number of records across all services.
func (im Implicits) Size() int {
	n := 0
	for _, rs := range im.records {
		n += len(rs)
	}
	return n
}

// IsEmpty reports whether no record was registered.
func (im Implicits) IsEmpty() bool {
	return len(im.names) == 0
}

// Clone returns a copy that shares no slices with the receiver.
func (im Implicits) Clone() Implicits {
	var out Implicits
	for name, rs := range im.All() {
		out.PutAll(name, rs)
	}
	return out
}

// CachedEntry is the persisted outcome of one rule execution.
// It is created once when the result is stored and replaced wholesale on invalidation.
type CachedEntry[R any] struct {
	// Timestamp is when the rule was executed, as reported by the build clock.
	Timestamp time.Time
	// Implicits holds every capturing service consultation made by the rule.
	Implicits Implicits
	// Result is the value extracted from the rule's details.
	Result R
}
