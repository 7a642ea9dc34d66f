package status

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Registry is the central telemetry facade for the frame loop.
// Screen and simulation code cache metric pointers during init and
// write directly to atomics; the overlay snapshots values per frame.
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Entry is one formatted metric row for overlay display
type Entry struct {
	Key   string
	Value string
}

// Entries snapshots all metrics under the given key prefix, sorted by
// key with ints before floats. An empty prefix returns everything.
// Float values keep three decimals to line up with the plotter labels.
func (r *Registry) Entries(prefix string) []Entry {
	var out []Entry
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		if strings.HasPrefix(key, prefix) {
			out = append(out, Entry{Key: key, Value: strconv.FormatInt(ptr.Load(), 10)})
		}
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		if strings.HasPrefix(key, prefix) {
			out = append(out, Entry{Key: key, Value: strconv.FormatFloat(ptr.Get(), 'f', 3, 64)})
		}
	})
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}
