// Package metrics exposes the planning engine counters to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives engine events. Implementations must be safe for concurrent use.
type Recorder interface {
	RecordMaintenance(pass string, processed, failed int, elapsed time.Duration)
	RecordMutation(op string, ok bool)
	RecordCacheLookup(hit bool)
	RecordArchived(count int)
}

// Nop discards every event.
type Nop struct{}

func (Nop) RecordMaintenance(string, int, int, time.Duration) {}
func (Nop) RecordMutation(string, bool)                       {}
func (Nop) RecordCacheLookup(bool)                            {}
func (Nop) RecordArchived(int)                                {}

// PromRecorder records engine events in Prometheus metrics.
type PromRecorder struct {
	recurrences *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	mutations   *prometheus.CounterVec
	cache       *prometheus.CounterVec
	archived    prometheus.Counter
}

var _ Recorder = (*PromRecorder)(nil)

// NewPromRecorder registers the engine metrics on reg.
// If reg is nil, the default registerer is used. If the collectors are already
// registered, the existing ones are reused.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	recurrences := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planning_maintenance_recurrences_total",
		Help: "Recurrences visited by a maintenance pass",
	}, []string{"pass", "result"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "planning_maintenance_duration_seconds",
		Help:    "Duration of a maintenance pass",
		Buckets: prometheus.DefBuckets,
	}, []string{"pass"})
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planning_mutations_total",
		Help: "Planning mutations by operation and outcome",
	}, []string{"op", "success"})
	cache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planning_cache_lookups_total",
		Help: "Lookups of the today planning cache",
	}, []string{"hit"})
	archived := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planning_archived_total",
		Help: "Plannings moved to the archive database",
	})

	var err error
	if recurrences, err = register(reg, recurrences); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if mutations, err = register(reg, mutations); err != nil {
		return nil, err
	}
	if cache, err = register(reg, cache); err != nil {
		return nil, err
	}
	if archived, err = register(reg, archived); err != nil {
		return nil, err
	}

	return &PromRecorder{
		recurrences: recurrences,
		duration:    duration,
		mutations:   mutations,
		cache:       cache,
		archived:    archived,
	}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordMaintenance counts the recurrences of one pass and observes its duration.
func (r *PromRecorder) RecordMaintenance(pass string, processed, failed int, elapsed time.Duration) {
	r.recurrences.WithLabelValues(pass, "ok").Add(float64(processed - failed))
	r.recurrences.WithLabelValues(pass, "failed").Add(float64(failed))
	r.duration.WithLabelValues(pass).Observe(elapsed.Seconds())
}

// RecordMutation counts one planning mutation.
func (r *PromRecorder) RecordMutation(op string, ok bool) {
	r.mutations.WithLabelValues(op, strconv.FormatBool(ok)).Inc()
}

// RecordCacheLookup counts one cache lookup.
func (r *PromRecorder) RecordCacheLookup(hit bool) {
	r.cache.WithLabelValues(strconv.FormatBool(hit)).Inc()
}

// RecordArchived counts archived plannings.
func (r *PromRecorder) RecordArchived(count int) {
	r.archived.Add(float64(count))
}
