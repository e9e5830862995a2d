// Package metrics holds the Prometheus collectors for the signal engine.
//
// All methods are safe on a nil *Registry so components can be constructed
// without metrics in tests.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bloom"

// Registry owns a private prometheus registry and the engine's collectors.
type Registry struct {
	reg *prometheus.Registry

	scorerCalls   *prometheus.CounterVec
	scorerLatency prometheus.Histogram

	signalsWritten *prometheus.CounterVec
	swipes         *prometheus.CounterVec

	indexUsers     prometheus.Gauge
	indexEvictions prometheus.Counter

	schedulerRuns  *prometheus.CounterVec
	schedulerUsers *prometheus.CounterVec
	signalsPurged  prometheus.Counter

	grpcRequests *prometheus.CounterVec
	grpcLatency  *prometheus.HistogramVec
}

// New registers all collectors (plus Go/process collectors) on a fresh registry.
func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Registry{
		reg: reg,
		scorerCalls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "scorer", Name: "calls_total",
			Help: "Compatibility scorer calls by outcome.",
		}, []string{"outcome"}),
		scorerLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "scorer", Name: "latency_seconds",
			Help:    "Compatibility scorer call latency.",
			Buckets: []float64{.025, .05, .1, .25, .5, 1, 1.5, 2, 3},
		}),
		signalsWritten: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "signals", Name: "upserted_pairs_total",
			Help: "Bidirectional signal pairs written, by source.",
		}, []string{"source"}),
		swipes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "swipes", Name: "total",
			Help: "Swipes by direction and outcome.",
		}, []string{"direction", "outcome"}),
		indexUsers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "location", Name: "indexed_users",
			Help: "Users currently held in the location index.",
		}),
		indexEvictions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "location", Name: "evictions_total",
			Help: "Users evicted from the location index for staleness.",
		}),
		schedulerRuns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "scheduler", Name: "runs_total",
			Help: "Scheduled job runs by job and result.",
		}, []string{"job", "result"}),
		schedulerUsers: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "scheduler", Name: "user_evaluations_total",
			Help: "Per-user perfect-match evaluations by result.",
		}, []string{"result"}),
		signalsPurged: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "signals", Name: "purged_total",
			Help: "Expired signals removed by the purge job.",
		}),
		grpcRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "grpc", Name: "requests_total",
			Help: "gRPC requests by method and status code.",
		}, []string{"method", "code"}),
		grpcLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "grpc", Name: "request_duration_seconds",
			Help:    "gRPC request latency by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the underlying registry, mainly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.reg
}

func (r *Registry) ObserveScorerCall(outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.scorerCalls.WithLabelValues(outcome).Inc()
	r.scorerLatency.Observe(d.Seconds())
}

func (r *Registry) SignalPairWritten(source string) {
	if r == nil {
		return
	}
	r.signalsWritten.WithLabelValues(source).Inc()
}

func (r *Registry) Swipe(direction, outcome string) {
	if r == nil {
		return
	}
	r.swipes.WithLabelValues(direction, outcome).Inc()
}

func (r *Registry) SetIndexedUsers(n int) {
	if r == nil {
		return
	}
	r.indexUsers.Set(float64(n))
}

func (r *Registry) AddEvictions(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.indexEvictions.Add(float64(n))
}

func (r *Registry) SchedulerRun(job, result string) {
	if r == nil {
		return
	}
	r.schedulerRuns.WithLabelValues(job, result).Inc()
}

func (r *Registry) UserEvaluation(result string) {
	if r == nil {
		return
	}
	r.schedulerUsers.WithLabelValues(result).Inc()
}

func (r *Registry) AddPurged(n int64) {
	if r == nil || n <= 0 {
		return
	}
	r.signalsPurged.Add(float64(n))
}

func (r *Registry) ObserveGRPC(method, code string, d time.Duration) {
	if r == nil {
		return
	}
	r.grpcRequests.WithLabelValues(method, code).Inc()
	r.grpcLatency.WithLabelValues(method).Observe(d.Seconds())
}
