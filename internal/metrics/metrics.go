// Package metrics records store activity as Prometheus metrics. A Recorder
// observes stores through their hooks and never changes what they do.
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/colonyops/tinystore/pkg/store"
)

// Config configures a Recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "tinystore").
	Namespace string

	// Registry is where metrics are registered. Default: a fresh registry.
	Registry *prometheus.Registry
}

// Recorder holds the store metrics.
type Recorder struct {
	registry *prometheus.Registry

	dispatchTotal  *prometheus.CounterVec
	reduceDuration *prometheus.HistogramVec
	notifications  *prometheus.CounterVec
	subscribers    *prometheus.GaugeVec
}

// New creates a Recorder and registers its metrics.
func New(cfg Config) *Recorder {
	if cfg.Namespace == "" {
		cfg.Namespace = "tinystore"
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	factory := promauto.With(cfg.Registry)

	return &Recorder{
		registry: cfg.Registry,
		dispatchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "dispatch_total",
			Help:      "Total number of actions dispatched",
		}, []string{"store", "action"}),
		reduceDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "reduce_duration_seconds",
			Help:      "Time spent in the reducer per dispatch",
			Buckets:   []float64{.000001, .00001, .0001, .001, .01, .1},
		}, []string{"store"}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "listener_notifications_total",
			Help:      "Total number of listener invocations",
		}, []string{"store"}),
		subscribers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "subscribers",
			Help:      "Number of active store subscriptions",
		}, []string{"store"}),
	}
}

// Registry returns the registry the metrics are registered with.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Attach wires the recorder to s through its hooks. Metrics are labelled
// with the store name.
func Attach[S any](r *Recorder, s *store.Store[S]) {
	name := s.Name()

	s.OnDispatch(func(a store.Action, elapsed time.Duration) {
		r.dispatchTotal.WithLabelValues(name, string(a.Type())).Inc()
		r.reduceDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	})
	s.OnNotify(func(n int) {
		r.notifications.WithLabelValues(name).Add(float64(n))
	})
	s.OnSubscribe(func(total int) {
		r.subscribers.WithLabelValues(name).Set(float64(total))
	})
	r.subscribers.WithLabelValues(name).Set(float64(s.Len()))
}

// Sample is one gathered counter or gauge value.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

func (s Sample) String() string {
	if len(s.Labels) == 0 {
		return fmt.Sprintf("%s %g", s.Name, s.Value)
	}
	keys := make([]string, 0, len(s.Labels))
	for k := range s.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%q", k, s.Labels[k])
	}
	return fmt.Sprintf("%s{%s} %g", s.Name, strings.Join(pairs, ","), s.Value)
}

// Summary gathers counters and gauges from g. Histograms are reported by
// their sample count with a "_count" suffix.
func Summary(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}

			switch {
			case m.GetCounter() != nil:
				out = append(out, Sample{Name: mf.GetName(), Labels: labels, Value: m.GetCounter().GetValue()})
			case m.GetGauge() != nil:
				out = append(out, Sample{Name: mf.GetName(), Labels: labels, Value: m.GetGauge().GetValue()})
			case m.GetHistogram() != nil:
				out = append(out, Sample{Name: mf.GetName() + "_count", Labels: labels, Value: float64(m.GetHistogram().GetSampleCount())})
			}
		}
	}
	return out, nil
}
