// Package observability holds the Prometheus collectors for orientation
// recomputation.
package observability

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector exposes state manager metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	RecomputeDuration prometheus.Histogram
	RecomputesTotal   prometheus.Counter
	EvaluationsTotal  *prometheus.CounterVec
	UnknownBodyTotal  prometheus.Counter
}

// NewCollector registers orientation metrics against the provided registerer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orient_recompute_duration_seconds",
		Help:    "Duration of a full orientation table recomputation.",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})
	if err := register(reg, duration, "orient_recompute_duration_seconds"); err != nil {
		return nil, err
	}

	recomputes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orient_recomputes_total",
		Help: "Number of orientation table recomputations.",
	})
	if err := register(reg, recomputes, "orient_recomputes_total"); err != nil {
		return nil, err
	}

	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orient_evaluations_total",
		Help: "Number of orientation model evaluations, by report edition.",
	}, []string{"report"})
	if err := register(reg, evaluations, "orient_evaluations_total"); err != nil {
		return nil, err
	}

	unknown := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orient_unknown_body_total",
		Help: "Number of lookups of a body with no orientation model.",
	})
	if err := register(reg, unknown, "orient_unknown_body_total"); err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:          gatherer,
		RecomputeDuration: duration,
		RecomputesTotal:   recomputes,
		EvaluationsTotal:  evaluations,
		UnknownBodyTotal:  unknown,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// ObserveRecompute records one table recomputation.
func (c *Collector) ObserveRecompute(d time.Duration) {
	if c == nil {
		return
	}
	c.RecomputesTotal.Inc()
	c.RecomputeDuration.Observe(d.Seconds())
}

// AddEvaluations counts n model evaluations against a report edition.
func (c *Collector) AddEvaluations(report string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.EvaluationsTotal.WithLabelValues(report).Add(float64(n))
}

// IncUnknownBody counts a failed body lookup.
func (c *Collector) IncUnknownBody() {
	if c == nil {
		return
	}
	c.UnknownBodyTotal.Inc()
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	if c == nil {
		return nil
	}
	families, err := c.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func register(reg prometheus.Registerer, c prometheus.Collector, name string) error {
	if err := reg.Register(c); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return fmt.Errorf("collector %s already registered", name)
		}
		return err
	}
	return nil
}
