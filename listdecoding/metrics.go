package listdecoding

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeFound = "found"
	outcomeEmpty = "empty"
	outcomeError = "error"
)

// Metrics collects decoding statistics. A nil *Metrics records nothing.
type Metrics struct {
	decodes    *prometheus.CounterVec
	candidates prometheus.Counter
	duration   prometheus.Histogram
}

// NewMetrics creates the decoder metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "listdecoding",
			Name:      "decodes_total",
			Help:      "Number of decode calls by outcome.",
		}, []string{"outcome"}),
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "listdecoding",
			Name:      "candidates_total",
			Help:      "Number of factors returned by the factorizer before filtering.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "listdecoding",
			Name:      "decode_duration_seconds",
			Help:      "Time spent in a decode call.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.decodes, m.candidates, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(start time.Time, candidates, results int, err error) {
	if m == nil {
		return
	}
	m.duration.Observe(time.Since(start).Seconds())
	m.candidates.Add(float64(candidates))
	switch {
	case err != nil:
		m.decodes.WithLabelValues(outcomeError).Inc()
	case results == 0:
		m.decodes.WithLabelValues(outcomeEmpty).Inc()
	default:
		m.decodes.WithLabelValues(outcomeFound).Inc()
	}
}
