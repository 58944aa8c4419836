package quiz

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for quiz activity. A nil *Metrics
// records nothing.
type Metrics struct {
	questions      *prometheus.CounterVec
	reports        *prometheus.CounterVec
	reportDuration prometheus.Histogram
}

var (
	defaultMetricsOnce sync.Once
	sharedMetrics      *Metrics
)

// DefaultMetrics returns metrics registered with the global Prometheus
// registry. Collectors are created once.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		sharedMetrics = MustNewMetrics(prometheus.DefaultRegisterer)
	})
	return sharedMetrics
}

// MustNewMetrics registers the quiz collectors with reg and panics on a
// registration conflict it cannot resolve. Tests should pass a fresh
// prometheus.NewRegistry().
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		questions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ijin",
			Subsystem: "quiz",
			Name:      "questions_served_total",
			Help:      "Questions selected, by session stage.",
		}, []string{"stage"}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ijin",
			Subsystem: "quiz",
			Name:      "reports_total",
			Help:      "Final reports served, by cache outcome and status.",
		}, []string{"cache", "status"}),
		reportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ijin",
			Subsystem: "quiz",
			Name:      "report_duration_seconds",
			Help:      "Time spent producing a final report.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{m.questions, m.reports, m.reportDuration} {
		if err := reg.Register(c); err != nil {
			already, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				panic(err)
			}
			switch c {
			case m.questions:
				m.questions = already.ExistingCollector.(*prometheus.CounterVec)
			case m.reports:
				m.reports = already.ExistingCollector.(*prometheus.CounterVec)
			case m.reportDuration:
				m.reportDuration = already.ExistingCollector.(prometheus.Histogram)
			}
		}
	}
	return m
}

// ObserveQuestion counts one selected question.
func (m *Metrics) ObserveQuestion(stage string) {
	if m == nil {
		return
	}
	m.questions.WithLabelValues(stage).Inc()
}

// ObserveReport records one final report request.
func (m *Metrics) ObserveReport(cached bool, d time.Duration, err error) {
	if m == nil {
		return
	}
	cache := "miss"
	if cached {
		cache = "hit"
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.reports.WithLabelValues(cache, status).Inc()
	m.reportDuration.Observe(d.Seconds())
}
