package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	EventsCreated Counter

	BootstrapRuns Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stashboard",
		Name:      name,
		Help:      help,
	}, labels)
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{counter: newCounterVec(name, help, labels)}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func newCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		EventsCreated: NewPrometheusCounter(reg,
			"events_created_total",
			"Number of service events created",
			[]string{"service", "status"},
		),
		BootstrapRuns: NewPrometheusCounter(reg,
			"bootstrap_runs_total",
			"Default status bootstrap checks by outcome",
			[]string{"outcome"},
		),
	}
}

func New() *Counters {
	return newCounters(prometheus.DefaultRegisterer)
}

// NewTestCounters registers on a private registry so tests can build many.
func NewTestCounters() *Counters {
	return newCounters(prometheus.NewRegistry())
}
