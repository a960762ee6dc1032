package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	// DebugLogActions counts executed mutating actions by action and status.
	DebugLogActions Counter

	// AdminRequests counts admin screen requests by intent and outcome.
	AdminRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
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
		DebugLogActions: NewPrometheusCounter(
			reg,
			"debuglog_actions_total",
			"Number of executed debug log actions",
			[]string{"action", "status"},
		),
		AdminRequests: NewPrometheusCounter(
			reg,
			"admin_requests_total",
			"Number of debug log admin screen requests",
			[]string{"intent", "outcome"},
		),
	}
}

func New() *Counters {
	return newCounters(prometheus.DefaultRegisterer)
}

func NewTestCounters() *Counters {
	return newCounters(prometheus.NewRegistry())
}
