package libctime

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	formats *prometheus.CounterVec
	applies *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		formats: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "libctime",
			Name:      "format_total",
			Help:      "Formatting calls by zone and result.",
		}, []string{"zone", "result"}),
		applies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "libctime",
			Name:      "apply_total",
			Help:      "Timezone and locale applications by result.",
		}, []string{"step", "result"}),
	}
	if reg != nil {
		m.formats = register(reg, m.formats)
		m.applies = register(reg, m.applies)
	}
	return m
}

// register returns the collector already registered under the same
// descriptor, so several Envs can share one registry.
func register(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing
		}
	}
	return c
}

func (m *metrics) formatted(zone Zone, err error) {
	m.formats.WithLabelValues(zone.String(), resultOf(err)).Inc()
}

func (m *metrics) applied(step string, err error) {
	m.applies.WithLabelValues(step, resultOf(err)).Inc()
}
