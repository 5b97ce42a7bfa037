package middleware

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts request body conversions by outcome ("converted" or
// "rejected"). A nil *Metrics records nothing.
type Metrics struct {
	conversions *prometheus.CounterVec
}

// NewMetrics creates the conversion counter and registers it with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goconv_http_conversions_total",
				Help: "Request bodies processed by the conversion middleware, by outcome",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.conversions)
	return m
}

func (m *Metrics) observe(ok bool) {
	if m == nil {
		return
	}
	outcome := "converted"
	if !ok {
		outcome = "rejected"
	}
	m.conversions.WithLabelValues(outcome).Inc()
}
