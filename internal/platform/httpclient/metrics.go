package httpclient

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa los colectores de requests salientes.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics crea y registra los colectores en reg (nil => no se registra).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pawbuddy_api_requests_total",
				Help: "Total number of requests sent to the PawBuddy API.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pawbuddy_api_request_duration_seconds",
				Help:    "PawBuddy API request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.requestsTotal, m.requestDuration)
	}
	return m
}

func (m *Metrics) observe(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	// status 0 = error de transporte
	labels := []string{method, routeLabel(path), strconv.Itoa(status)}
	m.requestsTotal.WithLabelValues(labels...).Inc()
	m.requestDuration.WithLabelValues(labels...).Observe(d.Seconds())
}

// routeLabel reemplaza segmentos numéricos por {id} para acotar la cardinalidad.
func routeLabel(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if _, err := strconv.Atoi(p); err == nil {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}
