// Package metrics exposes Prometheus instrumentation for the server.
package metrics

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the server's metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
	Computations  *prometheus.CounterVec
	RateLimited   prometheus.Counter
	LiveSessions  prometheus.Gauge

	LastOrbitalTotal     prometheus.Gauge
	LastTerrestrialTotal prometheus.Gauge
	LastBreakeven        prometheus.Gauge
}

// New registers metrics against reg, defaulting to the global registry when
// nil. Metrics already registered on reg are reused.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}
	c := &Collector{gatherer: gatherer}

	var err error
	if c.HTTPRequests, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "spacedc_http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"route", "method", "code"})); err != nil {
		return nil, err
	}
	if c.HTTPDurations, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "spacedc_http_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})); err != nil {
		return nil, err
	}
	if c.Computations, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "spacedc_computations_total",
		Help: "Model evaluations, labeled by model and whether every output was finite.",
	}, []string{"model", "finite"})); err != nil {
		return nil, err
	}
	if c.RateLimited, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spacedc_rate_limited_total",
		Help: "Requests rejected by the rate limiter.",
	})); err != nil {
		return nil, err
	}
	if c.LiveSessions, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "spacedc_live_sessions",
		Help: "Open live-recompute WebSocket sessions.",
	})); err != nil {
		return nil, err
	}
	if c.LastOrbitalTotal, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "spacedc_last_orbital_total_dollars",
		Help: "Orbital total cost of the most recent comparison.",
	})); err != nil {
		return nil, err
	}
	if c.LastTerrestrialTotal, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "spacedc_last_terrestrial_total_dollars",
		Help: "Terrestrial total cost of the most recent comparison.",
	})); err != nil {
		return nil, err
	}
	if c.LastBreakeven, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "spacedc_last_breakeven_dollars_per_kg",
		Help: "Breakeven launch cost of the most recent comparison.",
	})); err != nil {
		return nil, err
	}
	return c, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Handler serves the metrics gathered from the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// ObserveComputation counts one model evaluation.
func (c *Collector) ObserveComputation(model string, finite bool) {
	c.Computations.WithLabelValues(model, strconv.FormatBool(finite)).Inc()
}

// ObserveComparison records the headline figures of a comparison.
func (c *Collector) ObserveComparison(orbitalTotal, terrestrialTotal, breakeven float64) {
	c.LastOrbitalTotal.Set(orbitalTotal)
	c.LastTerrestrialTotal.Set(terrestrialTotal)
	c.LastBreakeven.Set(breakeven)
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Hijack lets WebSocket upgrades pass through the middleware.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	rw.statusCode = http.StatusSwitchingProtocols
	return h.Hijack()
}

// Middleware records request count and duration. Requests are labeled by
// their matched mux pattern so that arbitrary paths do not add series.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "other"
		}
		code := strconv.Itoa(rw.statusCode)
		c.HTTPRequests.WithLabelValues(route, r.Method, code).Inc()
		c.HTTPDurations.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
