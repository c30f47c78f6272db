package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates the Prometheus instrumentation of the API and
// the weekly generation cycle.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	classesCreated       prometheus.Counter
	generationIncomplete prometheus.Counter
	anchorConflicts      prometheus.Counter
	messagesDrained      prometheus.Counter
}

// NewMetricsService registers the Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	classesCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "elp_classes_created_total",
		Help: "Classes created by the weekly generator",
	})

	generationIncomplete := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "elp_class_generation_incomplete_total",
		Help: "Weekly generation cycles that created fewer classes than active courses",
	})

	anchorConflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "elp_week_anchor_conflicts_total",
		Help: "Week anchor advances skipped because the anchor already moved",
	})

	messagesDrained := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "elp_messages_drained_total",
		Help: "Outbound notifications handed to the bot",
	})

	registry.MustRegister(requestDuration, requestTotal, classesCreated, generationIncomplete, anchorConflicts, messagesDrained)

	return &MetricsService{
		registry:             registry,
		handler:              promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:      requestDuration,
		requestTotal:         requestTotal,
		classesCreated:       classesCreated,
		generationIncomplete: generationIncomplete,
		anchorConflicts:      anchorConflicts,
		messagesDrained:      messagesDrained,
	}
}

// Handler returns the Prometheus scrape handler.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one completed HTTP request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// AddClassesCreated records classes created by a generation cycle.
func (s *MetricsService) AddClassesCreated(n int) {
	s.classesCreated.Add(float64(n))
}

// IncGenerationIncomplete records a partial generation cycle.
func (s *MetricsService) IncGenerationIncomplete() {
	s.generationIncomplete.Inc()
}

// IncAnchorConflict records a skipped anchor advance.
func (s *MetricsService) IncAnchorConflict() {
	s.anchorConflicts.Inc()
}

// AddMessagesDrained records notifications handed off to the bot.
func (s *MetricsService) AddMessagesDrained(n int) {
	s.messagesDrained.Add(float64(n))
}
