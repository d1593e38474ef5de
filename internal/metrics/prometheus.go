package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hr_chatbot_query_duration_seconds",
			Help:    "Chat query processing duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"strategy"},
	)

	QueryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hr_chatbot_query_total",
			Help: "Total number of chat queries processed",
		},
		[]string{"status"},
	)

	ConfidenceScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hr_chatbot_confidence_score",
			Help:    "Chat result confidence scores",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)

	MatchCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hr_chatbot_match_count",
			Help:    "Number of employees matched per query",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
	)

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hr_chatbot_cache_hits_total",
			Help: "Total query cache hits",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hr_chatbot_cache_misses_total",
			Help: "Total query cache misses",
		},
	)

	EmployeesLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "hr_chatbot_employees_loaded",
			Help: "Number of employees in the directory index",
		},
	)

	EmbeddingStrategy = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hr_chatbot_embedding_strategy",
			Help: "Embedding strategy selected at startup (1 for the active one)",
		},
		[]string{"strategy"},
	)
)

func Init() {
	prometheus.MustRegister(QueryDuration)
	prometheus.MustRegister(QueryTotal)
	prometheus.MustRegister(ConfidenceScore)
	prometheus.MustRegister(MatchCount)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(EmployeesLoaded)
	prometheus.MustRegister(EmbeddingStrategy)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
