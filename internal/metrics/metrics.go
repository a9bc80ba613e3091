package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa os coletores Prometheus da aplicação. Um *Metrics nil
// é válido e não registra nada.
type Metrics struct {
	DatasetLoads        *prometheus.CounterVec
	DatasetLoadDuration *prometheus.HistogramVec
	TrainingRuns        *prometheus.CounterVec
	TrainingDuration    prometheus.Histogram
	Predictions         *prometheus.CounterVec
	ForecastRows        prometheus.Counter
	PredictorCacheHits  *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
}

// New cria e registra as métricas em reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DatasetLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_forecast_dataset_loads_total",
				Help: "Number of dataset file reads by dataset and status",
			},
			[]string{"dataset", "status"},
		),
		DatasetLoadDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sales_forecast_dataset_load_duration_seconds",
				Help:    "Time spent reading dataset files",
				Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
			},
			[]string{"dataset"},
		),
		TrainingRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_forecast_training_runs_total",
				Help: "Number of predictor training calls by status",
			},
			[]string{"status"},
		),
		TrainingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sales_forecast_training_duration_seconds",
			Help:    "Time spent fitting predictors",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		Predictions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_forecast_predictions_total",
				Help: "Number of prediction calls by status",
			},
			[]string{"status"},
		),
		ForecastRows: factory.NewCounter(prometheus.CounterOpts{
			Name: "sales_forecast_forecast_rows_total",
			Help: "Number of forecast rows produced",
		}),
		PredictorCacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_forecast_predictor_cache_total",
				Help: "Predictor cache lookups by result",
			},
			[]string{"result"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_forecast_http_requests_total",
				Help: "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sales_forecast_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) ObserveDatasetLoad(dataset string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.DatasetLoads.WithLabelValues(dataset, status(err)).Inc()
	m.DatasetLoadDuration.WithLabelValues(dataset).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveTraining(start time.Time, err error) {
	if m == nil {
		return
	}
	m.TrainingRuns.WithLabelValues(status(err)).Inc()
	m.TrainingDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObservePrediction(rows int, err error) {
	if m == nil {
		return
	}
	m.Predictions.WithLabelValues(status(err)).Inc()
	m.ForecastRows.Add(float64(rows))
}

func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.PredictorCacheHits.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
