package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	// Business metrics
	SessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitness_sessions_total",
			Help: "Total number of processed sensor packages",
		},
		[]string{"service", "discipline", "status"},
	)

	CaloriesBurned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitness_calories_burned",
			Help:    "Calories burned per training",
			Buckets: []float64{50, 100, 200, 300, 500, 750, 1000, 1500, 2000},
		},
		[]string{"discipline"},
	)
)

// RecordSession records the outcome of one processed package
func RecordSession(service, discipline string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	SessionsTotal.WithLabelValues(service, discipline, status).Inc()
}

// RecordCalories records calories of a successfully built report
func RecordCalories(discipline string, calories float64) {
	CaloriesBurned.WithLabelValues(discipline).Observe(calories)
}

// WriteTextfile dumps the default registry in the node_exporter textfile format
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
