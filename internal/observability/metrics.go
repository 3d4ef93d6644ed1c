// Package observability registers the service's Prometheus metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutValidationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tracking_service",
		Subsystem: "validation",
		Name:      "workout_results_total",
		Help:      "Number of workout validations grouped by outcome.",
	}, []string{"result"})

	permissionRequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tracking_service",
		Subsystem: "permission",
		Name:      "requests_total",
		Help:      "Number of permission requests grouped by kind and resulting status.",
	}, []string{"kind", "status"})

	statsComputeCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tracking_service",
		Subsystem: "geo",
		Name:      "stats_computations_total",
		Help:      "Number of track statistics computations served.",
	})

	lastWorkoutGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tracking_service",
		Subsystem: "workouts",
		Name:      "last_recorded_timestamp_seconds",
		Help:      "Unix timestamp of the most recent workout accepted for storage.",
	})
)

func init() {
	prometheus.MustRegister(workoutValidationCounter, permissionRequestCounter, statsComputeCounter, lastWorkoutGauge)
}

// RecordWorkoutValidation counts one terminal-gate validation outcome.
func RecordWorkoutValidation(valid bool) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	workoutValidationCounter.WithLabelValues(result).Inc()
}

// RecordPermissionRequest counts one permission request outcome.
func RecordPermissionRequest(kind, status string) {
	permissionRequestCounter.WithLabelValues(kind, status).Inc()
}

// RecordStatsComputation counts one statistics computation.
func RecordStatsComputation() {
	statsComputeCounter.Inc()
}

// RecordWorkoutStored updates the acceptance watermark gauge.
func RecordWorkoutStored(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastWorkoutGauge.Set(float64(ts.Unix()))
}
