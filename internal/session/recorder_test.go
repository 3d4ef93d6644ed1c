package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/tracking/internal/domain"
	"example.com/tracking/internal/geo"
)

func floatPtr(v float64) *float64 { return &v }

func samplePoint(i int, start time.Time) domain.LocationPoint {
	return domain.LocationPoint{
		Latitude:  59.3293 + float64(i)*0.0005,
		Longitude: 18.0686,
		Timestamp: start.Add(time.Duration(i) * 10 * time.Second),
		Accuracy:  5,
	}
}

func TestNewRecorderRejectsBadInputs(t *testing.T) {
	start := time.Now().UTC()

	_, err := NewRecorder("swim", domain.DefaultUserPreferences(), start)
	require.Error(t, err)

	prefs := domain.DefaultUserPreferences()
	prefs.GPSUpdateInterval = 0
	_, err = NewRecorder(domain.ActivityRun, prefs, start)
	require.Error(t, err)
	require.Equal(t, "GPS update interval must be a positive number", err.Error())
}

func TestRecorderAccumulatesValidatedPoints(t *testing.T) {
	start := time.Date(2025, time.June, 1, 7, 0, 0, 0, time.UTC)
	rec, err := NewRecorder(domain.ActivityRun, domain.DefaultUserPreferences(), start)
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID())

	for i := 0; i < 6; i++ {
		require.NoError(t, rec.Add(samplePoint(i, start)))
	}

	stats := rec.Stats()
	require.Equal(t, 6, stats.PointCount)
	require.Greater(t, stats.TotalDistance, 0.0)
}

func TestRecorderRejectsInvalidPoint(t *testing.T) {
	start := time.Date(2025, time.June, 1, 7, 0, 0, 0, time.UTC)
	rec, err := NewRecorder(domain.ActivityWalk, domain.DefaultUserPreferences(), start)
	require.NoError(t, err)

	p := samplePoint(0, start)
	p.Latitude = 95
	err = rec.Add(p)
	require.Error(t, err)
	require.Equal(t, "Latitude must be between -90 and 90", err.Error())
	require.Zero(t, rec.PointCount())
}

func TestRecorderRejectsOutOfOrderPoint(t *testing.T) {
	start := time.Date(2025, time.June, 1, 7, 0, 0, 0, time.UTC)
	rec, err := NewRecorder(domain.ActivityWalk, domain.DefaultUserPreferences(), start)
	require.NoError(t, err)

	require.NoError(t, rec.Add(samplePoint(1, start)))
	err = rec.Add(samplePoint(0, start))
	require.Error(t, err)
	require.Equal(t, "GPS points must be in chronological order", err.Error())
}

func TestRecorderAppliesMinDistanceFilter(t *testing.T) {
	start := time.Date(2025, time.June, 1, 7, 0, 0, 0, time.UTC)
	prefs := domain.DefaultUserPreferences()
	prefs.MinDistanceFilter = floatPtr(20)
	rec, err := NewRecorder(domain.ActivityWalk, prefs, start)
	require.NoError(t, err)

	first := samplePoint(0, start)
	require.NoError(t, rec.Add(first))

	// Roughly one meter away: dropped without error.
	jitter := first
	jitter.Latitude += 0.00001
	jitter.Timestamp = first.Timestamp.Add(5 * time.Second)
	require.NoError(t, rec.Add(jitter))
	require.Equal(t, 1, rec.PointCount())

	// Roughly 55 meters away: kept, and the distance is measured from the
	// kept point, unaffected by the dropped jitter.
	far := first
	far.Latitude += 0.0005
	far.Timestamp = first.Timestamp.Add(20 * time.Second)
	require.NoError(t, rec.Add(far))
	require.Equal(t, 2, rec.PointCount())

	want := geo.Haversine(first.Latitude, first.Longitude, far.Latitude, far.Longitude)
	require.InDelta(t, want, rec.Stats().TotalDistance, 1e-9)
}

func TestRecorderFinishProducesValidWorkout(t *testing.T) {
	start := time.Date(2025, time.June, 1, 7, 0, 0, 0, time.UTC)
	rec, err := NewRecorder(domain.ActivityRun, domain.DefaultUserPreferences(), start)
	require.NoError(t, err)

	var last domain.LocationPoint
	for i := 0; i < 30; i++ {
		last = samplePoint(i, start)
		require.NoError(t, rec.Add(last))
	}

	workout, err := rec.Finish(last.Timestamp)
	require.NoError(t, err)
	require.Equal(t, rec.ID(), workout.ID)
	require.Equal(t, domain.ActivityRun, workout.Type)
	require.Equal(t, 290, workout.Duration)
	require.Len(t, workout.GPSPoints, 30)
	require.Greater(t, workout.Distance, 0.0)
	require.Greater(t, workout.AvgPace, 0.0)

	// Finished sessions accept no further input.
	require.ErrorIs(t, rec.Add(samplePoint(31, start)), ErrFinished)
	_, err = rec.Finish(last.Timestamp.Add(time.Minute))
	require.ErrorIs(t, err, ErrFinished)
}

func TestRecorderFinishInconsistentDurationFailsOpen(t *testing.T) {
	start := time.Date(2025, time.June, 1, 7, 0, 0, 0, time.UTC)
	rec, err := NewRecorder(domain.ActivityRun, domain.DefaultUserPreferences(), start)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, rec.Add(samplePoint(i, start)))
	}

	// An end time far beyond the GPS span fails the terminal gate and
	// leaves the session open.
	_, err = rec.Finish(start.Add(2 * time.Hour))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Duration")

	require.NoError(t, rec.Add(samplePoint(10, start)))
}
