// Package session implements the live recording session: raw GPS samples
// are validated on arrival, filtered against the user's minimum distance
// preference, and folded into running statistics until the session is
// finalized into a workout.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/tracking/internal/domain"
	"example.com/tracking/internal/geo"
	"example.com/tracking/internal/validate"
)

// ErrFinished is returned when points are added to a finished session.
var ErrFinished = errors.New("session already finished")

// Recorder accumulates a validated, append-only point sequence for one
// workout session. Safe for use from a single sequential caller; the mutex
// guards against accidental concurrent use.
type Recorder struct {
	mu           sync.Mutex
	id           string
	activityType domain.ActivityType
	prefs        domain.UserPreferences
	startTime    time.Time
	points       []domain.LocationPoint
	acc          geo.Accumulator
	finished     bool
}

// NewRecorder starts a session for the given activity. Preferences are
// validated before use.
func NewRecorder(activityType domain.ActivityType, prefs domain.UserPreferences, startTime time.Time) (*Recorder, error) {
	if !activityType.IsValid() {
		return nil, fmt.Errorf("unsupported activity type %q", activityType)
	}
	if err := validate.Preferences(prefs); err != nil {
		return nil, err
	}
	return &Recorder{
		id:           uuid.NewString(),
		activityType: activityType,
		prefs:        prefs,
		startTime:    startTime,
	}, nil
}

// ID returns the session identifier, which becomes the workout ID.
func (r *Recorder) ID() string {
	return r.id
}

// Add validates the sample against domain bounds and session chronology and
// folds it into the running statistics. Points closer to the previous kept
// point than the minimum distance filter are dropped silently; dropping is
// not an error.
func (r *Recorder) Add(p domain.LocationPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.finished {
		return ErrFinished
	}
	if err := validate.Point(p); err != nil {
		return err
	}
	if n := len(r.points); n > 0 {
		last := r.points[n-1]
		if err := validate.Sequence([]domain.LocationPoint{last, p}); err != nil {
			return err
		}
		if r.prefs.MinDistanceFilter != nil {
			d := geo.Haversine(last.Latitude, last.Longitude, p.Latitude, p.Longitude)
			if d < *r.prefs.MinDistanceFilter {
				return nil
			}
		}
	}

	r.points = append(r.points, p)
	r.acc.Add(p)
	return nil
}

// Stats returns the live statistics over the points kept so far.
func (r *Recorder) Stats() domain.TrackStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acc.Stats()
}

// PointCount reports how many points the session has kept.
func (r *Recorder) PointCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.points)
}

// Finish closes the session and builds the workout from the accumulated
// trace. The result passes the terminal validation gate before it is
// released; a failed validation leaves the session open and returns the
// validation error.
func (r *Recorder) Finish(endTime time.Time) (domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.finished {
		return domain.Workout{}, ErrFinished
	}

	stats := r.acc.Stats()
	duration := int(endTime.Sub(r.startTime).Seconds())
	w := domain.Workout{
		ID:        r.id,
		Type:      r.activityType,
		StartTime: r.startTime,
		EndTime:   endTime,
		Distance:  stats.TotalDistance,
		Duration:  duration,
		AvgPace:   geo.PaceMinPerKm(stats.TotalDistance, float64(duration)),
		MaxSpeed:  stats.MaxSpeed,
		GPSPoints: append([]domain.LocationPoint(nil), r.points...),
	}
	if err := validate.Workout(w); err != nil {
		return domain.Workout{}, err
	}

	r.finished = true
	return w, nil
}
