package validate

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"example.com/tracking/internal/domain"
)

// DurationTolerance bounds the allowed mismatch between the declared workout
// duration and the time spanned by its GPS trace. Durations are stored as
// whole seconds while GPS timestamps carry sub-second precision, so up to
// one second of truncation is expected; anything beyond that is an
// inconsistent record.
const DurationTolerance = time.Second

var (
	errMissingID        = errors.New("Workout must have an ID")
	errEndBeforeStart   = errors.New("End time must be after start time")
	errNegativeDistance = errors.New("Distance must be a non-negative number")
	errNonPositiveDur   = errors.New("Duration must be a positive number")
)

// Workout is the terminal gate before a workout is accepted for persistence.
// Checks run in order; the input is never mutated.
func Workout(w domain.Workout) error {
	if strings.TrimSpace(w.ID) == "" {
		return errMissingID
	}
	if !w.Type.IsValid() {
		return fmt.Errorf("Activity type must be one of %s", activityTypeList())
	}
	if !w.EndTime.After(w.StartTime) {
		return errEndBeforeStart
	}
	if w.Distance < 0 {
		return errNegativeDistance
	}
	if w.Duration <= 0 {
		return errNonPositiveDur
	}
	if err := Sequence(w.GPSPoints); err != nil {
		return err
	}
	if len(w.GPSPoints) >= 2 {
		span := w.GPSPoints[len(w.GPSPoints)-1].Timestamp.Sub(w.GPSPoints[0].Timestamp)
		declared := time.Duration(w.Duration) * time.Second
		if diff := span - declared; diff > DurationTolerance || diff < -DurationTolerance {
			return fmt.Errorf("Duration %ds does not match the %.0fs spanned by the GPS points",
				w.Duration, math.Round(span.Seconds()))
		}
	}
	return nil
}

func activityTypeList() string {
	types := domain.ActivityTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
