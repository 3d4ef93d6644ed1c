package validate

import (
	"errors"
	"fmt"

	"example.com/tracking/internal/domain"
)

var errChronology = errors.New("GPS points must be in chronological order")

// Sequence checks an ordered batch of GPS samples: every point must be
// individually valid and timestamps must be non-decreasing. An empty
// sequence is trivially valid. Out-of-order input is a failure, never
// silently repaired.
func Sequence(points []domain.LocationPoint) error {
	for i, p := range points {
		if err := Point(p); err != nil {
			return fmt.Errorf("Invalid GPS point at index %d: %w", i, err)
		}
	}
	for i := 1; i < len(points); i++ {
		if points[i].Timestamp.Before(points[i-1].Timestamp) {
			return errChronology
		}
	}
	return nil
}
