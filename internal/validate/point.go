// Package validate enforces the domain invariants over GPS samples, point
// sequences, workouts, and user preferences. Every validator is a pure
// function returning nil for a valid input and a human-readable error for
// the first rule that fails.
package validate

import (
	"errors"

	"example.com/tracking/internal/domain"
)

var (
	errInvalidTimestamp = errors.New("GPS point must have a valid timestamp")
	errLatitudeRange    = errors.New("Latitude must be between -90 and 90")
	errLongitudeRange   = errors.New("Longitude must be between -180 and 180")
	errNegativeAccuracy = errors.New("Accuracy must be a positive number")
	errNegativeSpeed    = errors.New("Speed must be a positive number")
	errHeadingRange     = errors.New("Heading must be between 0 and 360")
)

// Point checks a single GPS sample against physical and domain bounds.
// Rules run in order and the first failure wins.
func Point(p domain.LocationPoint) error {
	if p.Timestamp.IsZero() {
		return errInvalidTimestamp
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return errLatitudeRange
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return errLongitudeRange
	}
	if p.Accuracy < 0 {
		return errNegativeAccuracy
	}
	if p.Speed != nil && *p.Speed < 0 {
		return errNegativeSpeed
	}
	if p.Heading != nil && (*p.Heading < 0 || *p.Heading > 360) {
		return errHeadingRange
	}
	return nil
}
