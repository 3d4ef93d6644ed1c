package domain

import "time"

// ActivityType is the closed set of supported workout activities.
type ActivityType string

const (
	ActivityWalk ActivityType = "walk"
	ActivityRun  ActivityType = "run"
	ActivityBike ActivityType = "bike"
)

// ActivityTypes lists every valid activity type in display order.
func ActivityTypes() []ActivityType {
	return []ActivityType{ActivityWalk, ActivityRun, ActivityBike}
}

// IsValid reports whether the value belongs to the closed activity set.
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityWalk, ActivityRun, ActivityBike:
		return true
	}
	return false
}

// LocationPoint is a single timestamped GPS sample. Optional kinematic
// attributes are pointers so that "absent" and "zero" stay distinct.
type LocationPoint struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	Accuracy  float64   `json:"accuracy"`
	Altitude  *float64  `json:"altitude,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`
	Heading   *float64  `json:"heading,omitempty"`
}

// Workout is a completed tracked session with aggregate metrics and the raw
// point trace it was derived from. Instances are never mutated once they
// pass validation.
type Workout struct {
	ID        string          `json:"id"`
	Type      ActivityType    `json:"type"`
	StartTime time.Time       `json:"start_time"`
	EndTime   time.Time       `json:"end_time"`
	Distance  float64         `json:"distance_m"`
	Duration  int             `json:"duration_s"`
	AvgPace   float64         `json:"avg_pace_min_per_km"`
	MaxSpeed  float64         `json:"max_speed_mps"`
	GPSPoints []LocationPoint `json:"gps_points"`
	Calories  *float64        `json:"calories,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Name      string          `json:"name,omitempty"`
}

// TrackStats is the aggregate derived from a validated point sequence.
type TrackStats struct {
	TotalDistance float64 `json:"total_distance_m"`
	AverageSpeed  float64 `json:"average_speed_mps"`
	MaxSpeed      float64 `json:"max_speed_mps"`
	ElevationGain float64 `json:"elevation_gain_m"`
	PointCount    int     `json:"point_count"`
}
