// Package events defines the event payloads emitted for accepted workouts
// and the Kafka publisher that writes them.
package events

import "time"

// TopicWorkoutEvents is the Kafka topic carrying workout lifecycle events.
const TopicWorkoutEvents = "workout_events"

// EventWorkoutRecorded is the event_type header value for accepted workouts.
const EventWorkoutRecorded = "workout.recorded"

// WorkoutRecorded is emitted when a workout passes the terminal validation
// gate and is accepted for storage.
type WorkoutRecorded struct {
	WorkoutID       string    `json:"workout_id"`
	ActivityType    string    `json:"activity_type"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DistanceMeters  float64   `json:"distance_m"`
	DurationSeconds int       `json:"duration_s"`
	AvgPaceMinPerKm float64   `json:"avg_pace_min_per_km"`
	MaxSpeedMPS     float64   `json:"max_speed_mps"`
	PointCount      int       `json:"point_count"`
	RecordedAt      time.Time `json:"recorded_at"`
}
