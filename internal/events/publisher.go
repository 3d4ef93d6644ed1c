package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"example.com/tracking/internal/domain"
)

// MessageWriter is the minimal producer interface the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, topic string, msgs ...kafka.Message) error
}

// Publisher marshals workout events and writes them to Kafka.
type Publisher struct {
	writer MessageWriter
}

// NewPublisher constructs a Publisher over the given writer.
func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// PublishWorkoutRecorded emits a workout.recorded event keyed by workout ID.
func (p *Publisher) PublishWorkoutRecorded(ctx context.Context, w domain.Workout) error {
	payload := WorkoutRecorded{
		WorkoutID:       w.ID,
		ActivityType:    string(w.Type),
		StartTime:       w.StartTime,
		EndTime:         w.EndTime,
		DistanceMeters:  w.Distance,
		DurationSeconds: w.Duration,
		AvgPaceMinPerKm: w.AvgPace,
		MaxSpeedMPS:     w.MaxSpeed,
		PointCount:      len(w.GPSPoints),
		RecordedAt:      time.Now().UTC(),
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal workout.recorded: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(w.ID),
		Value: value,
		Time:  payload.RecordedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventWorkoutRecorded)},
		},
	}
	return p.writer.WriteMessages(ctx, TopicWorkoutEvents, msg)
}
