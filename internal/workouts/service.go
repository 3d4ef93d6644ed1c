// Package workouts contains the business logic for accepting, storing, and
// serving completed workouts.
package workouts

import (
	"context"
	"errors"
	"fmt"
	"log"

	"example.com/tracking/internal/domain"
	"example.com/tracking/internal/observability"
	"example.com/tracking/internal/validate"
)

// ErrWorkoutNotFound is returned when a workout cannot be located.
var ErrWorkoutNotFound = errors.New("workout not found")

// ValidationError marks a workout rejected by the terminal validation gate.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string { return e.Reason.Error() }

func (e *ValidationError) Unwrap() error { return e.Reason }

// Repository captures persistence operations for workouts.
type Repository interface {
	Save(ctx context.Context, w domain.Workout) error
	Get(ctx context.Context, id string) (*domain.Workout, error)
	List(ctx context.Context, limit int) ([]domain.Workout, error)
}

// Publisher emits events for accepted workouts.
type Publisher interface {
	PublishWorkoutRecorded(ctx context.Context, w domain.Workout) error
}

// Service orchestrates workout workflows.
type Service struct {
	repo      Repository
	publisher Publisher
	logger    *log.Logger
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithPublisher attaches an event publisher for accepted workouts.
func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithLogger overrides the logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService constructs a Service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: log.New(log.Writer(), "[workouts] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveWorkout runs the terminal validation gate and persists the workout. A
// failed validation blocks persistence and is reported as *ValidationError.
// Event publishing is best-effort and never fails the save.
func (s *Service) SaveWorkout(ctx context.Context, w domain.Workout) error {
	if err := validate.Workout(w); err != nil {
		observability.RecordWorkoutValidation(false)
		return &ValidationError{Reason: err}
	}
	observability.RecordWorkoutValidation(true)

	if err := s.repo.Save(ctx, w); err != nil {
		return fmt.Errorf("save workout %s: %w", w.ID, err)
	}
	observability.RecordWorkoutStored(w.EndTime)

	if s.publisher != nil {
		if err := s.publisher.PublishWorkoutRecorded(ctx, w); err != nil {
			s.logger.Printf("publish workout %s: %v", w.ID, err)
		}
	}
	return nil
}

// GetWorkout fetches a single workout by ID.
func (s *Service) GetWorkout(ctx context.Context, id string) (*domain.Workout, error) {
	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWorkoutNotFound
	}
	return w, nil
}

// ListWorkouts returns up to limit workouts, most recent first.
func (s *Service) ListWorkouts(ctx context.Context, limit int) ([]domain.Workout, error) {
	return s.repo.List(ctx, limit)
}
