// The agent is a local development harness for the recording pipeline: it
// runs the guided permission flow against a console prompter, replays a GPS
// trace through the session recorder, and publishes the finished workout.
package main

import (
	"context"
	"log"
	"os"

	"example.com/tracking/internal/config"
	"example.com/tracking/internal/domain"
	"example.com/tracking/internal/events"
	"example.com/tracking/internal/permission"
	"example.com/tracking/internal/session"
)

func main() {
	cfg := config.Load()
	logger := log.New(os.Stdout, "[agent] ", log.LstdFlags)

	ctx := context.Background()
	platform := permission.Platform(cfg.Platform)

	capability := newDevCapability(logger)
	prompter := newConsolePrompter(os.Stdin, os.Stdout)
	base := permission.NewOrchestrator(capability, prompter, platform, cfg.BundleID, permission.WithLogger(logger))
	guided := permission.NewGuided(base, prompter, platform,
		permission.WithMaxAttempts(cfg.MaxPermissionAttempts),
		permission.WithGuidedLogger(logger),
	)

	perms := guided.EnsureWorkoutPermissions(ctx)
	if !perms.Foreground.Granted {
		logger.Fatalf("foreground location permission denied, cannot record")
	}
	if perms.Background == nil || !perms.Background.Granted {
		logger.Printf("background permission unavailable, recording foreground only")
	}

	points, err := loadTrace(cfg.ReplayTracePath)
	if err != nil {
		logger.Fatalf("load trace: %v", err)
	}

	prefs := domain.DefaultUserPreferences()
	recorder, err := session.NewRecorder(prefs.DefaultActivityType, prefs, points[0].Timestamp)
	if err != nil {
		logger.Fatalf("start session: %v", err)
	}
	for _, p := range points {
		if err := recorder.Add(p); err != nil {
			logger.Fatalf("add point: %v", err)
		}
	}

	workout, err := recorder.Finish(points[len(points)-1].Timestamp)
	if err != nil {
		logger.Fatalf("finish session: %v", err)
	}

	producer := events.NewKafkaProducer(cfg.KafkaBrokers)
	defer producer.Close()

	if err := events.NewPublisher(producer).PublishWorkoutRecorded(ctx, workout); err != nil {
		logger.Printf("publish workout: %v", err)
	}

	logger.Printf("recorded workout %s: %.0fm over %ds (max %.1f m/s, pace %.2f min/km)",
		workout.ID, workout.Distance, workout.Duration, workout.MaxSpeed, workout.AvgPace)
}
