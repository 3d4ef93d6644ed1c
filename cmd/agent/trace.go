package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"example.com/tracking/internal/domain"
)

// loadTrace reads a JSON array of location points from path, or generates a
// short synthetic walk when no path is configured.
func loadTrace(path string) ([]domain.LocationPoint, error) {
	if path == "" {
		return syntheticTrace(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace %s: %w", path, err)
	}
	var points []domain.LocationPoint
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("parse trace %s: %w", path, err)
	}
	if len(points) == 0 {
		return nil, errors.New("trace contains no points")
	}
	return points, nil
}

// syntheticTrace is a ten-minute northbound walk sampled every 5 seconds.
func syntheticTrace() []domain.LocationPoint {
	start := time.Now().UTC().Add(-10 * time.Minute)
	points := make([]domain.LocationPoint, 0, 120)
	for i := 0; i < 120; i++ {
		alt := 12.0 + float64(i%20)*0.1
		points = append(points, domain.LocationPoint{
			Latitude:  52.5200 + float64(i)*0.00006,
			Longitude: 13.4050,
			Timestamp: start.Add(time.Duration(i) * 5 * time.Second),
			Accuracy:  5,
			Altitude:  &alt,
		})
	}
	return points
}
