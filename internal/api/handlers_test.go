package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"example.com/tracking/internal/auth"
	"example.com/tracking/internal/domain"
	"example.com/tracking/internal/store"
	"example.com/tracking/internal/workouts"
)

func newTestHandler() *Handler {
	return NewHandler(workouts.NewService(store.NewInMemoryRepository()))
}

func authedRequest(t *testing.T, method, target string, payload interface{}, scopes ...string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &body)

	claims := &auth.Claims{
		Subject:   "tester",
		Scopes:    make(map[string]struct{}),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	for _, scope := range scopes {
		claims.Scopes[scope] = struct{}{}
	}
	return req.WithContext(auth.WithClaims(req.Context(), claims))
}

func sampleWorkout() domain.Workout {
	start := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	return domain.Workout{
		ID:        "w-100",
		Type:      domain.ActivityRun,
		StartTime: start,
		EndTime:   start.Add(15 * time.Minute),
		Distance:  3000,
		Duration:  900,
		GPSPoints: []domain.LocationPoint{
			{Latitude: 40.0, Longitude: -3.0, Timestamp: start, Accuracy: 5},
			{Latitude: 40.01, Longitude: -3.0, Timestamp: start.Add(15 * time.Minute), Accuracy: 5},
		},
	}
}

func TestCreateWorkoutAccepted(t *testing.T) {
	handler := newTestHandler()

	req := authedRequest(t, http.MethodPost, "/v1/workouts", sampleWorkout(), auth.ScopeWorkoutsWrite)
	rr := httptest.NewRecorder()
	handler.createWorkout(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp CreateWorkoutResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.WorkoutID != "w-100" || resp.Status != "accepted" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestCreateWorkoutValidationFailure(t *testing.T) {
	handler := newTestHandler()

	w := sampleWorkout()
	w.Duration = 0
	req := authedRequest(t, http.MethodPost, "/v1/workouts", w, auth.ScopeWorkoutsWrite)
	rr := httptest.NewRecorder()
	handler.createWorkout(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["type"] != "validation_failed" {
		t.Fatalf("unexpected error type %q", resp["type"])
	}
	if resp["detail"] != "Duration must be a positive number" {
		t.Fatalf("unexpected detail %q", resp["detail"])
	}
}

func TestCreateWorkoutRequiresWriteScope(t *testing.T) {
	handler := newTestHandler()

	req := authedRequest(t, http.MethodPost, "/v1/workouts", sampleWorkout(), auth.ScopeWorkoutsRead)
	rr := httptest.NewRecorder()
	handler.createWorkout(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rr.Code)
	}
}

func TestCreateWorkoutRequiresClaims(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/workouts", bytes.NewBufferString("{}"))
	rr := httptest.NewRecorder()
	handler.createWorkout(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}

func TestGetWorkoutRoundTrip(t *testing.T) {
	handler := newTestHandler()

	createReq := authedRequest(t, http.MethodPost, "/v1/workouts", sampleWorkout(), auth.ScopeWorkoutsWrite)
	createRR := httptest.NewRecorder()
	handler.createWorkout(createRR, createReq)
	if createRR.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", createRR.Code)
	}

	req := authedRequest(t, http.MethodGet, "/v1/workouts/w-100", nil, auth.ScopeWorkoutsRead)
	rr := httptest.NewRecorder()
	handler.getWorkout(rr, req, "w-100")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var got domain.Workout
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode workout: %v", err)
	}
	if got.ID != "w-100" || got.Type != domain.ActivityRun {
		t.Fatalf("unexpected workout %+v", got)
	}
}

func TestGetWorkoutNotFound(t *testing.T) {
	handler := newTestHandler()

	req := authedRequest(t, http.MethodGet, "/v1/workouts/missing", nil, auth.ScopeWorkoutsRead)
	rr := httptest.NewRecorder()
	handler.getWorkout(rr, req, "missing")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestValidateWorkoutEndpoint(t *testing.T) {
	handler := newTestHandler()

	req := authedRequest(t, http.MethodPost, "/v1/workouts/validate", sampleWorkout(), auth.ScopeWorkoutsRead)
	rr := httptest.NewRecorder()
	handler.validateWorkout(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var result ValidationResult
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if !result.Valid || result.Error != "" {
		t.Fatalf("expected valid result, got %+v", result)
	}

	bad := sampleWorkout()
	bad.GPSPoints[0].Latitude = 120
	req = authedRequest(t, http.MethodPost, "/v1/workouts/validate", bad, auth.ScopeWorkoutsRead)
	rr = httptest.NewRecorder()
	handler.validateWorkout(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if result.Error != "Invalid GPS point at index 0: Latitude must be between -90 and 90" {
		t.Fatalf("unexpected error %q", result.Error)
	}
}

func TestTrackStatsEndpoint(t *testing.T) {
	handler := newTestHandler()
	start := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

	payload := TrackStatsRequest{
		Points: []domain.LocationPoint{
			{Latitude: 48.0, Longitude: 11.0, Timestamp: start, Accuracy: 5},
			{Latitude: 48.001, Longitude: 11.0, Timestamp: start.Add(10 * time.Second), Accuracy: 5},
			{Latitude: 48.002, Longitude: 11.0, Timestamp: start.Add(20 * time.Second), Accuracy: 5},
		},
		SegmentSize: 2,
	}

	req := authedRequest(t, http.MethodPost, "/v1/tracks/stats", payload, auth.ScopeWorkoutsRead)
	rr := httptest.NewRecorder()
	handler.trackStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp TrackStatsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Stats.PointCount != 3 {
		t.Fatalf("expected 3 points, got %d", resp.Stats.PointCount)
	}
	if resp.Stats.TotalDistance < 210 || resp.Stats.TotalDistance > 235 {
		t.Fatalf("unexpected distance %f", resp.Stats.TotalDistance)
	}
	if len(resp.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(resp.Segments))
	}
	sum := resp.Segments[0].TotalDistance + resp.Segments[1].TotalDistance
	if diff := sum - resp.Stats.TotalDistance; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("segment distances %f do not sum to total %f", sum, resp.Stats.TotalDistance)
	}
}

func TestTrackStatsRejectsUnorderedPoints(t *testing.T) {
	handler := newTestHandler()
	start := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

	payload := TrackStatsRequest{
		Points: []domain.LocationPoint{
			{Latitude: 48.0, Longitude: 11.0, Timestamp: start.Add(10 * time.Second), Accuracy: 5},
			{Latitude: 48.001, Longitude: 11.0, Timestamp: start, Accuracy: 5},
		},
	}

	req := authedRequest(t, http.MethodPost, "/v1/tracks/stats", payload, auth.ScopeWorkoutsRead)
	rr := httptest.NewRecorder()
	handler.trackStats(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rr.Code)
	}
}
