package scorer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/matchup"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/resilience"
	"github.com/squaredcircle/fantasy-wrestling/internal/usecase"
)

func testWindow() matchup.WeekWindow {
	return matchup.WeekWindow{
		Start: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC),
	}
}

func TestPointsForOwnersParsesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/leagues/lg-1/owner-points" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("from"); got != "2026-01-05" {
			t.Fatalf("unexpected from: %s", got)
		}
		if got := r.URL.Query().Get("to"); got != "2026-01-11" {
			t.Fatalf("unexpected to: %s", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer scorer-key" {
			t.Fatalf("unexpected authorization header: %s", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"league_id":"lg-1","owners":[{"owner_id":"usr-duke","points":22},{"owner_id":"usr-mara","points":18}]}}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		APIKey:     "scorer-key",
		Logger:     logging.NewNop(),
	})

	points, err := client.PointsForOwners(context.Background(), "lg-1", testWindow())
	if err != nil {
		t.Fatalf("PointsForOwners() error = %v", err)
	}
	if points["usr-duke"] != 22 || points["usr-mara"] != 18 {
		t.Fatalf("points = %v", points)
	}
}

func TestPointsForOwnersRetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"owners":[{"owner_id":"usr-duke","points":5}]}}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		MaxRetries: 2,
		Logger:     logging.NewNop(),
	})

	points, err := client.PointsForOwners(context.Background(), "lg-1", testWindow())
	if err != nil {
		t.Fatalf("PointsForOwners() error = %v", err)
	}
	if points["usr-duke"] != 5 {
		t.Fatalf("points = %v", points)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", calls.Load())
	}
}

func TestPointsForOwnersDoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"unknown league"}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		MaxRetries: 3,
		Logger:     logging.NewNop(),
	})

	_, err := client.PointsForOwners(context.Background(), "lg-unknown", testWindow())
	if err == nil {
		t.Fatal("PointsForOwners() error = nil, want status failure")
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1 without retries", calls.Load())
	}
}

func TestPointsForOwnersOpenBreakerFailsFast(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 2; i++ {
		if _, err := client.PointsForOwners(context.Background(), "lg-1", testWindow()); err == nil {
			t.Fatalf("request %d error = nil, want failure", i)
		}
	}
	served := calls.Load()

	_, err := client.PointsForOwners(context.Background(), "lg-1", testWindow())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("PointsForOwners() error = %v, want ErrDependencyUnavailable", err)
	}
	if calls.Load() != served {
		t.Fatal("open breaker still sent a request")
	}
}
