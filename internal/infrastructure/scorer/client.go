package scorer

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/matchup"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/resilience"
	"github.com/squaredcircle/fantasy-wrestling/internal/usecase"
)

// The event scorer is the upstream service that turns show results into
// per-owner point totals. This client implements matchup.PointsSource
// against its HTTP API.

const (
	defaultTimeout  = 15 * time.Second
	maxResponseSize = 2 << 20
	dateLayout      = "2006-01-02"
)

var errScorerTransient = crerr.New("scorer transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ matchup.PointsSource = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}
}

// PointsForOwners fetches per-owner totals for one scoring window.
// Identical in-flight windows share one request, and repeated transient
// failures open the breaker so a dead scorer fails fast.
func (c *Client) PointsForOwners(ctx context.Context, leagueID string, window matchup.WeekWindow) (map[string]int, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "scorer circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: event scorer is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	values.Set("from", window.Start.Format(dateLayout))
	values.Set("to", window.End.Format(dateLayout))
	fullURL := fmt.Sprintf("%s/v1/leagues/%s/owner-points?%s", c.baseURL, url.PathEscape(leagueID), values.Encode())

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errScorerTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	var decoded ownerPointsEnvelope
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode scorer payload: %w", err)
	}

	points := make(map[string]int, len(decoded.Data.Owners))
	for _, row := range decoded.Data.Owners {
		if row.OwnerID == "" {
			continue
		}
		points[row.OwnerID] += row.Points
	}

	return points, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errScorerTransient, "send request: %v", err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errScorerTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errScorerTransient, "scorer status=%d", resp.StatusCode)
			default:
				return nil, fmt.Errorf("scorer status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("scorer request failed")
	}
	c.logger.WarnContext(ctx, "scorer request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

type ownerPointsEnvelope struct {
	Data ownerPointsData `json:"data"`
}

type ownerPointsData struct {
	LeagueID string           `json:"league_id"`
	Owners   []ownerPointsRow `json:"owners"`
}

type ownerPointsRow struct {
	OwnerID string `json:"owner_id"`
	Points  int    `json:"points"`
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
