package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/user"
	"github.com/squaredcircle/fantasy-wrestling/internal/infrastructure/repository/memory"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
	"github.com/squaredcircle/fantasy-wrestling/internal/usecase"
)

const testJobToken = "job-secret"

type mapVerifier struct {
	principals map[string]user.Principal
}

var _ TokenVerifier = (*mapVerifier)(nil)

func (v *mapVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	p, ok := v.principals[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: token is not active", usecase.ErrUnauthorized)
	}
	return p, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()

	// Seed leagues are rewound to a fixed past season so week windows
	// do not depend on the wall clock.
	leagues := memory.SeedLeagues()
	for i := range leagues {
		leagues[i].StartDate = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
		leagues[i].EndDate = time.Date(2025, time.January, 19, 0, 0, 0, 0, time.UTC)
		leagues[i].DraftDate = nil
	}
	events := []memory.ScoreEvent{
		{LeagueID: memory.LeagueIDMondayWarfare, OwnerID: "usr-duke", Date: time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC), Points: 20},
		{LeagueID: memory.LeagueIDMondayWarfare, OwnerID: "usr-mara", Date: time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC), Points: 15},
		{LeagueID: memory.LeagueIDMondayWarfare, OwnerID: "usr-duke", Date: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), Points: 10},
		{LeagueID: memory.LeagueIDMondayWarfare, OwnerID: "usr-mara", Date: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), Points: 27},
	}

	leagueRepo := memory.NewLeagueRepository(leagues, memory.SeedMembers())
	rosterRepo := memory.NewRosterRepository(nil)
	wrestlerRepo := memory.NewWrestlerRepository(memory.SeedWrestlers())
	orderRepo := memory.NewDraftOrderRepository()
	pickRepo := memory.NewPickAssetRepository(memory.SeedPickAssets())
	holdingRepo := memory.NewDiscoveryRepository(nil)
	tradeRepo := memory.NewTradeRepository()
	points := memory.NewPointsSource(events)

	leagueService := usecase.NewLeagueService(leagueRepo, rosterRepo, wrestlerRepo, logger)
	draftService := usecase.NewDraftService(leagueRepo, orderRepo, rosterRepo, wrestlerRepo, logger)
	discoveryService := usecase.NewDiscoveryService(holdingRepo, pickRepo, rosterRepo, wrestlerRepo, logger)
	tradeService := usecase.NewTradeService(tradeRepo, pickRepo, rosterRepo, leagueRepo, logger)
	matchupService := usecase.NewMatchupService(leagueRepo, points, logger)
	refreshService := usecase.NewStandingsRefreshService(leagueRepo, matchupService, 0, logger)

	handler := NewHandler(leagueService, draftService, discoveryService, tradeService, matchupService, refreshService, logger)

	verifier := &mapVerifier{principals: map[string]user.Principal{
		"tok-commissioner": {UserID: memory.SeededCommissionerID, DisplayName: "The Commissioner"},
		"tok-duke":         {UserID: "usr-duke", DisplayName: "Duke"},
	}}

	return NewRouter(handler, verifier, logger, []string{"*"}, testJobToken)
}

func doJSON(t *testing.T, router http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if rec.Body.Len() > 0 {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal response body: %v", err)
		}
	}
	return rec, envelope
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/healthz", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if got, _ := data["status"].(string); got != "ok" {
		t.Fatalf("unexpected health payload: %v", envelope)
	}
}

func TestRouter_DraftFlow(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/leagues/"+memory.LeagueIDMondayWarfare+"/draft/order", "tok-commissioner", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("generate order: expected status 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	entries, _ := envelope["data"].([]any)
	if len(entries) == 0 {
		t.Fatalf("expected draft order entries, got %v", envelope)
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDMondayWarfare+"/draft/turn", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get turn: expected status 200, got %d", rec.Code)
	}
	turn, _ := envelope["data"].(map[string]any)
	if active, _ := turn["active"].(bool); !active {
		t.Fatalf("expected an active draft turn, got %v", turn)
	}
	if got, _ := turn["overall_pick"].(float64); got != 1 {
		t.Fatalf("overall pick got=%v want=1", turn["overall_pick"])
	}
}

func TestRouter_DraftOrderRequiresCommissioner(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/leagues/"+memory.LeagueIDMondayWarfare+"/draft/order", "tok-duke", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_DiscoveryRedemption(t *testing.T) {
	router := newTestRouter(t)

	body := `{"draft_pick_id":"pck-0001","wrestler_name":"Kenta Blackwood","company":"NJPW"}`
	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/leagues/"+memory.LeagueIDMondayWarfare+"/discovery/redemptions", "tok-duke", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("redeem: expected status 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	data, _ := envelope["data"].(map[string]any)
	if got, _ := data["status"].(string); got != "rights_held" {
		t.Fatalf("holding status got=%q want=%q", got, "rights_held")
	}

	// The pick is consumed; a second redemption must conflict.
	rec, _ = doJSON(t, router, http.MethodPost, "/v1/leagues/"+memory.LeagueIDMondayWarfare+"/discovery/redemptions", "tok-duke", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("second redeem: expected status 409, got %d", rec.Code)
	}
}

func TestRouter_StandingsAndMatchups(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDMondayWarfare+"/standings", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("standings: expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	standings, _ := envelope["data"].([]any)
	if len(standings) == 0 {
		t.Fatalf("expected standings rows, got %v", envelope)
	}
	first, _ := standings[0].(map[string]any)
	if got, _ := first["owner_id"].(string); got != "usr-mara" {
		t.Fatalf("first place got=%q want=%q body=%s", got, "usr-mara", rec.Body.String())
	}
	if got, _ := first["total_points"].(float64); got != 62 {
		t.Fatalf("first place total got=%v want=62", first["total_points"])
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDMondayWarfare+"/matchups", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("matchups: expected status 200, got %d", rec.Code)
	}
	if weeks, _ := envelope["data"].([]any); len(weeks) == 0 {
		t.Fatalf("expected weekly results, got %v", envelope)
	}
}

func TestRouter_UnknownLeagueIs404(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodGet, "/v1/leagues/lg-nope/standings", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouter_RefreshStandingsJob(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/refresh-standings", strings.NewReader(`{"max_workers":2}`))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	data, _ := envelope["data"].(map[string]any)
	if got, _ := data["failed_count"].(float64); got != 0 {
		t.Fatalf("failed count got=%v want=0 body=%s", data["failed_count"], rec.Body.String())
	}
	if got, _ := data["league_count"].(float64); got != 2 {
		t.Fatalf("league count got=%v want=2", data["league_count"])
	}

	// Without the token the job route is rejected before any work runs.
	req = httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/refresh-standings", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}
