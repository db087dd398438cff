package httpapi

import (
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/discovery"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/draft"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/league"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/matchup"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/roster"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/trade"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/wrestler"
	"github.com/squaredcircle/fantasy-wrestling/internal/usecase"
)

const calendarDateLayout = "2006-01-02"

type leagueDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CommissionerID string `json:"commissioner_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	DraftDate      string `json:"draft_date,omitempty"`
	DraftStyle     string `json:"draft_style"`
	DraftStatus    string `json:"draft_status"`
	CurrentPick    *int   `json:"current_pick,omitempty"`
}

func leagueToDTO(v league.League) leagueDTO {
	dto := leagueDTO{
		ID:             v.ID,
		Name:           v.Name,
		CommissionerID: v.CommissionerID,
		StartDate:      v.StartDate.Format(calendarDateLayout),
		EndDate:        v.EndDate.Format(calendarDateLayout),
		DraftStyle:     string(v.DraftStyle),
		DraftStatus:    string(v.DraftStatus),
		CurrentPick:    v.CurrentPick,
	}
	if v.DraftDate != nil {
		dto.DraftDate = v.DraftDate.Format(calendarDateLayout)
	}
	return dto
}

func leaguesToDTO(items []league.League) []leagueDTO {
	dtos := make([]leagueDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, leagueToDTO(item))
	}
	return dtos
}

type draftOrderEntryDTO struct {
	OverallPick int    `json:"overall_pick"`
	Round       int    `json:"round"`
	PickInRound int    `json:"pick_in_round"`
	UserID      string `json:"user_id"`
}

func draftOrderToDTO(entries []draft.OrderEntry) []draftOrderEntryDTO {
	dtos := make([]draftOrderEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, draftOrderEntryDTO{
			OverallPick: entry.OverallPick,
			Round:       entry.Round,
			PickInRound: entry.PickInRound,
			UserID:      entry.UserID,
		})
	}
	return dtos
}

type currentTurnDTO struct {
	Active      bool   `json:"active"`
	OverallPick int    `json:"overall_pick,omitempty"`
	Round       int    `json:"round,omitempty"`
	PickInRound int    `json:"pick_in_round,omitempty"`
	UserID      string `json:"user_id,omitempty"`
}

type makePickResultDTO struct {
	OverallPick int    `json:"overall_pick"`
	PickerID    string `json:"picker_id"`
	WrestlerID  string `json:"wrestler_id"`
	DraftStatus string `json:"draft_status"`
	NextPick    *int   `json:"next_pick,omitempty"`
}

type holdingDTO struct {
	ID           string `json:"id"`
	LeagueID     string `json:"league_id"`
	OwnerID      string `json:"owner_id"`
	DraftPickID  string `json:"draft_pick_id"`
	WrestlerName string `json:"wrestler_name"`
	Company      string `json:"company,omitempty"`
	Status       string `json:"status"`
	DebutDate    string `json:"debut_date,omitempty"`
	Deadline     string `json:"activation_deadline,omitempty"`
	MonthsLeft   int    `json:"months_left"`
	ActivatedAt  string `json:"activated_at,omitempty"`
}

func holdingViewToDTO(v usecase.HoldingView) holdingDTO {
	dto := holdingDTO{
		ID:           v.Holding.ID,
		LeagueID:     v.Holding.LeagueID,
		OwnerID:      v.Holding.OwnerID,
		DraftPickID:  v.Holding.DraftPickID,
		WrestlerName: v.Holding.WrestlerName,
		Company:      v.Holding.Company,
		Status:       string(v.Status),
		MonthsLeft:   v.MonthsLeft,
	}
	if v.Holding.DebutDate != nil {
		dto.DebutDate = v.Holding.DebutDate.Format(calendarDateLayout)
	}
	if v.Deadline != nil {
		dto.Deadline = v.Deadline.Format(calendarDateLayout)
	}
	if v.Holding.ActivatedAt != nil {
		dto.ActivatedAt = v.Holding.ActivatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func holdingToDTO(v discovery.Holding, at time.Time) holdingDTO {
	view := usecase.HoldingView{
		Holding:    v,
		Status:     v.StatusAt(at),
		MonthsLeft: v.MonthsLeftAt(at),
	}
	if deadline, ok := v.Deadline(); ok {
		view.Deadline = &deadline
	}
	return holdingViewToDTO(view)
}

type rosterAssignmentDTO struct {
	LeagueID       string `json:"league_id"`
	OwnerID        string `json:"owner_id"`
	WrestlerID     string `json:"wrestler_id"`
	ContractLength *int   `json:"contract_length,omitempty"`
}

func rosterAssignmentToDTO(v roster.Assignment) rosterAssignmentDTO {
	return rosterAssignmentDTO{
		LeagueID:       v.LeagueID,
		OwnerID:        v.OwnerID,
		WrestlerID:     v.WrestlerID,
		ContractLength: v.ContractLength,
	}
}

type wrestlerDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Company string `json:"company,omitempty"`
	Gender  string `json:"gender,omitempty"`
}

func wrestlerToDTO(v wrestler.Wrestler) wrestlerDTO {
	return wrestlerDTO{
		ID:      v.ID,
		Name:    v.Name,
		Slug:    v.Slug,
		Company: v.Company,
		Gender:  string(v.Gender),
	}
}

type tradeLegDTO struct {
	FromOwnerID string `json:"from_owner_id"`
	ToOwnerID   string `json:"to_owner_id"`
	WrestlerID  string `json:"wrestler_id,omitempty"`
	DraftPickID string `json:"draft_pick_id,omitempty"`
}

type tradeDTO struct {
	ID        string        `json:"id"`
	LeagueID  string        `json:"league_id"`
	TradeDate string        `json:"trade_date"`
	Notes     string        `json:"notes,omitempty"`
	Legs      []tradeLegDTO `json:"legs"`
}

func tradeToDTO(v trade.Trade) tradeDTO {
	legs := make([]tradeLegDTO, 0, len(v.Legs))
	for _, leg := range v.Legs {
		legs = append(legs, tradeLegDTO{
			FromOwnerID: leg.FromOwnerID,
			ToOwnerID:   leg.ToOwnerID,
			WrestlerID:  leg.WrestlerID,
			DraftPickID: leg.DraftPickID,
		})
	}
	return tradeDTO{
		ID:        v.ID,
		LeagueID:  v.LeagueID,
		TradeDate: v.TradeDate.UTC().Format(time.RFC3339),
		Notes:     v.Notes,
		Legs:      legs,
	}
}

type tradeLegReportDTO struct {
	Index   int    `json:"index"`
	Applied bool   `json:"applied"`
	Message string `json:"message,omitempty"`
}

type tradeResultDTO struct {
	Trade      tradeDTO            `json:"trade"`
	Reports    []tradeLegReportDTO `json:"leg_reports"`
	AllApplied bool                `json:"all_applied"`
}

func tradeResultToDTO(v usecase.TradeResult) tradeResultDTO {
	reports := make([]tradeLegReportDTO, 0, len(v.Reports))
	for _, report := range v.Reports {
		reports = append(reports, tradeLegReportDTO{
			Index:   report.Index,
			Applied: report.Applied,
			Message: report.Message,
		})
	}
	return tradeResultDTO{
		Trade:      tradeToDTO(v.Trade),
		Reports:    reports,
		AllApplied: v.AllApplied,
	}
}

type weeklyResultDTO struct {
	WeekStart      string         `json:"week_start"`
	WeekEnd        string         `json:"week_end"`
	PointsByOwner  map[string]int `json:"points_by_owner"`
	WinnerID       string         `json:"winner_id,omitempty"`
	BeltHolderID   string         `json:"belt_holder_id,omitempty"`
	BeltRetained   bool           `json:"belt_retained"`
	WeeklyWinBonus int            `json:"weekly_win_bonus"`
	BeltBonus      int            `json:"belt_bonus"`
}

func weeklyResultsToDTO(results []matchup.WeeklyResult) []weeklyResultDTO {
	dtos := make([]weeklyResultDTO, 0, len(results))
	for _, result := range results {
		dtos = append(dtos, weeklyResultDTO{
			WeekStart:      result.Week.Start.Format(calendarDateLayout),
			WeekEnd:        result.Week.End.Format(calendarDateLayout),
			PointsByOwner:  result.PointsByOwner,
			WinnerID:       result.WinnerID,
			BeltHolderID:   result.BeltHolderID,
			BeltRetained:   result.BeltRetained,
			WeeklyWinBonus: result.WeeklyWinBonus,
			BeltBonus:      result.BeltBonus,
		})
	}
	return dtos
}

type ownerStandingDTO struct {
	Rank        int    `json:"rank"`
	OwnerID     string `json:"owner_id"`
	BasePoints  int    `json:"base_points"`
	BonusPoints int    `json:"bonus_points"`
	TotalPoints int    `json:"total_points"`
}

func standingsToDTO(standings []matchup.OwnerStanding) []ownerStandingDTO {
	dtos := make([]ownerStandingDTO, 0, len(standings))
	for i, standing := range standings {
		dtos = append(dtos, ownerStandingDTO{
			Rank:        i + 1,
			OwnerID:     standing.OwnerID,
			BasePoints:  standing.BasePoints,
			BonusPoints: standing.BonusPoints,
			TotalPoints: standing.TotalPoints,
		})
	}
	return dtos
}

type refreshTaskResultDTO struct {
	LeagueID   string `json:"league_id"`
	Owners     int    `json:"owners"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type refreshResultDTO struct {
	LeagueCount  int                    `json:"league_count"`
	WorkerCount  int                    `json:"worker_count"`
	SuccessCount int                    `json:"success_count"`
	FailedCount  int                    `json:"failed_count"`
	Tasks        []refreshTaskResultDTO `json:"tasks"`
}

func refreshResultToDTO(v usecase.RefreshResult) refreshResultDTO {
	tasks := make([]refreshTaskResultDTO, 0, len(v.Tasks))
	for _, task := range v.Tasks {
		tasks = append(tasks, refreshTaskResultDTO{
			LeagueID:   task.LeagueID,
			Owners:     task.Owners,
			Status:     task.Status,
			Message:    task.Message,
			DurationMs: task.DurationMs,
		})
	}
	return refreshResultDTO{
		LeagueCount:  v.LeagueCount,
		WorkerCount:  v.WorkerCount,
		SuccessCount: v.SuccessCount,
		FailedCount:  v.FailedCount,
		Tasks:        tasks,
	}
}
