package postgres

import (
	"database/sql"
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/league"
)

type leagueTableModel struct {
	ID             int64         `db:"id"`
	PublicID       string        `db:"public_id"`
	Name           string        `db:"name"`
	CommissionerID string        `db:"commissioner_id"`
	StartDate      time.Time     `db:"start_date"`
	EndDate        time.Time     `db:"end_date"`
	DraftDate      sql.NullTime  `db:"draft_date"`
	DraftStyle     string        `db:"draft_style"`
	DraftStatus    string        `db:"draft_status"`
	CurrentPick    sql.NullInt64 `db:"current_pick"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
	DeletedAt      *time.Time    `db:"deleted_at"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:             m.PublicID,
		Name:           m.Name,
		CommissionerID: m.CommissionerID,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		DraftDate:      nullTimeToPtr(m.DraftDate),
		DraftStyle:     league.DraftStyle(m.DraftStyle),
		DraftStatus:    league.DraftStatus(m.DraftStatus),
		CurrentPick:    nullInt64ToIntPtr(m.CurrentPick),
	}
}

type leagueMemberTableModel struct {
	ID             int64  `db:"id"`
	LeaguePublicID string `db:"league_public_id"`
	UserID         string `db:"user_id"`
	Role           string `db:"role"`
}

func (m leagueMemberTableModel) toDomain() league.Member {
	return league.Member{
		LeagueID: m.LeaguePublicID,
		UserID:   m.UserID,
		Role:     league.Role(m.Role),
	}
}
