package postgres

import (
	"database/sql"
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/trade"
)

type tradeTableModel struct {
	ID             int64          `db:"id"`
	PublicID       string         `db:"public_id"`
	LeaguePublicID string         `db:"league_public_id"`
	TradeDate      time.Time      `db:"trade_date"`
	Notes          sql.NullString `db:"notes"`
}

func (m tradeTableModel) toDomain() trade.Trade {
	return trade.Trade{
		ID:        m.PublicID,
		LeagueID:  m.LeaguePublicID,
		TradeDate: m.TradeDate,
		Notes:     nullStringToString(m.Notes),
	}
}

type tradeLegTableModel struct {
	ID                int64          `db:"id"`
	TradePublicID     string         `db:"trade_public_id"`
	LegIndex          int            `db:"leg_index"`
	FromOwnerID       string         `db:"from_owner_id"`
	ToOwnerID         string         `db:"to_owner_id"`
	WrestlerPublicID  sql.NullString `db:"wrestler_public_id"`
	DraftPickPublicID sql.NullString `db:"draft_pick_public_id"`
}

func (m tradeLegTableModel) toDomain() trade.Leg {
	return trade.Leg{
		TradeID:     m.TradePublicID,
		FromOwnerID: m.FromOwnerID,
		ToOwnerID:   m.ToOwnerID,
		WrestlerID:  nullStringToString(m.WrestlerPublicID),
		DraftPickID: nullStringToString(m.DraftPickPublicID),
	}
}
