package postgres

import (
	"database/sql"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/discovery"
)

type discoveryHoldingTableModel struct {
	ID                int64          `db:"id"`
	PublicID          string         `db:"public_id"`
	LeaguePublicID    string         `db:"league_public_id"`
	OwnerID           string         `db:"owner_id"`
	DraftPickPublicID string         `db:"draft_pick_public_id"`
	WrestlerName      string         `db:"wrestler_name"`
	Company           sql.NullString `db:"company"`
	DebutDate         sql.NullTime   `db:"debut_date"`
	ActivatedAt       sql.NullTime   `db:"activated_at"`
}

func (m discoveryHoldingTableModel) toDomain() discovery.Holding {
	return discovery.Holding{
		ID:           m.PublicID,
		LeagueID:     m.LeaguePublicID,
		OwnerID:      m.OwnerID,
		DraftPickID:  m.DraftPickPublicID,
		WrestlerName: m.WrestlerName,
		Company:      nullStringToString(m.Company),
		DebutDate:    nullTimeToPtr(m.DebutDate),
		ActivatedAt:  nullTimeToPtr(m.ActivatedAt),
	}
}
