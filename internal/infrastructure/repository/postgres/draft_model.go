package postgres

import (
	"database/sql"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/draft"
)

type draftOrderTableModel struct {
	ID             int64  `db:"id"`
	LeaguePublicID string `db:"league_public_id"`
	OverallPick    int    `db:"overall_pick"`
	Round          int    `db:"round"`
	PickInRound    int    `db:"pick_in_round"`
	UserID         string `db:"user_id"`
}

func (m draftOrderTableModel) toDomain() draft.OrderEntry {
	return draft.OrderEntry{
		LeagueID:    m.LeaguePublicID,
		OverallPick: m.OverallPick,
		Round:       m.Round,
		PickInRound: m.PickInRound,
		UserID:      m.UserID,
	}
}

type pickAssetTableModel struct {
	ID              int64         `db:"id"`
	PublicID        string        `db:"public_id"`
	LeaguePublicID  string        `db:"league_public_id"`
	Season          int           `db:"season"`
	PickType        string        `db:"pick_type"`
	RoundNumber     sql.NullInt64 `db:"round_number"`
	DiscoveryNumber sql.NullInt64 `db:"discovery_number"`
	OriginalOwnerID string        `db:"original_owner_id"`
	CurrentOwnerID  string        `db:"current_owner_id"`
	ContractYears   sql.NullInt64 `db:"contract_years"`
	UsedAt          sql.NullTime  `db:"used_at"`
}

func (m pickAssetTableModel) toDomain() draft.PickAsset {
	return draft.PickAsset{
		ID:              m.PublicID,
		LeagueID:        m.LeaguePublicID,
		Season:          m.Season,
		PickType:        draft.PickType(m.PickType),
		RoundNumber:     nullInt64ToIntPtr(m.RoundNumber),
		DiscoveryNumber: nullInt64ToIntPtr(m.DiscoveryNumber),
		OriginalOwnerID: m.OriginalOwnerID,
		CurrentOwnerID:  m.CurrentOwnerID,
		ContractYears:   nullInt64ToIntPtr(m.ContractYears),
		UsedAt:          nullTimeToPtr(m.UsedAt),
	}
}
