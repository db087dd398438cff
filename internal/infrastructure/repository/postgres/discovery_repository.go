package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/discovery"
	qb "github.com/squaredcircle/fantasy-wrestling/internal/platform/querybuilder"
)

type DiscoveryRepository struct {
	db *sqlx.DB
}

func NewDiscoveryRepository(db *sqlx.DB) *DiscoveryRepository {
	return &DiscoveryRepository{db: db}
}

func (r *DiscoveryRepository) Create(ctx context.Context, holding discovery.Holding) error {
	query, args, err := qb.InsertInto("discovery_holdings").
		Columns("public_id", "league_public_id", "owner_id", "draft_pick_public_id", "wrestler_name", "company").
		Values(holding.ID, holding.LeagueID, holding.OwnerID, holding.DraftPickID, holding.WrestlerName, stringToNullString(holding.Company)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert holding query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert holding: %w", err)
	}

	return nil
}

func (r *DiscoveryRepository) Delete(ctx context.Context, holdingID string) error {
	query, args, err := qb.DeleteFrom("discovery_holdings").
		Where(qb.Eq("public_id", holdingID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete holding query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete holding: %w", err)
	}

	return nil
}

func (r *DiscoveryRepository) GetByID(ctx context.Context, holdingID string) (discovery.Holding, bool, error) {
	query, args, err := qb.Select("*").From("discovery_holdings").
		Where(qb.Eq("public_id", holdingID)).
		ToSQL()
	if err != nil {
		return discovery.Holding{}, false, fmt.Errorf("build get holding query: %w", err)
	}

	var row discoveryHoldingTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return discovery.Holding{}, false, nil
		}
		return discovery.Holding{}, false, fmt.Errorf("get holding: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *DiscoveryRepository) SetDebutDate(ctx context.Context, holdingID string, debut time.Time) (bool, error) {
	const query = `
UPDATE discovery_holdings
SET debut_date = $1
WHERE public_id = $2
  AND activated_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, debut, holdingID)
	if err != nil {
		return false, fmt.Errorf("set debut date: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set debut date rows affected: %w", err)
	}

	return affected > 0, nil
}

// MarkActivated carries the not-yet-activated guard in the WHERE clause
// so of two racing activations only one sees a row affected.
func (r *DiscoveryRepository) MarkActivated(ctx context.Context, holdingID string, activatedAt time.Time) (bool, error) {
	const query = `
UPDATE discovery_holdings
SET activated_at = $1
WHERE public_id = $2
  AND activated_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, activatedAt, holdingID)
	if err != nil {
		return false, fmt.Errorf("mark holding activated: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark holding activated rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *DiscoveryRepository) ListByOwner(ctx context.Context, leagueID, ownerID string) ([]discovery.Holding, error) {
	query, args, err := qb.Select("*").From("discovery_holdings").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("owner_id", ownerID),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select holdings query: %w", err)
	}

	var rows []discoveryHoldingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select holdings: %w", err)
	}

	out := make([]discovery.Holding, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
