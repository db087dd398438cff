package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/draft"
	qb "github.com/squaredcircle/fantasy-wrestling/internal/platform/querybuilder"
)

type DraftOrderRepository struct {
	db *sqlx.DB
}

func NewDraftOrderRepository(db *sqlx.DB) *DraftOrderRepository {
	return &DraftOrderRepository{db: db}
}

func (r *DraftOrderRepository) DeleteByLeague(ctx context.Context, leagueID string) error {
	query, args, err := qb.DeleteFrom("draft_order_entries").
		Where(qb.Eq("league_public_id", leagueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete draft order query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete draft order: %w", err)
	}

	return nil
}

func (r *DraftOrderRepository) InsertEntries(ctx context.Context, entries []draft.OrderEntry) error {
	if len(entries) == 0 {
		return nil
	}

	builder := qb.InsertInto("draft_order_entries").
		Columns("league_public_id", "overall_pick", "round", "pick_in_round", "user_id")
	for _, e := range entries {
		builder.Values(e.LeagueID, e.OverallPick, e.Round, e.PickInRound, e.UserID)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert draft order query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert draft order entries: %w", err)
	}

	return nil
}

func (r *DraftOrderRepository) GetByOverallPick(ctx context.Context, leagueID string, overallPick int) (draft.OrderEntry, bool, error) {
	query, args, err := qb.Select("*").From("draft_order_entries").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("overall_pick", overallPick),
		).
		ToSQL()
	if err != nil {
		return draft.OrderEntry{}, false, fmt.Errorf("build get draft order entry query: %w", err)
	}

	var row draftOrderTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.OrderEntry{}, false, nil
		}
		return draft.OrderEntry{}, false, fmt.Errorf("get draft order entry: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *DraftOrderRepository) CountByLeague(ctx context.Context, leagueID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("draft_order_entries").
		Where(qb.Eq("league_public_id", leagueID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count draft order query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count draft order entries: %w", err)
	}

	return count, nil
}

func (r *DraftOrderRepository) ListByLeague(ctx context.Context, leagueID string) ([]draft.OrderEntry, error) {
	query, args, err := qb.Select("*").From("draft_order_entries").
		Where(qb.Eq("league_public_id", leagueID)).
		OrderBy("overall_pick").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select draft order query: %w", err)
	}

	var rows []draftOrderTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select draft order entries: %w", err)
	}

	out := make([]draft.OrderEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

type PickAssetRepository struct {
	db *sqlx.DB
}

func NewPickAssetRepository(db *sqlx.DB) *PickAssetRepository {
	return &PickAssetRepository{db: db}
}

func (r *PickAssetRepository) GetByID(ctx context.Context, pickID string) (draft.PickAsset, bool, error) {
	query, args, err := qb.Select("*").From("draft_pick_assets").
		Where(qb.Eq("public_id", pickID)).
		ToSQL()
	if err != nil {
		return draft.PickAsset{}, false, fmt.Errorf("build get pick asset query: %w", err)
	}

	var row pickAssetTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.PickAsset{}, false, nil
		}
		return draft.PickAsset{}, false, fmt.Errorf("get pick asset: %w", err)
	}

	return row.toDomain(), true, nil
}

// MarkUsed carries the unused guard in the WHERE clause so the update
// is atomic: of two racing redemptions only one sees a row affected.
func (r *PickAssetRepository) MarkUsed(ctx context.Context, pickID string, usedAt time.Time) (bool, error) {
	const query = `
UPDATE draft_pick_assets
SET used_at = $1
WHERE public_id = $2
  AND used_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, usedAt, pickID)
	if err != nil {
		return false, fmt.Errorf("mark pick used: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark pick used rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *PickAssetRepository) UpdateOwner(ctx context.Context, pickID, ownerID string) error {
	query, args, err := qb.Update("draft_pick_assets").
		Set("current_owner_id", ownerID).
		Where(qb.Eq("public_id", pickID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update pick owner query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update pick owner: %w", err)
	}

	return nil
}

func (r *PickAssetRepository) ListByLeague(ctx context.Context, leagueID string) ([]draft.PickAsset, error) {
	query, args, err := qb.Select("*").From("draft_pick_assets").
		Where(qb.Eq("league_public_id", leagueID)).
		OrderBy("season", "pick_type", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select pick assets query: %w", err)
	}

	var rows []pickAssetTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select pick assets: %w", err)
	}

	out := make([]draft.PickAsset, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
