package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/trade"
	qb "github.com/squaredcircle/fantasy-wrestling/internal/platform/querybuilder"
)

type TradeRepository struct {
	db *sqlx.DB
}

func NewTradeRepository(db *sqlx.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

func (r *TradeRepository) CreateTrade(ctx context.Context, t trade.Trade) error {
	query, args, err := qb.InsertInto("trades").
		Columns("public_id", "league_public_id", "trade_date", "notes").
		Values(t.ID, t.LeagueID, t.TradeDate, stringToNullString(t.Notes)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert trade query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}

	return nil
}

func (r *TradeRepository) CreateLegs(ctx context.Context, tradeID string, legs []trade.Leg) error {
	if len(legs) == 0 {
		return nil
	}

	builder := qb.InsertInto("trade_legs").
		Columns("trade_public_id", "leg_index", "from_owner_id", "to_owner_id", "wrestler_public_id", "draft_pick_public_id")
	for i, leg := range legs {
		builder.Values(tradeID, i, leg.FromOwnerID, leg.ToOwnerID,
			stringToNullString(leg.WrestlerID), stringToNullString(leg.DraftPickID))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert trade legs query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert trade legs: %w", err)
	}

	return nil
}

// DeleteTrade is the compensating write for a failed leg insert. Legs
// cascade from the trade row.
func (r *TradeRepository) DeleteTrade(ctx context.Context, tradeID string) error {
	query, args, err := qb.DeleteFrom("trades").
		Where(qb.Eq("public_id", tradeID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete trade query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	return nil
}

func (r *TradeRepository) ListByLeague(ctx context.Context, leagueID string) ([]trade.Trade, error) {
	query, args, err := qb.Select("*").From("trades").
		Where(qb.Eq("league_public_id", leagueID)).
		OrderBy("trade_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select trades query: %w", err)
	}

	var rows []tradeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select trades: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	tradeIDs := make([]any, 0, len(rows))
	for _, row := range rows {
		tradeIDs = append(tradeIDs, row.PublicID)
	}

	legsQuery, legsArgs, err := qb.Select("*").From("trade_legs").
		Where(qb.In("trade_public_id", tradeIDs)).
		OrderBy("trade_public_id", "leg_index").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select trade legs query: %w", err)
	}

	var legRows []tradeLegTableModel
	if err := r.db.SelectContext(ctx, &legRows, legsQuery, legsArgs...); err != nil {
		return nil, fmt.Errorf("select trade legs: %w", err)
	}

	legsByTrade := make(map[string][]trade.Leg, len(rows))
	for _, row := range legRows {
		legsByTrade[row.TradePublicID] = append(legsByTrade[row.TradePublicID], row.toDomain())
	}

	out := make([]trade.Trade, 0, len(rows))
	for _, row := range rows {
		t := row.toDomain()
		t.Legs = legsByTrade[t.ID]
		out = append(out, t)
	}

	return out, nil
}
