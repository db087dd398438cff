package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/roster"
	qb "github.com/squaredcircle/fantasy-wrestling/internal/platform/querybuilder"
)

// pgUniqueViolation is the class 23 code raised when an insert hits
// the (league, wrestler) uniqueness constraint.
const pgUniqueViolation = "23505"

type rosterTableModel struct {
	ID               int64         `db:"id"`
	LeaguePublicID   string        `db:"league_public_id"`
	OwnerID          string        `db:"owner_id"`
	WrestlerPublicID string        `db:"wrestler_public_id"`
	ContractLength   sql.NullInt64 `db:"contract_length"`
}

func (m rosterTableModel) toDomain() roster.Assignment {
	return roster.Assignment{
		LeagueID:       m.LeaguePublicID,
		OwnerID:        m.OwnerID,
		WrestlerID:     m.WrestlerPublicID,
		ContractLength: nullInt64ToIntPtr(m.ContractLength),
	}
}

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// Create maps the uniqueness constraint to the domain error so racing
// draft picks of the same wrestler fail closed.
func (r *RosterRepository) Create(ctx context.Context, a roster.Assignment) error {
	query, args, err := qb.InsertInto("roster_assignments").
		Columns("league_public_id", "owner_id", "wrestler_public_id", "contract_length").
		Values(a.LeagueID, a.OwnerID, a.WrestlerID, intPtrToNullInt64(a.ContractLength)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert roster assignment query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return fmt.Errorf("%w: wrestler=%s league=%s", roster.ErrAlreadyRostered, a.WrestlerID, a.LeagueID)
		}
		return fmt.Errorf("insert roster assignment: %w", err)
	}

	return nil
}

func (r *RosterRepository) Upsert(ctx context.Context, a roster.Assignment) error {
	query, args, err := qb.InsertInto("roster_assignments").
		Columns("league_public_id", "owner_id", "wrestler_public_id", "contract_length").
		Values(a.LeagueID, a.OwnerID, a.WrestlerID, intPtrToNullInt64(a.ContractLength)).
		Suffix(`ON CONFLICT (league_public_id, wrestler_public_id)
DO UPDATE SET owner_id = EXCLUDED.owner_id, contract_length = EXCLUDED.contract_length`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert roster assignment query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert roster assignment: %w", err)
	}

	return nil
}

func (r *RosterRepository) Delete(ctx context.Context, leagueID, ownerID, wrestlerID string) (bool, error) {
	query, args, err := qb.DeleteFrom("roster_assignments").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("owner_id", ownerID),
			qb.Eq("wrestler_public_id", wrestlerID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete roster assignment query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete roster assignment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete roster assignment rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *RosterRepository) Get(ctx context.Context, leagueID, wrestlerID string) (roster.Assignment, bool, error) {
	query, args, err := qb.Select("*").From("roster_assignments").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("wrestler_public_id", wrestlerID),
		).
		ToSQL()
	if err != nil {
		return roster.Assignment{}, false, fmt.Errorf("build get roster assignment query: %w", err)
	}

	var row rosterTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Assignment{}, false, nil
		}
		return roster.Assignment{}, false, fmt.Errorf("get roster assignment: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *RosterRepository) ListByLeague(ctx context.Context, leagueID string) ([]roster.Assignment, error) {
	return r.list(ctx, qb.Eq("league_public_id", leagueID))
}

func (r *RosterRepository) ListByOwner(ctx context.Context, leagueID, ownerID string) ([]roster.Assignment, error) {
	return r.list(ctx, qb.Eq("league_public_id", leagueID), qb.Eq("owner_id", ownerID))
}

func (r *RosterRepository) list(ctx context.Context, conditions ...qb.Condition) ([]roster.Assignment, error) {
	query, args, err := qb.Select("*").From("roster_assignments").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roster assignments query: %w", err)
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roster assignments: %w", err)
	}

	out := make([]roster.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
