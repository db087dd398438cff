package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/wrestler"
	qb "github.com/squaredcircle/fantasy-wrestling/internal/platform/querybuilder"
)

type wrestlerTableModel struct {
	ID       int64  `db:"id"`
	PublicID string `db:"public_id"`
	Name     string `db:"name"`
	Slug     string `db:"slug"`
	Company  string `db:"company"`
	Gender   string `db:"gender"`
}

func (m wrestlerTableModel) toDomain() wrestler.Wrestler {
	return wrestler.Wrestler{
		ID:      m.PublicID,
		Name:    m.Name,
		Slug:    m.Slug,
		Company: m.Company,
		Gender:  wrestler.Gender(m.Gender),
	}
}

type WrestlerRepository struct {
	db *sqlx.DB
}

func NewWrestlerRepository(db *sqlx.DB) *WrestlerRepository {
	return &WrestlerRepository{db: db}
}

func (r *WrestlerRepository) List(ctx context.Context) ([]wrestler.Wrestler, error) {
	query, args, err := qb.Select("*").From("wrestlers").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select wrestlers query: %w", err)
	}

	var rows []wrestlerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select wrestlers: %w", err)
	}

	out := make([]wrestler.Wrestler, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *WrestlerRepository) GetByID(ctx context.Context, wrestlerID string) (wrestler.Wrestler, bool, error) {
	return r.get(ctx, qb.Eq("public_id", wrestlerID))
}

func (r *WrestlerRepository) GetBySlug(ctx context.Context, slug string) (wrestler.Wrestler, bool, error) {
	return r.get(ctx, qb.Eq("slug", slug))
}

func (r *WrestlerRepository) get(ctx context.Context, condition qb.Condition) (wrestler.Wrestler, bool, error) {
	query, args, err := qb.Select("*").From("wrestlers").
		Where(condition).
		ToSQL()
	if err != nil {
		return wrestler.Wrestler{}, false, fmt.Errorf("build get wrestler query: %w", err)
	}

	var row wrestlerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return wrestler.Wrestler{}, false, nil
		}
		return wrestler.Wrestler{}, false, fmt.Errorf("get wrestler: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *WrestlerRepository) Create(ctx context.Context, w wrestler.Wrestler) error {
	query, args, err := qb.InsertInto("wrestlers").
		Columns("public_id", "name", "slug", "company", "gender").
		Values(w.ID, w.Name, w.Slug, w.Company, string(w.Gender)).
		Suffix(`ON CONFLICT (slug) DO NOTHING`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert wrestler query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert wrestler: %w", err)
	}

	return nil
}
