package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "owner_id").
		From("roster_assignments").
		Where(
			Eq("league_id", "league-1"),
			IsNull("deleted_at"),
		).
		OrderBy("owner_id").
		Limit(5).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT id, owner_id FROM roster_assignments WHERE league_id = $1 AND deleted_at IS NULL ORDER BY owner_id LIMIT 5", query)
	require.Equal(t, []any{"league-1"}, args)
}

func TestSelectBuilder_InAndNotNull(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").
		From("draft_pick_assets").
		Where(
			In("current_owner_id", []any{"a", "b"}),
			IsNotNull("used_at"),
		).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT * FROM draft_pick_assets WHERE current_owner_id IN ($1, $2) AND used_at IS NOT NULL", query)
	require.Equal(t, []any{"a", "b"}, args)
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("trades").Where(In("id", nil)).ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT * FROM trades WHERE 1=0", query)
	require.Empty(t, args)
}

func TestInsertBuilder_MultiRowWithSuffix(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("draft_order_entries").
		Columns("league_id", "overall_pick").
		Values("league-1", 1).
		Values("league-1", 2).
		Suffix("ON CONFLICT (league_id, overall_pick) DO NOTHING").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO draft_order_entries (league_id, overall_pick) VALUES ($1, $2), ($3, $4) ON CONFLICT (league_id, overall_pick) DO NOTHING", query)
	require.Equal(t, []any{"league-1", 1, "league-1", 2}, args)
}

func TestInsertBuilder_SuffixArgs(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("roster_assignments").
		Columns("league_id", "owner_id").
		Values("league-1", "owner-1").
		Suffix("ON CONFLICT (league_id, owner_id) DO UPDATE SET contract_length = ?", 3).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO roster_assignments (league_id, owner_id) VALUES ($1, $2) ON CONFLICT (league_id, owner_id) DO UPDATE SET contract_length = $3", query)
	require.Equal(t, []any{"league-1", "owner-1", 3}, args)
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Update("leagues").
		Set("draft_status", "completed").
		Set("current_pick", nil).
		Where(Eq("public_id", "league-1")).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "UPDATE leagues SET draft_status = $1, current_pick = $2 WHERE public_id = $3", query)
	require.Equal(t, []any{"completed", nil, "league-1"}, args)
}

func TestDeleteBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := DeleteFrom("draft_order_entries").
		Where(Eq("league_id", "league-1")).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM draft_order_entries WHERE league_id = $1", query)
	require.Equal(t, []any{"league-1"}, args)
}

func TestDeleteBuilder_RequiresConditions(t *testing.T) {
	t.Parallel()

	_, _, err := DeleteFrom("trades").ToSQL()
	require.Error(t, err)
}

func TestInsertBuilder_RowArityMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("trades").
		Columns("id", "league_id").
		Values("only-one").
		ToSQL()
	require.Error(t, err)
}
