package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "github.com/adokuru/affordaily-api/infras/otel/mocks"
	"github.com/adokuru/affordaily-api/shared/dto"
)

type capturingExec struct {
	query string
	arg   any
}

func (c *capturingExec) NamedExecContext(_ context.Context, query string, arg interface{}) (sql.Result, error) {
	c.query = query
	c.arg = arg

	return staticResult{rows: 1}, nil
}

type staticResult struct {
	rows int64
}

func (r staticResult) LastInsertId() (int64, error) { return 0, nil }
func (r staticResult) RowsAffected() (int64, error) { return r.rows, nil }

type statusRow struct {
	ID       string `db:"id"`
	Status   string `db:"status"`
	IsActive bool   `db:"is_active"`
}

func newStatusRepo() Repository[statusRow] {
	return Repository[statusRow]{
		otel:    otelMocks.NewOtel(),
		table:   "bookings",
		entitas: "booking",
	}
}

func TestUpdate_FilterOnUpdatedColumn(t *testing.T) {
	t.Run("keeps the WHERE binding when the same column is set", func(t *testing.T) {
		exec := &capturingExec{}
		repo := newStatusRepo()

		mod := map[string]any{"status": "pending_checkout"}
		filter := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "status", Value: "active", Operator: dto.FilterOperatorEq},
			},
		}

		affected, err := repo.update(context.Background(), exec, mod, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		args, ok := exec.arg.(map[string]any)
		require.True(t, ok)

		assert.Equal(t, "active", args["status"])
		assert.Equal(t, "pending_checkout", args["set_status"])
		assert.Contains(t, exec.query, "SET status = :set_status")
		assert.Contains(t, exec.query, "status = :status")
	})

	t.Run("deactivation keeps targeting active rows", func(t *testing.T) {
		exec := &capturingExec{}
		repo := newStatusRepo()

		mod := map[string]any{"is_active": false}
		filter := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq},
			},
		}

		_, err := repo.update(context.Background(), exec, mod, filter)
		require.NoError(t, err)

		args, ok := exec.arg.(map[string]any)
		require.True(t, ok)

		assert.Equal(t, true, args["is_active"])
		assert.Equal(t, false, args["set_is_active"])
	})
}
