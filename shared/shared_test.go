package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adokuru/affordaily-api/shared"
	"github.com/adokuru/affordaily-api/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "zero limit", total: 5, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	val := shared.ConvertStringToBool("true")
	if assert.NotNil(t, val) {
		assert.True(t, *val)
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		PayerName string `db:"payer_name"`
		Amount    int64  `db:"amount"`
		Skipped   string
	}

	fields := shared.TransformFields(update{PayerName: "Ada", Amount: 300}, "staff-1")

	assert.Equal(t, "Ada", fields["payer_name"])
	assert.Equal(t, int64(300), fields["amount"])
	assert.Equal(t, "staff-1", fields["modified_by"])
	assert.Contains(t, fields, "modified_at")
	assert.NotContains(t, fields, "Skipped")
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("b-1", "id", "bookings")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "b-1"}, args)
}

func TestBuildCacheKeyWithQuery_Deterministic(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "active", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "room_id", Value: "r-9", Operator: dto.FilterOperatorEq},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "status=active")
	assert.Contains(t, first, "room_id=r-9")
}
