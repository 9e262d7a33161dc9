package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adokuru/affordaily-api/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "equality with table",
			filter: dto.Filter{
				Field:    "status",
				Value:    "active",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "active"},
		},
		{
			name: "strict less-than keeps on-time bookings out of the overdue set",
			filter: dto.Filter{
				Field:    "scheduled_checkout_time",
				Value:    time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
				Operator: dto.FilterOperatorLess,
				Table:    "bookings",
			},
			wantWhere: "bookings.scheduled_checkout_time < :scheduled_checkout_time",
			wantArgs:  map[string]any{"scheduled_checkout_time": time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)},
		},
		{
			name: "date equality",
			filter: dto.Filter{
				Field:    "scheduled_checkout_time",
				Value:    "2025-01-10",
				Operator: dto.FilterOperatorDateEq,
				Table:    "bookings",
			},
			wantWhere: "DATE(bookings.scheduled_checkout_time) = :scheduled_checkout_time",
			wantArgs:  map[string]any{"scheduled_checkout_time": "2025-01-10"},
		},
		{
			name: "in over slice",
			filter: dto.Filter{
				Field:    "status",
				Value:    []string{"active", "pending_checkout"},
				Operator: dto.FilterOperatorIn,
				Table:    "bookings",
			},
			wantWhere: "bookings.status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "active", "status_1": "pending_checkout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "active", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "room_id", Value: "r-1", Operator: dto.FilterOperatorEq},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(status = :status AND room_id = :room_id)", where)
	assert.Len(t, args, 2)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
