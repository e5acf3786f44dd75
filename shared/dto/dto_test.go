package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "pending",
				Table:    "bookings",
			},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "id",
				Operator: dto.FilterOperatorEq,
				Value:    "abc",
			},
			wantWhere: "id = :id",
			wantArgs:  map[string]any{"id": "abc"},
		},
		{
			name: "like wraps value in wildcards",
			filter: dto.Filter{
				Field:    "location",
				Operator: dto.FilterOperatorLike,
				Value:    "bali",
				Table:    "properties",
			},
			wantWhere: "LOWER(properties.location) LIKE LOWER(:location) ",
			wantArgs:  map[string]any{"location": "%bali%"},
		},
		{
			name: "greater_eq",
			filter: dto.Filter{
				Field:    "price_per_night",
				Operator: dto.FilterOperatorGreaterEq,
				Value:    10000,
				Table:    "properties",
			},
			wantWhere: "properties.price_per_night >= :price_per_night",
			wantArgs:  map[string]any{"price_per_night": 10000},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "min_price",
				Field:    "price_per_night",
				Operator: dto.FilterOperatorGreaterEq,
				Value:    10000,
			},
			wantWhere: "price_per_night >= :min_price",
			wantArgs:  map[string]any{"min_price": 10000},
		},
		{
			name: "in with slice",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorIn,
				Value:    []string{"pending", "confirmed"},
			},
			wantWhere: "status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Operator: "bogus",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
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
			dto.Filter{Field: "guest_id", Operator: dto.FilterOperatorEq, Value: "g1", Table: "bookings"},
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending", Table: "bookings"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.guest_id = :guest_id AND bookings.status = :status)", where)
	assert.Equal(t, map[string]any{"guest_id": "g1", "status": "pending"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "approved", Operator: dto.FilterOperatorEq, Value: true},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "host_id", Operator: dto.FilterOperatorEq, Value: "h1"},
					dto.Filter{ArgName: "host_id_alt", Field: "host_id", Operator: dto.FilterOperatorEq, Value: "h2"},
				},
			},
		},
	}

	where, _ := group.GetWhereClause()

	assert.Equal(t, "(approved = :approved AND (host_id = :host_id OR host_id = :host_id_alt))", where)
}

func TestQueryParams_FromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings?page=2&limit=25&sort_by=start_date&sort_dir=asc", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "start_date", q.SortBy)
	assert.Equal(t, dto.SortDirAsc, q.SortDir)
}

func TestQueryParams_FromRequest_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}

func TestQueryParams_FromRequest_InvalidValuesIgnored(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings?page=-1&limit=abc&sort_dir=sideways", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, false)

	assert.Zero(t, q.Page)
	assert.Zero(t, q.Limit)
	assert.Empty(t, q.SortDir)
}
