package shared_test

import (
	"reflect"
	"testing"

	"stayhub/shared"
	"stayhub/shared/constant"
	"stayhub/shared/dto"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "maybe",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", *got)
				}

				return
			}

			if got == nil || *got != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, got)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "partial last page", total: 101, limit: 10, expected: 11},
		{name: "single page", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateReq struct {
		Status   string `db:"status"`
		Location string `db:"location"`
		Ignored  string
	}

	fields := shared.TransformFields(updateReq{Status: "confirmed"}, "admin-1")

	if fields["status"] != "confirmed" {
		t.Errorf("expected status field to be set, got %v", fields["status"])
	}

	if _, ok := fields["location"]; ok {
		t.Error("zero-valued field should be skipped")
	}

	if fields[constant.FieldModifiedBy] != "admin-1" {
		t.Errorf("expected modified_by to be stamped, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be stamped")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc-123", "id", "bookings")

	if len(group.Filters) != 1 {
		t.Fatalf("expected a single filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected filter to be a dto.Filter")
	}

	want := dto.Filter{
		Field:    "id",
		Value:    "abc-123",
		Operator: dto.FilterOperatorEq,
		Table:    "bookings",
	}

	if !reflect.DeepEqual(filter, want) {
		t.Errorf("expected %+v, got %+v", want, filter)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking:get", "abc"); got != "booking:get:abc" {
		t.Errorf("unexpected cache key %q", got)
	}
}

func TestBuildCacheKeyWithQuery_Deterministic(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByID("abc", "id", "bookings")

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if first != second {
		t.Error("expected identical queries to produce identical cache keys")
	}

	other := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	if first == other {
		t.Error("expected different queries to produce different cache keys")
	}
}
