package cli

import (
	"testing"

	"github.com/example/roster/internal/models"
)

func TestBuildQueryStateDefaults(t *testing.T) {
	state, err := buildQueryState("", "all", "all", "", "asc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != models.DefaultQueryState() {
		t.Errorf("expected default query state, got %+v", state)
	}
}

func TestBuildQueryStateFull(t *testing.T) {
	state, err := buildQueryState("john", "active", "over18", "lastName", "desc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.SearchText != "john" {
		t.Errorf("expected search text john, got %q", state.SearchText)
	}
	if state.StatusFilter != models.StatusFilterActive {
		t.Errorf("expected active status filter, got %q", state.StatusFilter)
	}
	if state.AgeFilter != models.AgeFilterOver18 {
		t.Errorf("expected over18 age filter, got %q", state.AgeFilter)
	}
	if state.SortField != models.SortFieldLastName || state.SortOrder != models.SortOrderDesc {
		t.Errorf("expected lastName desc sort, got %q %q", state.SortField, state.SortOrder)
	}
}

func TestBuildQueryStateOrderIgnoredWithoutSort(t *testing.T) {
	// --order only matters when --sort is given; a bad order value with
	// no sort field is not an error.
	state, err := buildQueryState("", "all", "all", "", "sideways")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.SortField != models.SortFieldNone || state.SortOrder != models.SortOrderNone {
		t.Errorf("expected no sort, got %q %q", state.SortField, state.SortOrder)
	}
}

func TestBuildQueryStateInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		status string
		age    string
		sort   string
		order  string
	}{
		{"bad status", "enabled", "all", "", "asc"},
		{"bad age", "all", "adult", "", "asc"},
		{"bad sort field", "all", "all", "phoneNumber", "asc"},
		{"bad sort order", "all", "all", "firstName", "sideways"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildQueryState("", tt.status, tt.age, tt.sort, tt.order); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
