package query

import (
	"reflect"
	"testing"
	"time"

	"github.com/example/roster/internal/models"
)

// fixedNow pins "now" so age classification is deterministic.
var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func fixtureUsers() []models.User {
	return []models.User{
		{
			ID: "1", FirstName: "John", LastName: "Doe",
			DateOfBirth: time.Date(1990, time.September, 9, 0, 0, 0, 0, time.UTC),
			PhoneNumber: "+1234567890", Active: true,
		},
		{
			ID: "2", FirstName: "Jane", LastName: "Smith",
			DateOfBirth: time.Date(1999, time.September, 9, 0, 0, 0, 0, time.UTC),
			PhoneNumber: "+0987654321", Active: false,
		},
		{
			ID: "3", FirstName: "Bob", LastName: "Johnson",
			DateOfBirth: time.Date(1985, time.March, 20, 0, 0, 0, 0, time.UTC),
			PhoneNumber: "+1122334455", Active: true,
		},
	}
}

func ids(users []models.User) []string {
	result := make([]string, len(users))
	for i, u := range users {
		result[i] = u.ID
	}
	return result
}

func TestSearchFilter(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty search is identity", "", []string{"1", "2", "3"}},
		{"whitespace-only search is identity", "   ", []string{"1", "2", "3"}},
		{"first name case-insensitive", "john", []string{"1", "3"}},
		{"last name case-insensitive", "SMITH", []string{"2"}},
		{"phone substring", "0987", []string{"2"}},
		{"formatted date substring", "september", []string{"1", "2"}},
		{"full formatted date", "20 March 1985", []string{"3"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := models.DefaultQueryState()
			state.SearchText = tt.search
			got := ids(Apply(fixtureUsers(), state, fixedNow))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("search %q = %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestStatusFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter models.StatusFilter
		want   []string
	}{
		{"all passes everything", models.StatusFilterAll, []string{"1", "2", "3"}},
		{"active keeps active", models.StatusFilterActive, []string{"1", "3"}},
		{"inactive keeps inactive", models.StatusFilterInactive, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := models.DefaultQueryState()
			state.StatusFilter = tt.filter
			got := ids(Apply(fixtureUsers(), state, fixedNow))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("status %q = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestAgeFilter(t *testing.T) {
	users := []models.User{
		{ID: "minor", DateOfBirth: time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "adult", DateOfBirth: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)},
		// Born exactly 18 years before fixedNow: classified Over18.
		{ID: "exactly18", DateOfBirth: time.Date(2006, time.June, 15, 0, 0, 0, 0, time.UTC)},
		// Turns 18 tomorrow relative to fixedNow.
		{ID: "almost18", DateOfBirth: time.Date(2006, time.June, 16, 0, 0, 0, 0, time.UTC)},
	}

	state := models.DefaultQueryState()
	state.AgeFilter = models.AgeFilterUnder18
	got := ids(Apply(users, state, fixedNow))
	if !reflect.DeepEqual(got, []string{"minor", "almost18"}) {
		t.Errorf("under18 = %v, want [minor almost18]", got)
	}

	state.AgeFilter = models.AgeFilterOver18
	got = ids(Apply(users, state, fixedNow))
	if !reflect.DeepEqual(got, []string{"adult", "exactly18"}) {
		t.Errorf("over18 = %v, want [adult exactly18]", got)
	}
}

func TestAge(t *testing.T) {
	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday already passed this year", time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), 34},
		{"birthday later this year", time.Date(1990, time.December, 31, 0, 0, 0, 0, time.UTC), 33},
		{"birthday today", time.Date(2006, time.June, 15, 0, 0, 0, 0, time.UTC), 18},
		{"birthday tomorrow", time.Date(2006, time.June, 16, 0, 0, 0, 0, time.UTC), 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Age(tt.dob, fixedNow); got != tt.want {
				t.Errorf("Age(%v) = %d, want %d", tt.dob, got, tt.want)
			}
		})
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name  string
		field models.SortField
		order models.SortOrder
		want  []string
	}{
		{"no sort keeps load order", models.SortFieldNone, models.SortOrderNone, []string{"1", "2", "3"}},
		{"first name asc", models.SortFieldFirstName, models.SortOrderAsc, []string{"3", "2", "1"}},
		{"first name desc", models.SortFieldFirstName, models.SortOrderDesc, []string{"1", "2", "3"}},
		{"last name asc", models.SortFieldLastName, models.SortOrderAsc, []string{"1", "3", "2"}},
		{"date of birth asc", models.SortFieldDateOfBirth, models.SortOrderAsc, []string{"3", "1", "2"}},
		{"date of birth desc", models.SortFieldDateOfBirth, models.SortOrderDesc, []string{"2", "1", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := models.DefaultQueryState()
			state.SortField = tt.field
			state.SortOrder = tt.order
			got := ids(Apply(fixtureUsers(), state, fixedNow))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sort %s/%s = %v, want %v", tt.field, tt.order, got, tt.want)
			}
		})
	}
}

func TestSortIsCaseInsensitive(t *testing.T) {
	users := []models.User{
		{ID: "1", FirstName: "alice"},
		{ID: "2", FirstName: "Bob"},
		{ID: "3", FirstName: "ALBERT"},
	}
	state := models.DefaultQueryState()
	state.SortField = models.SortFieldFirstName
	state.SortOrder = models.SortOrderAsc

	got := ids(Apply(users, state, fixedNow))
	if !reflect.DeepEqual(got, []string{"3", "1", "2"}) {
		t.Errorf("sort = %v, want [3 1 2] (ALBERT alice Bob)", got)
	}
}

func TestSortIsStable(t *testing.T) {
	users := []models.User{
		{ID: "1", FirstName: "Same"},
		{ID: "2", FirstName: "Same"},
		{ID: "3", FirstName: "Same"},
	}
	state := models.DefaultQueryState()
	state.SortField = models.SortFieldFirstName
	state.SortOrder = models.SortOrderAsc

	got := ids(Apply(users, state, fixedNow))
	if !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Errorf("equal keys reordered: %v", got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	users := fixtureUsers()
	original := make([]models.User, len(users))
	copy(original, users)

	state := models.DefaultQueryState()
	state.SortField = models.SortFieldDateOfBirth
	state.SortOrder = models.SortOrderDesc
	state.SearchText = "o"
	Apply(users, state, fixedNow)

	if !reflect.DeepEqual(users, original) {
		t.Errorf("Apply mutated its input: %v", users)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	state := models.QueryState{
		SearchText:   "jo",
		StatusFilter: models.StatusFilterActive,
		AgeFilter:    models.AgeFilterOver18,
		SortField:    models.SortFieldLastName,
		SortOrder:    models.SortOrderDesc,
	}

	first := Apply(fixtureUsers(), state, fixedNow)
	second := Apply(fixtureUsers(), state, fixedNow)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two applications differ: %v vs %v", first, second)
	}
}

// TestEndToEnd exercises the seed fixture from the top of the test file
// through each query dimension in turn.
func TestEndToEnd(t *testing.T) {
	users := fixtureUsers()

	state := models.DefaultQueryState()
	state.SearchText = "john"
	got := ids(Apply(users, state, fixedNow))
	// "john" hits John Doe's first name and Bob Johnson's last name.
	if !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Errorf(`search "john" = %v, want [1 3]`, got)
	}

	state = models.DefaultQueryState()
	state.SearchText = "john"
	state.StatusFilter = models.StatusFilterActive
	state.SortField = models.SortFieldFirstName
	state.SortOrder = models.SortOrderAsc
	got = ids(Apply(users, state, fixedNow))
	if !reflect.DeepEqual(got, []string{"3", "1"}) {
		t.Errorf("combined query = %v, want [3 1] (Bob before John)", got)
	}

	state = models.DefaultQueryState()
	state.AgeFilter = models.AgeFilterUnder18
	got = ids(Apply(users, state, fixedNow))
	// All fixture users are adults relative to the fixed clock.
	if len(got) != 0 {
		t.Errorf("under18 = %v, want empty", got)
	}
}
