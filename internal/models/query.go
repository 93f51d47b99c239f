package models

// SortField identifies the column a sort applies to.
type SortField string

// Sort field constants. SortFieldNone means "no sort": the displayed
// list keeps load order.
const (
	SortFieldNone        SortField = ""
	SortFieldFirstName   SortField = "firstName"
	SortFieldLastName    SortField = "lastName"
	SortFieldDateOfBirth SortField = "dateOfBirth"
)

// SortOrder is the direction of an active sort.
type SortOrder string

// Sort order constants.
const (
	SortOrderNone SortOrder = ""
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// StatusFilter narrows users by their active flag.
type StatusFilter string

// Status filter constants.
const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterInactive StatusFilter = "inactive"
)

// AgeFilter narrows users by age computed from date of birth.
type AgeFilter string

// Age filter constants.
const (
	AgeFilterAll     AgeFilter = "all"
	AgeFilterUnder18 AgeFilter = "under18"
	AgeFilterOver18  AgeFilter = "over18"
)

// QueryState is the full set of filter and sort parameters the query
// pipeline derives a displayed list from.
//
// Invariant: SortOrder is non-none iff SortField is non-none. The two
// are always set and cleared together (see query.NextSort).
type QueryState struct {
	SearchText   string
	StatusFilter StatusFilter
	AgeFilter    AgeFilter
	SortField    SortField
	SortOrder    SortOrder
}

// DefaultQueryState returns the initial query state: no search text,
// both filters wide open, no sort.
func DefaultQueryState() QueryState {
	return QueryState{
		StatusFilter: StatusFilterAll,
		AgeFilter:    AgeFilterAll,
		SortField:    SortFieldNone,
		SortOrder:    SortOrderNone,
	}
}
