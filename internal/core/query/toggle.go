package query

import "github.com/example/roster/internal/models"

// NextSort returns the query state after a click on a sort field.
//
// Clicking the already-active field cycles unset → asc → desc → unset.
// Clicking a different field always starts that field at ascending,
// regardless of the previous field's position in the cycle. SortField
// and SortOrder are set and cleared together, preserving the query
// state invariant.
func NextSort(state models.QueryState, field models.SortField) models.QueryState {
	if state.SortField == field {
		switch state.SortOrder {
		case models.SortOrderAsc:
			state.SortOrder = models.SortOrderDesc
		case models.SortOrderDesc:
			state.SortField = models.SortFieldNone
			state.SortOrder = models.SortOrderNone
		default:
			state.SortOrder = models.SortOrderAsc
		}
		return state
	}

	state.SortField = field
	state.SortOrder = models.SortOrderAsc
	return state
}
