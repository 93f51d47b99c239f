// Package query contains the pure filter/sort pipeline that derives a
// displayed list from the in-memory working set. Every function is
// deterministic given (users, state, now) and never mutates its input.
package query

import (
	"slices"
	"strings"
	"time"

	"github.com/example/roster/internal/core/render"
	"github.com/example/roster/internal/models"
)

// Apply runs the full pipeline over users: search filter, then status
// filter, then age filter, then sort. Later stages operate on the
// already-narrowed set; sort is the final cosmetic step. The result is
// a fresh slice.
func Apply(users []models.User, state models.QueryState, now time.Time) []models.User {
	result := make([]models.User, len(users))
	copy(result, users)

	result = applySearchFilter(result, state.SearchText)
	result = applyStatusFilter(result, state.StatusFilter)
	result = applyAgeFilter(result, state.AgeFilter, now)
	result = applySort(result, state.SortField, state.SortOrder)

	return result
}

// applySearchFilter keeps users whose first name, last name, phone
// number, or formatted date of birth contains the query. Name and date
// matching is case-insensitive; the phone number is matched raw.
func applySearchFilter(users []models.User, searchText string) []models.User {
	query := strings.ToLower(strings.TrimSpace(searchText))
	if query == "" {
		return users
	}

	var result []models.User
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.FirstName), query) ||
			strings.Contains(strings.ToLower(user.LastName), query) ||
			strings.Contains(user.PhoneNumber, query) ||
			strings.Contains(strings.ToLower(render.FormatDate(user.DateOfBirth)), query) {
			result = append(result, user)
		}
	}
	return result
}

func applyStatusFilter(users []models.User, filter models.StatusFilter) []models.User {
	if filter == models.StatusFilterAll || filter == "" {
		return users
	}

	var result []models.User
	for _, user := range users {
		if (filter == models.StatusFilterActive) == user.Active {
			result = append(result, user)
		}
	}
	return result
}

func applyAgeFilter(users []models.User, filter models.AgeFilter, now time.Time) []models.User {
	if filter == models.AgeFilterAll || filter == "" {
		return users
	}

	var result []models.User
	for _, user := range users {
		age := Age(user.DateOfBirth, now)
		if (filter == models.AgeFilterUnder18) == (age < 18) {
			result = append(result, user)
		}
	}
	return result
}

// applySort stable-sorts by the active sort field. With no active sort
// the input order (load order) is kept.
func applySort(users []models.User, field models.SortField, order models.SortOrder) []models.User {
	if field == models.SortFieldNone || order == models.SortOrderNone {
		return users
	}

	slices.SortStableFunc(users, func(a, b models.User) int {
		var comparison int
		switch field {
		case models.SortFieldFirstName:
			comparison = compareNames(a.FirstName, b.FirstName)
		case models.SortFieldLastName:
			comparison = compareNames(a.LastName, b.LastName)
		case models.SortFieldDateOfBirth:
			comparison = a.DateOfBirth.Compare(b.DateOfBirth)
		}
		if order == models.SortOrderDesc {
			comparison = -comparison
		}
		return comparison
	})
	return users
}

// compareNames orders names case-insensitively, falling back to a raw
// comparison so equal-ignoring-case names still sort deterministically.
func compareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Age returns whole years elapsed between dob and now, accounting for
// whether the birthday has occurred yet this year. A user born exactly
// 18 years before now is 18.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() ||
		(now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}
