package services

import (
	"strings"

	"lostfound-hub/models"
)

// containsFold reports whether s contains substr ignoring case. Empty or
// missing fields are empty strings and never match a non-empty query.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// MatchItems keeps the items whose name, description or location contains
// the query, case-insensitively. An empty query matches everything.
func MatchItems(items []models.Item, query string) []models.Item {
	if query == "" {
		return items
	}
	matched := []models.Item{}
	for _, it := range items {
		if containsFold(it.Name, query) ||
			containsFold(it.Description, query) ||
			containsFold(it.Location, query) {
			matched = append(matched, it)
		}
	}
	return matched
}

// MatchUsers keeps the users whose name, email or UWE id contains the
// query, case-insensitively.
func MatchUsers(users []models.User, query string) []models.User {
	if query == "" {
		return users
	}
	matched := []models.User{}
	for _, u := range users {
		if containsFold(u.Name, query) ||
			containsFold(u.Email, query) ||
			containsFold(u.UweID, query) {
			matched = append(matched, u)
		}
	}
	return matched
}
