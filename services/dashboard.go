package services

import (
	"sort"
	"time"

	"lostfound-hub/models"
)

const monthLayout = "2006-01"

// Dashboard is the payload of GET /api/admin/dashboard.
type Dashboard struct {
	Stats     models.DashboardStats `json:"stats"`
	ChartData models.ChartData      `json:"chartData"`
}

// BuildDashboard reduces the already-fetched collections into counts,
// top-10 slices and per-month groupings. Pure; safe on empty input.
func BuildDashboard(items []models.Item, users []models.User, messages []models.Message) Dashboard {
	stats := models.DashboardStats{
		TotalItems:    len(items),
		TotalUsers:    len(users),
		TotalMessages: len(messages),
	}

	itemMonths := map[string]*models.MonthlyItemCount{}
	for _, it := range items {
		switch it.Type {
		case models.ItemTypeLost:
			stats.LostItems++
		case models.ItemTypeFound:
			stats.FoundItems++
		}
		if it.DateLostFound.IsZero() {
			continue
		}
		m := monthOf(it.DateLostFound, itemMonths)
		if it.Type == models.ItemTypeLost {
			m.Lost++
		} else if it.Type == models.ItemTypeFound {
			m.Found++
		}
	}

	userMonths := map[string]int{}
	for _, u := range users {
		if u.IsActive {
			stats.ActiveUsers++
		}
		if !u.CreatedAt.IsZero() {
			userMonths[u.CreatedAt.Format(monthLayout)]++
		}
	}

	stats.RecentItems = recentItems(items, 10)
	stats.RecentUsers = recentUsers(users, 10)

	return Dashboard{
		Stats: stats,
		ChartData: models.ChartData{
			ItemsByMonth: sortedItemMonths(itemMonths),
			UsersByMonth: sortedUserMonths(userMonths),
		},
	}
}

func monthOf(t time.Time, months map[string]*models.MonthlyItemCount) *models.MonthlyItemCount {
	key := t.Format(monthLayout)
	m, ok := months[key]
	if !ok {
		m = &models.MonthlyItemCount{Month: key}
		months[key] = m
	}
	return m
}

func recentItems(items []models.Item, n int) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateLostFound.After(out[j].DateLostFound)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func recentUsers(users []models.User, n int) []models.User {
	out := make([]models.User, len(users))
	copy(out, users)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func sortedItemMonths(months map[string]*models.MonthlyItemCount) []models.MonthlyItemCount {
	out := []models.MonthlyItemCount{}
	for _, m := range months {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func sortedUserMonths(months map[string]int) []models.MonthlyUserCount {
	out := []models.MonthlyUserCount{}
	for key, count := range months {
		out = append(out, models.MonthlyUserCount{Month: key, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
