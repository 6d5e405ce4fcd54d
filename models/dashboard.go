package models

// DashboardStats are the headline numbers on the admin dashboard.
type DashboardStats struct {
	TotalItems    int    `json:"totalItems"`
	LostItems     int    `json:"lostItems"`
	FoundItems    int    `json:"foundItems"`
	TotalUsers    int    `json:"totalUsers"`
	ActiveUsers   int    `json:"activeUsers"`
	TotalMessages int    `json:"totalMessages"`
	RecentItems   []Item `json:"recentItems"`
	RecentUsers   []User `json:"recentUsers"`
}

// MonthlyItemCount groups reports by calendar month (key "YYYY-MM").
type MonthlyItemCount struct {
	Month string `json:"month"`
	Lost  int    `json:"lost"`
	Found int    `json:"found"`
}

type MonthlyUserCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type ChartData struct {
	ItemsByMonth []MonthlyItemCount `json:"itemsByMonth"`
	UsersByMonth []MonthlyUserCount `json:"usersByMonth"`
}
