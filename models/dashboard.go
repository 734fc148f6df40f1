package models

// WindowStats aggregates the official reservations of one calendar month.
type WindowStats struct {
	TotalSales  float64 `json:"total_sales"`
	WalkInCount int     `json:"walk_in"`
	OnlineCount int     `json:"online"`
}

// MonthlyStat is one point of the dashboard trend series.
type MonthlyStat struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	WindowStats
}

// DashboardData is the current month's card totals plus the six-month trend.
type DashboardData struct {
	MonthlySales       float64       `json:"monthlySales"`
	OnlineReservations int           `json:"onlineReservations"`
	WalkInReservations int           `json:"walkInReservations"`
	MonthlyStats       []MonthlyStat `json:"monthlyStats"`
}
