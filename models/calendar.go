package models

// CalendarDay is the derived status of one calendar day. It is never persisted.
type CalendarDay struct {
	Date              string `json:"date"`
	IsOpen            bool   `json:"is_open"`
	ReservationsCount int    `json:"reservations_count"`
	Reserved          bool   `json:"reserved"`
}

// CalendarMonth is the calendar view of one month.
type CalendarMonth struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}
