package calendar

import (
	"context"
	"time"

	reservationRepo "catering/database/repository/reservation"
	"catering/models"
	"catering/utils"
)

// BuildMonth derives the status of every day of year/month. Saturdays and days
// before today are closed.
func BuildMonth(year int, month time.Month, reservationDates []string, today time.Time) models.CalendarMonth {
	counts := make(map[string]int, len(reservationDates))
	for _, d := range reservationDates {
		counts[d]++
	}

	todayKey := utils.FormatDate(today)
	first, last := utils.MonthBounds(year, month, time.UTC)
	days := make([]models.CalendarDay, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := utils.FormatDate(d)
		n := counts[key]
		days = append(days, models.CalendarDay{
			Date:              key,
			IsOpen:            d.Weekday() != time.Saturday && key >= todayKey,
			ReservationsCount: n,
			Reserved:          n > 0,
		})
	}
	return models.CalendarMonth{Year: first.Year(), Month: int(first.Month()), Days: days}
}

type CalendarService interface {
	Month(ctx context.Context, year int, month time.Month) (*models.CalendarMonth, error)
	UpcomingDates(ctx context.Context) ([]string, error)
}

// DefaultCalendarService is the production implementation.
type DefaultCalendarService struct {
	Repo     reservationRepo.ReservationRepository
	Location *time.Location
	Now      func() time.Time
}

func (s *DefaultCalendarService) today() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}

func (s *DefaultCalendarService) Month(ctx context.Context, year int, month time.Month) (*models.CalendarMonth, error) {
	const op = "getCalendar"
	if month < time.January || month > time.December {
		return nil, utils.ValidationError(op, "month must be between 1 and 12")
	}
	if year < 1 {
		return nil, utils.ValidationError(op, "year must be positive")
	}

	first, last := utils.MonthBounds(year, month, time.UTC)
	rows, err := s.Repo.ListByDateRange(ctx, models.DateRange{From: utils.FormatDate(first), To: utils.FormatDate(last)})
	if err != nil {
		return nil, utils.StoreError(op, err)
	}
	dates := make([]string, 0, len(rows))
	for _, r := range rows {
		dates = append(dates, r.ReservationDate)
	}

	cal := BuildMonth(year, month, dates, s.today())
	return &cal, nil
}

// UpcomingDates returns the distinct reserved dates from today on, earliest first.
func (s *DefaultCalendarService) UpcomingDates(ctx context.Context) ([]string, error) {
	rows, err := s.Repo.ListByDateRange(ctx, models.DateRange{From: utils.FormatDate(s.today())})
	if err != nil {
		return nil, utils.StoreError("getUpcomingDates", err)
	}

	seen := make(map[string]bool, len(rows))
	dates := []string{}
	// rows are newest first
	for i := len(rows) - 1; i >= 0; i-- {
		d := rows[i].ReservationDate
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	return dates, nil
}
