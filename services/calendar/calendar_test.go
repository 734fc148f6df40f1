package calendar

import (
	"context"
	"testing"
	"time"

	reservationRepo "catering/database/repository/reservation"
	"catering/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthLengths(t *testing.T) {
	today := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		cal := BuildMonth(c.year, c.month, nil, today)
		assert.Len(t, cal.Days, c.days, "%d-%02d", c.year, c.month)
		assert.Equal(t, c.year, cal.Year)
		assert.Equal(t, int(c.month), cal.Month)
	}
}

func TestBuildMonthStatus(t *testing.T) {
	// 2024-06-15 is a Saturday.
	today := time.Date(2024, 6, 12, 18, 0, 0, 0, time.UTC)
	dates := []string{"2024-06-10", "2024-06-20", "2024-06-20", "2024-07-20", "2024-06-15"}

	cal := BuildMonth(2024, time.June, dates, today)
	byDate := map[string]models.CalendarDay{}
	for _, d := range cal.Days {
		byDate[d.Date] = d
	}

	assert.False(t, byDate["2024-06-10"].IsOpen, "past day")
	assert.True(t, byDate["2024-06-10"].Reserved)
	assert.True(t, byDate["2024-06-12"].IsOpen, "today")
	assert.False(t, byDate["2024-06-15"].IsOpen, "saturday")
	assert.Equal(t, 1, byDate["2024-06-15"].ReservationsCount)
	assert.Equal(t, 2, byDate["2024-06-20"].ReservationsCount)
	assert.True(t, byDate["2024-06-20"].IsOpen)
	assert.False(t, byDate["2024-06-21"].Reserved)
	assert.Equal(t, 0, byDate["2024-06-21"].ReservationsCount)
}

func TestMonthAndUpcoming(t *testing.T) {
	repo := reservationRepo.NewMemoryReservationRepo()
	ctx := context.Background()
	for _, d := range []string{"2024-06-01", "2024-06-20", "2024-06-20", "2024-07-02", "2024-05-31"} {
		require.NoError(t, repo.Create(ctx, &models.Reservation{ReservationDate: d}))
	}
	svc := &DefaultCalendarService{
		Repo:     repo,
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC) },
	}

	cal, err := svc.Month(ctx, 2024, time.June)
	require.NoError(t, err)
	require.Len(t, cal.Days, 30)
	assert.Equal(t, 1, cal.Days[0].ReservationsCount)
	assert.Equal(t, 2, cal.Days[19].ReservationsCount)

	upcoming, err := svc.UpcomingDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-20", "2024-07-02"}, upcoming)

	_, err = svc.Month(ctx, 2024, 13)
	assert.Error(t, err)
}
