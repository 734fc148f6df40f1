package dashboard

import (
	"context"
	"time"

	reservationRepo "catering/database/repository/reservation"
	"catering/models"
	"catering/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Months is the length of the dashboard trend series.
const Months = 6

type DashboardService interface {
	WindowStats(ctx context.Context, year int, month time.Month) (models.WindowStats, error)
	Summary(ctx context.Context, now time.Time) (*models.DashboardData, error)
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	Repo     reservationRepo.ReservationRepository
	Location *time.Location
}

// Aggregate sums prices exactly and splits counts by channel.
func Aggregate(rows []models.Reservation) models.WindowStats {
	total := decimal.Zero
	var stats models.WindowStats
	for _, r := range rows {
		total = total.Add(decimal.NewFromFloat(r.TotalPrice))
		if r.IsOnline() {
			stats.OnlineCount++
		} else {
			stats.WalkInCount++
		}
	}
	stats.TotalSales = total.InexactFloat64()
	return stats
}

func (s *DefaultDashboardService) WindowStats(ctx context.Context, year int, month time.Month) (models.WindowStats, error) {
	first, last := utils.MonthBounds(year, month, time.UTC)
	rows, err := s.Repo.ListByDateRange(ctx, models.DateRange{From: utils.FormatDate(first), To: utils.FormatDate(last)})
	if err != nil {
		return models.WindowStats{}, utils.StoreError("getWindowStats", err)
	}
	return Aggregate(rows), nil
}

// Summary reads the current and five preceding months concurrently.
// A window that fails to load is logged and reported as zeros.
func (s *DefaultDashboardService) Summary(ctx context.Context, now time.Time) (*models.DashboardData, error) {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stats := make([]models.MonthlyStat, Months)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < Months; i++ {
		i := i
		window := current.AddDate(0, i-(Months-1), 0)
		stats[i] = models.MonthlyStat{Month: window.Month().String(), Year: window.Year()}
		g.Go(func() error {
			ws, err := s.WindowStats(gctx, window.Year(), window.Month())
			if err != nil {
				utils.GetLogger().Warn("Dashboard window failed",
					zap.Int("year", window.Year()),
					zap.String("month", window.Month().String()),
					zap.Error(err))
				return nil
			}
			stats[i].WindowStats = ws
			return nil
		})
	}
	_ = g.Wait()

	latest := stats[Months-1]
	return &models.DashboardData{
		MonthlySales:       latest.TotalSales,
		OnlineReservations: latest.OnlineCount,
		WalkInReservations: latest.WalkInCount,
		MonthlyStats:       stats,
	}, nil
}
