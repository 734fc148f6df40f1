package online

import (
	"context"
	"errors"
	"time"

	"catering/database"
	reservationRepo "catering/database/repository/reservation"
	"catering/models"
	"catering/utils"

	"go.uber.org/zap"
)

// OnlineService moves staged online submissions into the official table.
type OnlineService interface {
	List(ctx context.Context) ([]models.StagedReservation, error)
	Promote(ctx context.Context, staged models.StagedReservation) (*models.Reservation, error)
	PromoteByID(ctx context.Context, id int64) (*models.Reservation, error)
	Reject(ctx context.Context, id int64) error
	PurgeExpired(ctx context.Context, now time.Time) ([]models.StagedReservation, error)
}

// DefaultOnlineService is the production implementation.
type DefaultOnlineService struct {
	Official reservationRepo.ReservationRepository
	Staged   reservationRepo.StagedRepository
	Location *time.Location
}

func (s *DefaultOnlineService) List(ctx context.Context) ([]models.StagedReservation, error) {
	rows, err := s.Staged.List(ctx)
	if err != nil {
		return nil, utils.StoreError("listOnlineReservations", err)
	}
	return rows, nil
}

// Promote inserts the official copy, then removes the staged row. A staged row
// whose official copy already exists from an earlier attempt is only removed.
func (s *DefaultOnlineService) Promote(ctx context.Context, staged models.StagedReservation) (*models.Reservation, error) {
	const op = "promoteReservation"
	logger := utils.GetLogger().With(zap.Int64("stagedId", staged.ID))

	official, err := s.Official.GetByStagedID(ctx, staged.ID)
	switch {
	case err == nil:
		logger.Info("Staged reservation already promoted, retrying removal", zap.Int64("id", official.ID))
	case errors.Is(err, database.ErrNotFound):
		row := staged.Official()
		if err := s.Official.Create(ctx, &row); err != nil {
			return nil, utils.StoreError(op, err)
		}
		official = &row
	default:
		return nil, utils.StoreError(op, err)
	}

	if err := s.Staged.Delete(ctx, staged.ID); err != nil && !errors.Is(err, database.ErrNotFound) {
		logger.Error("Promoted reservation but failed to remove staged row", zap.Error(err))
		return official, utils.StoreError(op, err)
	}
	logger.Info("Online reservation promoted", zap.Int64("id", official.ID))
	return official, nil
}

func (s *DefaultOnlineService) PromoteByID(ctx context.Context, id int64) (*models.Reservation, error) {
	staged, err := s.Staged.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, utils.NotFoundError("promoteReservation", "online reservation not found")
	}
	if err != nil {
		return nil, utils.StoreError("promoteReservation", err)
	}
	return s.Promote(ctx, *staged)
}

func (s *DefaultOnlineService) Reject(ctx context.Context, id int64) error {
	const op = "deleteOnlineReservation"
	err := s.Staged.Delete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return utils.NotFoundError(op, "online reservation not found")
	}
	if err != nil {
		return utils.StoreError(op, err)
	}
	return nil
}

// PurgeExpired deletes staged rows dated before yesterday and returns the rest.
func (s *DefaultOnlineService) PurgeExpired(ctx context.Context, now time.Time) ([]models.StagedReservation, error) {
	const op = "purgeExpiredOnlineReservations"
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	cutoff := utils.FormatDate(utils.StartOfDay(now.In(loc)).AddDate(0, 0, -1))

	removed, err := s.Staged.DeleteBefore(ctx, cutoff)
	if err != nil {
		return nil, utils.StoreError(op, err)
	}
	if removed > 0 {
		utils.GetLogger().Info("Purged lapsed online reservations", zap.Int64("removed", removed), zap.String("cutoff", cutoff))
	}

	remaining, err := s.Staged.ListFrom(ctx, cutoff)
	if err != nil {
		return nil, utils.StoreError(op, err)
	}
	return remaining, nil
}
