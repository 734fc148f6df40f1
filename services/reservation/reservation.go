package reservation

import (
	"context"
	"errors"
	"fmt"

	"catering/database"
	"catering/models"
	"catering/utils"

	"go.uber.org/zap"
)

func storeErr(op string, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return utils.NotFoundError(op, "reservation not found")
	}
	return utils.StoreError(op, err)
}

// List returns one page, or every row of dr when a range is given.
func (s *DefaultReservationService) List(ctx context.Context, page, pageSize int, dr models.DateRange) (*models.ReservationPage, error) {
	const op = "listReservations"

	if !dr.IsZero() {
		for _, d := range []string{dr.From, dr.To} {
			if d == "" {
				continue
			}
			if _, err := utils.ParseDate(d, s.Location); err != nil {
				return nil, utils.ValidationError(op, err.Error())
			}
		}
		rows, err := s.Repo.ListByDateRange(ctx, dr)
		if err != nil {
			return nil, utils.StoreError(op, err)
		}
		return &models.ReservationPage{Reservations: rows, TotalCount: int64(len(rows))}, nil
	}

	if page < 1 {
		return nil, utils.ValidationError(op, "page must be at least 1")
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return nil, utils.ValidationError(op, fmt.Sprintf("page size must be between 1 and %d", MaxPageSize))
	}

	rows, total, err := s.Repo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, utils.StoreError(op, err)
	}
	return &models.ReservationPage{
		Reservations: rows,
		TotalCount:   total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

func (s *DefaultReservationService) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("getReservation", err)
	}
	return res, nil
}

func (s *DefaultReservationService) Create(ctx context.Context, input models.ReservationInput) (*models.Reservation, error) {
	const op = "insertReservation"
	if err := s.validateInput(op, &input); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		Name:            input.Name,
		MobileNumber:    input.MobileNumber,
		Location:        input.Location,
		Notes:           input.Notes,
		Choices:         input.Choices,
		Package:         input.Package,
		Pax:             input.Pax,
		ReservationDate: input.ReservationDate,
		TotalPrice:      input.TotalPrice,
		Type:            input.Type,
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		return nil, utils.StoreError(op, err)
	}
	utils.GetLogger().Info("Reservation created", zap.Int64("id", res.ID), zap.String("date", res.ReservationDate))
	return res, nil
}

func (s *DefaultReservationService) Update(ctx context.Context, id int64, patch models.ReservationPatch) (*models.Reservation, error) {
	const op = "updateReservation"
	if err := s.validatePatch(op, patch); err != nil {
		return nil, err
	}
	res, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return nil, storeErr(op, err)
	}
	return res, nil
}

func (s *DefaultReservationService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr("deleteReservation", err)
	}
	utils.GetLogger().Info("Reservation deleted", zap.Int64("id", id))
	return nil
}
