package reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	reservationRepo "catering/database/repository/reservation"
	"catering/models"
	"catering/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput(date string) models.ReservationInput {
	return models.ReservationInput{
		Name:            "Dela Cruz",
		MobileNumber:    "09171234567",
		Location:        "Function Room B",
		Pax:             30,
		ReservationDate: date,
		TotalPrice:      15000,
	}
}

func newService() *DefaultReservationService {
	return NewReservationService(reservationRepo.NewMemoryReservationRepo(), time.UTC)
}

func TestCreateDefaultsTypeAndAssignsID(t *testing.T) {
	svc := newService()
	res, err := svc.Create(context.Background(), validInput("2024-07-01"))
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.False(t, res.CreatedAt.IsZero())
	assert.Equal(t, models.ReservationTypeWalkIn, res.Type)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	cases := map[string]func(*models.ReservationInput){
		"empty name":     func(in *models.ReservationInput) { in.Name = "  " },
		"missing mobile": func(in *models.ReservationInput) { in.MobileNumber = "" },
		"zero pax":       func(in *models.ReservationInput) { in.Pax = 0 },
		"negative price": func(in *models.ReservationInput) { in.TotalPrice = -1 },
		"bad date":       func(in *models.ReservationInput) { in.ReservationDate = "07/01/2024" },
		"empty date":     func(in *models.ReservationInput) { in.ReservationDate = "" },
		"unknown type":   func(in *models.ReservationInput) { in.Type = "phone" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput("2024-07-01")
			mutate(&in)
			_, err := newService().Create(context.Background(), in)
			assert.ErrorIs(t, err, utils.ErrValidation)
		})
	}
}

func TestListPagination(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	for day := 1; day <= 25; day++ {
		_, err := svc.Create(ctx, validInput(fmt.Sprintf("2024-03-%02d", day)))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 1, 10, models.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.TotalCount)
	require.Len(t, page.Reservations, 10)
	assert.Equal(t, "2024-03-25", page.Reservations[0].ReservationDate)

	page, err = svc.List(ctx, 3, 10, models.DateRange{})
	require.NoError(t, err)
	assert.Len(t, page.Reservations, 5)

	_, err = svc.List(ctx, 0, 10, models.DateRange{})
	assert.ErrorIs(t, err, utils.ErrValidation)
	_, err = svc.List(ctx, 1, MaxPageSize+1, models.DateRange{})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestListDateRangeIgnoresPagination(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	for _, d := range []string{"2024-01-10", "2024-02-05", "2024-02-20", "2024-03-01"} {
		_, err := svc.Create(ctx, validInput(d))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 1, 1, models.DateRange{From: "2024-02-01", To: "2024-02-29"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
	require.Len(t, page.Reservations, 2)
	assert.Equal(t, "2024-02-20", page.Reservations[0].ReservationDate)

	page, err = svc.List(ctx, 0, 0, models.DateRange{From: "2024-02-20"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)

	_, err = svc.List(ctx, 1, 10, models.DateRange{From: "Feb 1"})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestUpdateOnlyTouchesSuppliedFields(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, validInput("2024-05-05"))
	require.NoError(t, err)

	pax := 45
	updated, err := svc.Update(ctx, created.ID, models.ReservationPatch{Pax: &pax})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.Pax)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.TotalPrice, updated.TotalPrice)

	bad := -5
	_, err = svc.Update(ctx, created.ID, models.ReservationPatch{Pax: &bad})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.Update(ctx, created.ID+99, models.ReservationPatch{Pax: &pax})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.Update(ctx, created.ID, models.ReservationPatch{})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, validInput("2024-05-05"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.False(t, errors.Is(err, utils.ErrStore))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
