package reservation

import (
	"context"
	"time"

	reservationRepo "catering/database/repository/reservation"
	"catering/models"

	"github.com/go-playground/validator/v10"
)

// MaxPageSize caps a single listing page.
const MaxPageSize = 1000

type ReservationService interface {
	List(ctx context.Context, page, pageSize int, dr models.DateRange) (*models.ReservationPage, error)
	Get(ctx context.Context, id int64) (*models.Reservation, error)
	Create(ctx context.Context, input models.ReservationInput) (*models.Reservation, error)
	Update(ctx context.Context, id int64, patch models.ReservationPatch) (*models.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	Repo     reservationRepo.ReservationRepository
	Location *time.Location

	validate *validator.Validate
}

func NewReservationService(repo reservationRepo.ReservationRepository, loc *time.Location) *DefaultReservationService {
	if loc == nil {
		loc = time.Local
	}
	return &DefaultReservationService{Repo: repo, Location: loc, validate: validator.New()}
}
