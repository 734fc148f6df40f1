package reservationRepo

import (
	"context"

	"catering/models"
)

// ReservationRepository is the official reservations table.
type ReservationRepository interface {
	// List returns one page ordered by date descending plus the table's total row count.
	List(ctx context.Context, offset, limit int) ([]models.Reservation, int64, error)
	// ListByDateRange returns every row inside the inclusive range, date descending.
	ListByDateRange(ctx context.Context, r models.DateRange) ([]models.Reservation, error)
	GetByID(ctx context.Context, id int64) (*models.Reservation, error)
	// GetByStagedID finds the official row a staged reservation was promoted into.
	GetByStagedID(ctx context.Context, stagedID int64) (*models.Reservation, error)
	// Create assigns ID and CreatedAt.
	Create(ctx context.Context, r *models.Reservation) error
	Update(ctx context.Context, id int64, patch models.ReservationPatch) (*models.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// StagedRepository is the online submissions staging table.
type StagedRepository interface {
	List(ctx context.Context) ([]models.StagedReservation, error)
	// ListFrom returns rows dated on or after date.
	ListFrom(ctx context.Context, date string) ([]models.StagedReservation, error)
	GetByID(ctx context.Context, id int64) (*models.StagedReservation, error)
	Create(ctx context.Context, s *models.StagedReservation) error
	Delete(ctx context.Context, id int64) error
	// DeleteBefore removes rows dated strictly before date and returns how many went.
	DeleteBefore(ctx context.Context, date string) (int64, error)
}
