package reservationRepo

import (
	"context"
	"errors"
	"fmt"

	"catering/database"
	"catering/models"

	"gorm.io/gorm"
)

const dateDescendingSQL = "reservation_date DESC, id DESC"

// GormReservationRepo implements ReservationRepository on a relational database.
type GormReservationRepo struct {
	db *gorm.DB
}

func NewGormReservationRepo(db *gorm.DB) ReservationRepository {
	return &GormReservationRepo{db: db}
}

func applyDateRange(q *gorm.DB, dr models.DateRange) *gorm.DB {
	if dr.From != "" {
		q = q.Where("reservation_date >= ?", dr.From)
	}
	if dr.To != "" {
		q = q.Where("reservation_date <= ?", dr.To)
	}
	return q
}

func (r *GormReservationRepo) List(ctx context.Context, offset, limit int) ([]models.Reservation, int64, error) {
	db := r.db.WithContext(ctx).Model(&models.Reservation{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	rows := []models.Reservation{}
	if err := db.Order(dateDescendingSQL).Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reservations: %w", err)
	}
	return rows, total, nil
}

func (r *GormReservationRepo) ListByDateRange(ctx context.Context, dr models.DateRange) ([]models.Reservation, error) {
	rows := []models.Reservation{}
	q := applyDateRange(r.db.WithContext(ctx).Model(&models.Reservation{}), dr)
	if err := q.Order(dateDescendingSQL).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations by date: %w", err)
	}
	return rows, nil
}

func (r *GormReservationRepo) first(ctx context.Context, query string, arg interface{}) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.WithContext(ctx).Where(query, arg).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	return &res, nil
}

func (r *GormReservationRepo) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormReservationRepo) GetByStagedID(ctx context.Context, stagedID int64) (*models.Reservation, error) {
	return r.first(ctx, "staged_id = ?", stagedID)
}

func (r *GormReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	res.ID = 0
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *GormReservationRepo) Update(ctx context.Context, id int64, patch models.ReservationPatch) (*models.Reservation, error) {
	var updated *models.Reservation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.Where("id = ?", id).First(&res).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return database.ErrNotFound
			}
			return err
		}
		if fields := patch.Fields(); len(fields) > 0 {
			if err := tx.Model(&res).Updates(fields).Error; err != nil {
				return err
			}
			patch.Apply(&res)
		}
		updated = &res
		return nil
	})
	if errors.Is(err, database.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation with id %d: %w", id, err)
	}
	return updated, nil
}

func (r *GormReservationRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Reservation{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete reservation with id %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// GormStagedRepo implements StagedRepository on a relational database.
type GormStagedRepo struct {
	db *gorm.DB
}

func NewGormStagedRepo(db *gorm.DB) StagedRepository {
	return &GormStagedRepo{db: db}
}

func (r *GormStagedRepo) List(ctx context.Context) ([]models.StagedReservation, error) {
	rows := []models.StagedReservation{}
	if err := r.db.WithContext(ctx).Order("reservation_date ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list staged reservations: %w", err)
	}
	return rows, nil
}

func (r *GormStagedRepo) ListFrom(ctx context.Context, date string) ([]models.StagedReservation, error) {
	rows := []models.StagedReservation{}
	err := r.db.WithContext(ctx).
		Where("reservation_date >= ?", date).
		Order("reservation_date ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list staged reservations: %w", err)
	}
	return rows, nil
}

func (r *GormStagedRepo) GetByID(ctx context.Context, id int64) (*models.StagedReservation, error) {
	var s models.StagedReservation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staged reservation: %w", err)
	}
	return &s, nil
}

func (r *GormStagedRepo) Create(ctx context.Context, s *models.StagedReservation) error {
	s.ID = 0
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("failed to create staged reservation: %w", err)
	}
	return nil
}

func (r *GormStagedRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.StagedReservation{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete staged reservation with id %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *GormStagedRepo) DeleteBefore(ctx context.Context, date string) (int64, error) {
	result := r.db.WithContext(ctx).Where("reservation_date < ?", date).Delete(&models.StagedReservation{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete staged reservations before %s: %w", date, result.Error)
	}
	return result.RowsAffected, nil
}
