package reservationRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"catering/database"
	"catering/models"
)

// MemoryReservationRepo keeps official reservations in process memory.
// It backs the "memory" database driver and service tests.
type MemoryReservationRepo struct {
	mu      sync.Mutex
	rows    []models.Reservation
	counter int64
	now     func() time.Time
}

func NewMemoryReservationRepo() *MemoryReservationRepo {
	return &MemoryReservationRepo{now: time.Now}
}

// sortedCopy returns rows ordered by date descending, then id descending.
func sortedCopy(rows []models.Reservation) []models.Reservation {
	out := make([]models.Reservation, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ReservationDate != out[j].ReservationDate {
			return out[i].ReservationDate > out[j].ReservationDate
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *MemoryReservationRepo) List(_ context.Context, offset, limit int) ([]models.Reservation, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sorted := sortedCopy(r.rows)
	total := int64(len(sorted))
	if offset >= len(sorted) {
		return []models.Reservation{}, total, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], total, nil
}

func (r *MemoryReservationRepo) ListByDateRange(_ context.Context, dr models.DateRange) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Reservation{}
	for _, row := range sortedCopy(r.rows) {
		if dr.Contains(row.ReservationDate) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *MemoryReservationRepo) indexOf(id int64) int {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryReservationRepo) GetByID(_ context.Context, id int64) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, database.ErrNotFound
	}
	res := r.rows[i]
	return &res, nil
}

func (r *MemoryReservationRepo) GetByStagedID(_ context.Context, stagedID int64) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.StagedID != nil && *row.StagedID == stagedID {
			res := row
			return &res, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *MemoryReservationRepo) Create(_ context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	res.ID = r.counter
	res.CreatedAt = r.now()
	r.rows = append(r.rows, *res)
	return nil
}

func (r *MemoryReservationRepo) Update(_ context.Context, id int64, patch models.ReservationPatch) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, database.ErrNotFound
	}
	patch.Apply(&r.rows[i])
	res := r.rows[i]
	return &res, nil
}

func (r *MemoryReservationRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return database.ErrNotFound
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return nil
}

// MemoryStagedRepo keeps staged online reservations in process memory.
type MemoryStagedRepo struct {
	mu      sync.Mutex
	rows    []models.StagedReservation
	counter int64
}

func NewMemoryStagedRepo() *MemoryStagedRepo {
	return &MemoryStagedRepo{}
}

func (r *MemoryStagedRepo) filter(keep func(models.StagedReservation) bool) []models.StagedReservation {
	out := []models.StagedReservation{}
	for _, row := range r.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ReservationDate != out[j].ReservationDate {
			return out[i].ReservationDate < out[j].ReservationDate
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *MemoryStagedRepo) List(_ context.Context) ([]models.StagedReservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(models.StagedReservation) bool { return true }), nil
}

func (r *MemoryStagedRepo) ListFrom(_ context.Context, date string) ([]models.StagedReservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(s models.StagedReservation) bool { return s.ReservationDate >= date }), nil
}

func (r *MemoryStagedRepo) GetByID(_ context.Context, id int64) (*models.StagedReservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.ID == id {
			s := row
			return &s, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *MemoryStagedRepo) Create(_ context.Context, s *models.StagedReservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	s.ID = r.counter
	r.rows = append(r.rows, *s)
	return nil
}

func (r *MemoryStagedRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (r *MemoryStagedRepo) DeleteBefore(_ context.Context, date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.rows[:0]
	var removed int64
	for _, row := range r.rows {
		if row.ReservationDate < date {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return removed, nil
}
