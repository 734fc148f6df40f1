package offerRepo

import (
	"context"
	"sync"

	"catering/database"
	"catering/models"
)

// MemoryPackageRepo keeps packages in process memory, ordered by id.
type MemoryPackageRepo struct {
	mu      sync.Mutex
	rows    []models.CateringPackage
	counter int64
}

func NewMemoryPackageRepo() *MemoryPackageRepo {
	return &MemoryPackageRepo{}
}

func (r *MemoryPackageRepo) indexOf(id int64) int {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryPackageRepo) List(_ context.Context) ([]models.CateringPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.CateringPackage, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *MemoryPackageRepo) GetByID(_ context.Context, id int64) (*models.CateringPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, database.ErrNotFound
	}
	p := r.rows[i]
	return &p, nil
}

func (r *MemoryPackageRepo) Create(_ context.Context, p *models.CateringPackage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter++
	p.ID = r.counter
	r.rows = append(r.rows, *p)
	return nil
}

func (r *MemoryPackageRepo) Save(_ context.Context, p *models.CateringPackage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(p.ID)
	if i < 0 {
		return database.ErrNotFound
	}
	r.rows[i] = *p
	return nil
}

func (r *MemoryPackageRepo) SetImage(_ context.Context, id int64, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return database.ErrNotFound
	}
	r.rows[i].Image = url
	return nil
}

func (r *MemoryPackageRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return database.ErrNotFound
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return nil
}

// MemoryMenuItemRepo keeps menu items in process memory, ordered by id.
type MemoryMenuItemRepo struct {
	mu      sync.Mutex
	rows    []models.MenuItem
	counter int64
}

func NewMemoryMenuItemRepo() *MemoryMenuItemRepo {
	return &MemoryMenuItemRepo{}
}

func (r *MemoryMenuItemRepo) indexOf(id int64) int {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryMenuItemRepo) List(_ context.Context) ([]models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.MenuItem, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *MemoryMenuItemRepo) GetByID(_ context.Context, id int64) (*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, database.ErrNotFound
	}
	m := r.rows[i]
	return &m, nil
}

func (r *MemoryMenuItemRepo) Create(_ context.Context, m *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter++
	m.ID = r.counter
	r.rows = append(r.rows, *m)
	return nil
}

func (r *MemoryMenuItemRepo) Save(_ context.Context, m *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(m.ID)
	if i < 0 {
		return database.ErrNotFound
	}
	r.rows[i] = *m
	return nil
}

func (r *MemoryMenuItemRepo) SetImage(_ context.Context, id int64, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return database.ErrNotFound
	}
	r.rows[i].Image = url
	return nil
}

func (r *MemoryMenuItemRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return database.ErrNotFound
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return nil
}
