package offerRepo

import (
	"context"

	"catering/models"
)

type PackageRepository interface {
	List(ctx context.Context) ([]models.CateringPackage, error)
	GetByID(ctx context.Context, id int64) (*models.CateringPackage, error)
	// Create assigns the package ID.
	Create(ctx context.Context, p *models.CateringPackage) error
	// Save writes every column of an existing package.
	Save(ctx context.Context, p *models.CateringPackage) error
	SetImage(ctx context.Context, id int64, url string) error
	Delete(ctx context.Context, id int64) error
}

type MenuItemRepository interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
	Create(ctx context.Context, m *models.MenuItem) error
	Save(ctx context.Context, m *models.MenuItem) error
	SetImage(ctx context.Context, id int64, url string) error
	Delete(ctx context.Context, id int64) error
}
