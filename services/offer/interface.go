package offer

import (
	"context"
	"time"

	offerRepo "catering/database/repository/offer"
	"catering/models"
	"catering/services/storage"

	"github.com/go-playground/validator/v10"
)

// DefaultSignedURLTTL is how long an attached image URL stays valid.
const DefaultSignedURLTTL = 365 * 24 * time.Hour

type CatalogService interface {
	ListPackages(ctx context.Context) ([]models.CateringPackage, error)
	GetPackage(ctx context.Context, id int64) (*models.CateringPackage, error)
	CreatePackage(ctx context.Context, input models.PackageInput) (*models.CateringPackage, error)
	UpdatePackage(ctx context.Context, id int64, patch models.PackagePatch) (*models.CateringPackage, error)
	DeletePackage(ctx context.Context, id int64) error

	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, input models.MenuItemInput) (*models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, patch models.MenuItemPatch) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
}

// DefaultCatalogService is the production implementation. Storage may be nil,
// in which case any request carrying an image fails with an upload error.
type DefaultCatalogService struct {
	Packages     offerRepo.PackageRepository
	MenuItems    offerRepo.MenuItemRepository
	Storage      storage.StorageService
	SignedURLTTL time.Duration

	validate *validator.Validate
}

func NewCatalogService(packages offerRepo.PackageRepository, items offerRepo.MenuItemRepository, store storage.StorageService, ttl time.Duration) *DefaultCatalogService {
	if ttl <= 0 {
		ttl = DefaultSignedURLTTL
	}
	return &DefaultCatalogService{
		Packages:     packages,
		MenuItems:    items,
		Storage:      store,
		SignedURLTTL: ttl,
		validate:     validator.New(),
	}
}
