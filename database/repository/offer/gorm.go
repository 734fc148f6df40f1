package offerRepo

import (
	"context"
	"errors"
	"fmt"

	"catering/database"
	"catering/models"

	"gorm.io/gorm"
)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.ErrNotFound
	}
	return err
}

func exists(tx *gorm.DB, model interface{}, id int64) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return database.ErrNotFound
	}
	return nil
}

func affected(result *gorm.DB, what string, id int64) error {
	if result.Error != nil {
		return fmt.Errorf("failed to write %s %d: %w", what, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// GormPackageRepo implements PackageRepository on a relational database.
type GormPackageRepo struct {
	db *gorm.DB
}

func NewGormPackageRepo(db *gorm.DB) PackageRepository {
	return &GormPackageRepo{db: db}
}

func (r *GormPackageRepo) List(ctx context.Context) ([]models.CateringPackage, error) {
	packages := []models.CateringPackage{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&packages).Error; err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return packages, nil
}

func (r *GormPackageRepo) GetByID(ctx context.Context, id int64) (*models.CateringPackage, error) {
	var p models.CateringPackage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *GormPackageRepo) Create(ctx context.Context, p *models.CateringPackage) error {
	p.ID = 0
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

func (r *GormPackageRepo) Save(ctx context.Context, p *models.CateringPackage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.CateringPackage{}, p.ID); err != nil {
			return err
		}
		return tx.Save(p).Error
	})
}

func (r *GormPackageRepo) SetImage(ctx context.Context, id int64, url string) error {
	result := r.db.WithContext(ctx).Model(&models.CateringPackage{}).Where("id = ?", id).Update("image", url)
	return affected(result, "package image", id)
}

func (r *GormPackageRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CateringPackage{})
	return affected(result, "package", id)
}

// GormMenuItemRepo implements MenuItemRepository on a relational database.
type GormMenuItemRepo struct {
	db *gorm.DB
}

func NewGormMenuItemRepo(db *gorm.DB) MenuItemRepository {
	return &GormMenuItemRepo{db: db}
}

func (r *GormMenuItemRepo) List(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

func (r *GormMenuItemRepo) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	var m models.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func (r *GormMenuItemRepo) Create(ctx context.Context, m *models.MenuItem) error {
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (r *GormMenuItemRepo) Save(ctx context.Context, m *models.MenuItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.MenuItem{}, m.ID); err != nil {
			return err
		}
		return tx.Save(m).Error
	})
}

func (r *GormMenuItemRepo) SetImage(ctx context.Context, id int64, url string) error {
	result := r.db.WithContext(ctx).Model(&models.MenuItem{}).Where("id = ?", id).Update("image", url)
	return affected(result, "menu item image", id)
}

func (r *GormMenuItemRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MenuItem{})
	return affected(result, "menu item", id)
}
