package offer

import (
	"context"
	"errors"
	"strings"

	"catering/database"
	"catering/models"
	"catering/utils"

	"go.uber.org/zap"
)

func storeErr(op, what string, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return utils.NotFoundError(op, what+" not found")
	}
	return utils.StoreError(op, err)
}

func (s *DefaultCatalogService) ListPackages(ctx context.Context) ([]models.CateringPackage, error) {
	packages, err := s.Packages.List(ctx)
	if err != nil {
		return nil, utils.StoreError("getOffers", err)
	}
	return packages, nil
}

func (s *DefaultCatalogService) GetPackage(ctx context.Context, id int64) (*models.CateringPackage, error) {
	p, err := s.Packages.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("getOffer", "package", err)
	}
	return p, nil
}

// CreatePackage inserts the row, then attaches the optional image. When the image
// step fails the committed package is returned together with the upload error.
func (s *DefaultCatalogService) CreatePackage(ctx context.Context, input models.PackageInput) (*models.CateringPackage, error) {
	const op = "addCateringItem"
	input.Title = strings.TrimSpace(input.Title)
	if err := s.validate.Struct(input); err != nil {
		return nil, utils.ValidationError(op, "title is required and prices must not be negative")
	}

	var img *imagePayload
	if input.Image != "" {
		var err error
		if img, err = decodeImage(op, input.Image); err != nil {
			return nil, err
		}
	}

	p := &models.CateringPackage{
		Title:       input.Title,
		Description: input.Description,
		Attributes:  input.Attributes,
		Foods:       input.Foods,
		Desserts:    input.Desserts,
		Price:       input.Price,
		MinPrice:    input.MinPrice,
	}
	if err := s.Packages.Create(ctx, p); err != nil {
		return nil, utils.StoreError(op, err)
	}
	if img == nil {
		return p, nil
	}

	url, err := s.attachImage(ctx, op, "", p.ID, img, false)
	if err == nil {
		if err = s.Packages.SetImage(ctx, p.ID, url); err != nil {
			err = utils.UploadError(op, err)
		}
	}
	if err != nil {
		utils.GetLogger().Error("Package saved without image", zap.Int64("id", p.ID), zap.Error(err))
		return p, err
	}
	p.Image = url
	return p, nil
}

func (s *DefaultCatalogService) UpdatePackage(ctx context.Context, id int64, patch models.PackagePatch) (*models.CateringPackage, error) {
	const op = "updateCateringItem"
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, utils.ValidationError(op, "title is required")
	}
	if (patch.Price != nil && *patch.Price < 0) || (patch.MinPrice != nil && *patch.MinPrice < 0) {
		return nil, utils.ValidationError(op, "prices must not be negative")
	}

	var img *imagePayload
	if patch.Image != "" && !isRemoteURL(patch.Image) {
		var err error
		if img, err = decodeImage(op, patch.Image); err != nil {
			return nil, err
		}
	}

	p, err := s.Packages.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(op, "package", err)
	}
	patch.Apply(p)
	if err := s.Packages.Save(ctx, p); err != nil {
		return nil, storeErr(op, "package", err)
	}
	if img == nil {
		return p, nil
	}

	url, err := s.attachImage(ctx, op, "", p.ID, img, true)
	if err == nil {
		if err = s.Packages.SetImage(ctx, p.ID, url); err != nil {
			err = utils.UploadError(op, err)
		}
	}
	if err != nil {
		utils.GetLogger().Error("Package updated without new image", zap.Int64("id", p.ID), zap.Error(err))
		return p, err
	}
	p.Image = url
	return p, nil
}

func (s *DefaultCatalogService) DeletePackage(ctx context.Context, id int64) error {
	if err := s.Packages.Delete(ctx, id); err != nil {
		return storeErr("deleteCateringItem", "package", err)
	}
	return nil
}
