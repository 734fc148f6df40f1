package offer

import (
	"context"
	"strings"

	"catering/models"
	"catering/utils"

	"go.uber.org/zap"
)

// menuImagePrefix keeps menu item objects apart from package objects in the bucket.
const menuImagePrefix = "menu-"

func (s *DefaultCatalogService) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.MenuItems.List(ctx)
	if err != nil {
		return nil, utils.StoreError("getMenuItems", err)
	}
	return items, nil
}

func (s *DefaultCatalogService) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	m, err := s.MenuItems.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("getMenuItem", "menu item", err)
	}
	return m, nil
}

func (s *DefaultCatalogService) CreateMenuItem(ctx context.Context, input models.MenuItemInput) (*models.MenuItem, error) {
	const op = "addMenuItem"
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return nil, utils.ValidationError(op, "name is required and price must not be negative")
	}

	var img *imagePayload
	if input.Image != "" {
		var err error
		if img, err = decodeImage(op, input.Image); err != nil {
			return nil, err
		}
	}

	m := &models.MenuItem{Name: input.Name, Price: input.Price}
	if err := s.MenuItems.Create(ctx, m); err != nil {
		return nil, utils.StoreError(op, err)
	}
	if img == nil {
		return m, nil
	}

	url, err := s.attachImage(ctx, op, menuImagePrefix, m.ID, img, false)
	if err == nil {
		if err = s.MenuItems.SetImage(ctx, m.ID, url); err != nil {
			err = utils.UploadError(op, err)
		}
	}
	if err != nil {
		utils.GetLogger().Error("Menu item saved without image", zap.Int64("id", m.ID), zap.Error(err))
		return m, err
	}
	m.Image = url
	return m, nil
}

func (s *DefaultCatalogService) UpdateMenuItem(ctx context.Context, id int64, patch models.MenuItemPatch) (*models.MenuItem, error) {
	const op = "updateMenuItem"
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, utils.ValidationError(op, "name is required")
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, utils.ValidationError(op, "price must not be negative")
	}

	var img *imagePayload
	if patch.Image != "" && !isRemoteURL(patch.Image) {
		var err error
		if img, err = decodeImage(op, patch.Image); err != nil {
			return nil, err
		}
	}

	m, err := s.MenuItems.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(op, "menu item", err)
	}
	patch.Apply(m)
	if err := s.MenuItems.Save(ctx, m); err != nil {
		return nil, storeErr(op, "menu item", err)
	}
	if img == nil {
		return m, nil
	}

	url, err := s.attachImage(ctx, op, menuImagePrefix, m.ID, img, true)
	if err == nil {
		if err = s.MenuItems.SetImage(ctx, m.ID, url); err != nil {
			err = utils.UploadError(op, err)
		}
	}
	if err != nil {
		utils.GetLogger().Error("Menu item updated without new image", zap.Int64("id", m.ID), zap.Error(err))
		return m, err
	}
	m.Image = url
	return m, nil
}

func (s *DefaultCatalogService) DeleteMenuItem(ctx context.Context, id int64) error {
	if err := s.MenuItems.Delete(ctx, id); err != nil {
		return storeErr("deleteMenuItem", "menu item", err)
	}
	return nil
}
