package offerRepo

import (
	"context"
	"fmt"
	"testing"

	"catering/database"
	"catering/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) (PackageRepository, MenuItemRepository) {
	t.Helper()
	db, err := database.OpenGorm("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewGormPackageRepo(db), NewGormMenuItemRepo(db)
}

func TestGormPackageLifecycle(t *testing.T) {
	packages, _ := openSQLite(t)
	ctx := context.Background()

	p := models.CateringPackage{
		Title:    "Fiesta",
		Foods:    []string{"Lechon", "Pancit"},
		Desserts: []string{"Leche flan"},
		Price:    450,
		MinPrice: 300,
	}
	require.NoError(t, packages.Create(ctx, &p))
	require.NotZero(t, p.ID)

	got, err := packages.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lechon", "Pancit"}, got.Foods)

	got.Title = "Grand Fiesta"
	require.NoError(t, packages.Save(ctx, got))
	require.NoError(t, packages.SetImage(ctx, p.ID, "https://cdn/1.png"))

	all, err := packages.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Grand Fiesta", all[0].Title)
	assert.Equal(t, "https://cdn/1.png", all[0].Image)

	missing := models.CateringPackage{ID: p.ID + 1, Title: "ghost"}
	assert.ErrorIs(t, packages.Save(ctx, &missing), database.ErrNotFound)

	require.NoError(t, packages.Delete(ctx, p.ID))
	assert.ErrorIs(t, packages.Delete(ctx, p.ID), database.ErrNotFound)
}

func TestGormMenuItemLifecycle(t *testing.T) {
	_, items := openSQLite(t)
	ctx := context.Background()

	m := models.MenuItem{Name: "Kare-kare", Price: 120}
	require.NoError(t, items.Create(ctx, &m))

	_, err := items.GetByID(ctx, m.ID+5)
	assert.ErrorIs(t, err, database.ErrNotFound)

	assert.ErrorIs(t, items.SetImage(ctx, m.ID+5, "x"), database.ErrNotFound)
	require.NoError(t, items.Delete(ctx, m.ID))
}
