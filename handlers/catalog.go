package handlers

import (
	"net/http"

	"catering/models"
	"catering/services/offer"
	"catering/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves catering packages and menu items.
type CatalogHandler struct {
	Catalog offer.CatalogService
}

func NewCatalogHandler(svc offer.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// respondWrite reports a create or update. An upload failure after the row was
// saved still carries the saved row.
func respondWrite(c *gin.Context, status int, row interface{}, err error) {
	if err != nil {
		if utils.KindOf(err) == utils.KindUpload {
			utils.JSONError(c, err, row)
			return
		}
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, status, row)
}

func (h *CatalogHandler) ListPackagesHandler(c *gin.Context) {
	rows, err := h.Catalog.ListPackages(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, rows)
}

func (h *CatalogHandler) GetPackageHandler(c *gin.Context) {
	id, err := idParam(c, "getPackage")
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	p, err := h.Catalog.GetPackage(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, p)
}

func (h *CatalogHandler) CreatePackageHandler(c *gin.Context) {
	var input models.PackageInput
	if err := bindJSON(c, "addPackage", &input); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	p, err := h.Catalog.CreatePackage(c.Request.Context(), input)
	respondWrite(c, http.StatusCreated, p, err)
}

func (h *CatalogHandler) UpdatePackageHandler(c *gin.Context) {
	const op = "updatePackage"
	id, err := idParam(c, op)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	var patch models.PackagePatch
	if err := bindJSON(c, op, &patch); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	p, err := h.Catalog.UpdatePackage(c.Request.Context(), id, patch)
	respondWrite(c, http.StatusOK, p, err)
}

func (h *CatalogHandler) DeletePackageHandler(c *gin.Context) {
	id, err := idParam(c, "deletePackage")
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	if err := h.Catalog.DeletePackage(c.Request.Context(), id); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, nil)
}

func (h *CatalogHandler) ListMenuItemsHandler(c *gin.Context) {
	rows, err := h.Catalog.ListMenuItems(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, rows)
}

func (h *CatalogHandler) GetMenuItemHandler(c *gin.Context) {
	id, err := idParam(c, "getMenuItem")
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	m, err := h.Catalog.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, m)
}

func (h *CatalogHandler) CreateMenuItemHandler(c *gin.Context) {
	var input models.MenuItemInput
	if err := bindJSON(c, "addMenuItem", &input); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	m, err := h.Catalog.CreateMenuItem(c.Request.Context(), input)
	respondWrite(c, http.StatusCreated, m, err)
}

func (h *CatalogHandler) UpdateMenuItemHandler(c *gin.Context) {
	const op = "updateMenuItem"
	id, err := idParam(c, op)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	var patch models.MenuItemPatch
	if err := bindJSON(c, op, &patch); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	m, err := h.Catalog.UpdateMenuItem(c.Request.Context(), id, patch)
	respondWrite(c, http.StatusOK, m, err)
}

func (h *CatalogHandler) DeleteMenuItemHandler(c *gin.Context) {
	id, err := idParam(c, "deleteMenuItem")
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	if err := h.Catalog.DeleteMenuItem(c.Request.Context(), id); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, nil)
}
