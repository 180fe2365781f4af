package handlers

import (
	"net/http"

	"hiltim-backend/internal/models"
	"hiltim-backend/internal/utils"
)

// CatalogHandler serves the static room and package catalogs shown on
// the site pages.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Rooms handles GET /api/rooms
// @Summary Room catalog with nightly rates
// @Tags catalog
// @Produce json
// @Success 200 {array} models.RoomType
// @Router /api/rooms [get]
func (h *CatalogHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, models.RoomTypes)
}

// ActivityPackages handles GET /api/packages/activities
// @Summary Activity package catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Package
// @Router /api/packages/activities [get]
func (h *CatalogHandler) ActivityPackages(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, models.ActivityPackages)
}

// AmenityPackages handles GET /api/packages/amenities
// @Summary Amenity package catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Package
// @Router /api/packages/amenities [get]
func (h *CatalogHandler) AmenityPackages(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, models.AmenityPackages)
}
