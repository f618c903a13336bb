package handlers

import (
	"net/http"
	"strconv"

	"art-marketplace-platform/internal/models"
	"art-marketplace-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler handles catalog browsing and seller listing requests
type CatalogHandler struct {
	catalogService services.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService services.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List returns the full catalog in insertion order
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"listings": h.catalogService.List(),
	})
}

// Detail returns a single listing
func (h *CatalogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, models.ErrListingNotFound)
		return
	}

	listing, err := h.catalogService.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, listing)
}

// Create lists a new piece for the selling session
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.ListingDraft
	if err := decodeJSON(r, &draft); err != nil {
		respondError(w, err)
		return
	}

	listing, err := h.catalogService.CreateListing(&draft)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Art piece added successfully!",
		"listing": listing,
	})
}
