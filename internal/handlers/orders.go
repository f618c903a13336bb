package handlers

import (
	"net/http"
	"strconv"

	"art-marketplace-platform/internal/models"
	"art-marketplace-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// OrderHandler handles buy-now and order history requests
type OrderHandler struct {
	orderService services.OrderServiceInterface
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService services.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// BuyNow places a quantity-1 order for the listing in the URL
func (h *OrderHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, models.ErrListingNotFound)
		return
	}

	order, err := h.orderService.BuyNow(listingID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Purchase completed!",
		"order":   order,
	})
}

// History returns the order ledger, oldest first
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"orders": h.orderService.History(),
	})
}
