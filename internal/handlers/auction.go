package handlers

import (
	"net/http"

	"art-marketplace-platform/internal/services"
)

// AuctionHandler handles live auction requests
type AuctionHandler struct {
	auctionService services.AuctionServiceInterface
}

// NewAuctionHandler creates a new auction handler
func NewAuctionHandler(auctionService services.AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{auctionService: auctionService}
}

// State returns the current auction state
func (h *AuctionHandler) State(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.auctionService.State())
}

// bidRequest carries the raw bid amount as entered by the bidder
type bidRequest struct {
	Amount string `json:"amount"`
}

// PlaceBid places a bid; the amount must be numeric and strictly greater
// than the current price
func (h *AuctionHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	var req bidRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	state, err := h.auctionService.PlaceBid(req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Bid placed successfully!",
		"auction": state,
	})
}
