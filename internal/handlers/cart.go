package handlers

import (
	"net/http"
	"strconv"

	"art-marketplace-platform/internal/middleware"
	"art-marketplace-platform/internal/models"
	"art-marketplace-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// CartHandler handles shopping cart and checkout requests
type CartHandler struct {
	cartService  services.CartServiceInterface
	orderService services.OrderServiceInterface
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService services.CartServiceInterface, orderService services.OrderServiceInterface) *CartHandler {
	return &CartHandler{
		cartService:  cartService,
		orderService: orderService,
	}
}

// cartResponse is the JSON shape of the cart for the presentation layer
type cartResponse struct {
	Message   string     `json:"message,omitempty"`
	Lines     []cartLine `json:"lines"`
	ItemCount int        `json:"item_count"`
	Total     int64      `json:"total"`
}

type cartLine struct {
	Listing  *models.Listing `json:"listing"`
	Quantity int             `json:"quantity"`
	Subtotal int64           `json:"subtotal"`
}

func newCartResponse(cart *models.Cart, message string) cartResponse {
	resp := cartResponse{
		Message:   message,
		Lines:     make([]cartLine, 0, len(cart.Lines)),
		ItemCount: cart.ItemCount(),
		Total:     cart.Total(),
	}

	for i := range cart.Lines {
		resp.Lines = append(resp.Lines, cartLine{
			Listing:  cart.Lines[i].Listing,
			Quantity: cart.Lines[i].Quantity,
			Subtotal: cart.Lines[i].Subtotal(),
		})
	}

	return resp
}

// View returns the session's cart with its running total
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionIDFromContext(r.Context())
	cart := h.cartService.Get(sessionID)
	respondJSON(w, http.StatusOK, newCartResponse(cart, ""))
}

// addItemRequest asks for one unit of a listing
type addItemRequest struct {
	ListingID int `json:"listing_id"`
}

// AddItem adds one unit of a listing to the cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	sessionID := middleware.GetSessionIDFromContext(r.Context())
	cart, err := h.cartService.AddItem(sessionID, req.ListingID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newCartResponse(cart, "Added to cart!"))
}

// adjustRequest changes a line quantity by a signed delta
type adjustRequest struct {
	Delta int `json:"delta"`
}

// AdjustQuantity applies a quantity delta to the cart line for the listing in
// the URL. A line decremented to zero disappears; unknown listings are a
// no-op.
func (h *CartHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, models.ErrInvalidInput)
		return
	}

	var req adjustRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	sessionID := middleware.GetSessionIDFromContext(r.Context())
	cart := h.cartService.AdjustQuantity(sessionID, listingID, req.Delta)
	respondJSON(w, http.StatusOK, newCartResponse(cart, ""))
}

// Checkout turns the whole cart into an order and empties the cart
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionIDFromContext(r.Context())

	order, err := h.orderService.Checkout(sessionID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Order placed successfully!",
		"order":   order,
	})
}
