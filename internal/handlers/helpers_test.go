package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"art-marketplace-platform/internal/middleware"
	"art-marketplace-platform/internal/models"
	"art-marketplace-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
)

// testEnv wires real in-memory services behind a chi router, the same shape
// the server binary uses minus cookies and CSRF. Requests are authenticated
// by injecting the user and session id directly into the request context.
type testEnv struct {
	router  *chi.Mux
	catalog *services.CatalogService
	carts   *services.CartService
	orders  *services.OrderService
	auction *services.AuctionService
	auth    *services.AuthService
	store   sessions.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog := services.NewCatalogService(services.SeedListings(), services.SeedAuctionListing())
	carts := services.NewCartService(catalog)
	payments := services.NewMockPaymentService("test")
	orders := services.NewOrderService(catalog, carts, payments)
	auction := services.NewAuctionService(catalog.AuctionListing())
	auth := services.NewAuthService()
	store := sessions.NewCookieStore([]byte("test-secret-key-for-handlers"))

	authHandler := NewAuthHandler(auth, carts, store)
	catalogHandler := NewCatalogHandler(catalog)
	cartHandler := NewCartHandler(carts, orders)
	orderHandler := NewOrderHandler(orders)
	auctionHandler := NewAuctionHandler(auction)

	r := chi.NewRouter()
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/logout", authHandler.Logout)
	r.Get("/api/listings", catalogHandler.List)
	r.Get("/api/listings/{id}", catalogHandler.Detail)
	r.Post("/api/listings", catalogHandler.Create)
	r.Get("/api/cart", cartHandler.View)
	r.Post("/api/cart/items", cartHandler.AddItem)
	r.Patch("/api/cart/items/{id}", cartHandler.AdjustQuantity)
	r.Post("/api/checkout", cartHandler.Checkout)
	r.Post("/api/listings/{id}/buy", orderHandler.BuyNow)
	r.Get("/api/orders", orderHandler.History)
	r.Get("/api/auction", auctionHandler.State)
	r.Post("/api/auction/bids", auctionHandler.PlaceBid)

	return &testEnv{
		router:  r,
		catalog: catalog,
		carts:   carts,
		orders:  orders,
		auction: auction,
		auth:    auth,
		store:   store,
	}
}

// do sends a JSON request as the given session, or anonymously when sessionID
// is empty
func (e *testEnv) do(t *testing.T, method, target, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if sessionID != "" {
		ctx := middleware.SetSessionContext(req.Context(), sessionID)
		ctx = middleware.SetUserContext(ctx, &models.User{ID: 1, Email: "buyer@example.com", Role: models.RoleBuyer})
		req = req.WithContext(ctx)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rr.Body).Decode(dst))
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation failure", err: models.NewValidationError("price", "price is required"), wantStatus: http.StatusUnprocessableEntity},
		{name: "rejected bid", err: &models.BidError{Bid: "1", CurrentPrice: 100, Reason: "too low"}, wantStatus: http.StatusUnprocessableEntity},
		{name: "missing listing", err: models.ErrListingNotFound, wantStatus: http.StatusNotFound},
		{name: "empty cart", err: models.ErrEmptyCart, wantStatus: http.StatusConflict},
		{name: "missing session", err: models.ErrSessionNotFound, wantStatus: http.StatusUnauthorized},
		{name: "bad input", err: models.ErrInvalidInput, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			respondError(rr, tt.err)
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
