package handlers

import (
	"net/http"
	"testing"

	"art-marketplace-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_AddItemAndView(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/cart/items", "sess-1", map[string]int{"listing_id": 1})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp cartResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, "Added to cart!", resp.Message)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 1, resp.Lines[0].Quantity)

	// Adding the same piece again bumps the quantity, not the line count
	rr = env.do(t, http.MethodPost, "/api/cart/items", "sess-1", map[string]int{"listing_id": 1})
	require.Equal(t, http.StatusOK, rr.Code)
	decodeBody(t, rr, &resp)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 2, resp.Lines[0].Quantity)
	assert.Equal(t, resp.Lines[0].Subtotal, resp.Total)

	rr = env.do(t, http.MethodGet, "/api/cart", "sess-1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	resp = cartResponse{}
	decodeBody(t, rr, &resp)
	assert.Empty(t, resp.Message)
	assert.Equal(t, 1, resp.ItemCount)
}

func TestCartHandler_AddItem_UnknownListing(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/cart/items", "sess-1", map[string]int{"listing_id": 42})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCartHandler_AdjustQuantity(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.carts.AddItem("sess-1", 1)
	require.NoError(t, err)

	rr := env.do(t, http.MethodPatch, "/api/cart/items/1", "sess-1", map[string]int{"delta": 2})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp cartResponse
	decodeBody(t, rr, &resp)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 3, resp.Lines[0].Quantity)

	// Decrementing to zero drops the line
	rr = env.do(t, http.MethodPatch, "/api/cart/items/1", "sess-1", map[string]int{"delta": -3})
	require.Equal(t, http.StatusOK, rr.Code)
	decodeBody(t, rr, &resp)
	assert.Empty(t, resp.Lines)

	// Unknown ids are a quiet no-op
	rr = env.do(t, http.MethodPatch, "/api/cart/items/42", "sess-1", map[string]int{"delta": 1})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCartHandler_Checkout(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.carts.AddItem("sess-1", 1)
	require.NoError(t, err)
	_, err = env.carts.AddItem("sess-1", 2)
	require.NoError(t, err)
	wantTotal := env.carts.Get("sess-1").Total()

	rr := env.do(t, http.MethodPost, "/api/checkout", "sess-1", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Message string        `json:"message"`
		Order   *models.Order `json:"order"`
	}
	decodeBody(t, rr, &resp)

	assert.Equal(t, "Order placed successfully!", resp.Message)
	assert.Equal(t, 1, resp.Order.ID)
	assert.Equal(t, 2, resp.Order.LineCount())
	assert.Equal(t, wantTotal, resp.Order.Total)

	// The cart is emptied and the ledger holds the order
	assert.True(t, env.carts.Get("sess-1").IsEmpty())
	assert.Equal(t, 1, env.orders.Count())
}

func TestCartHandler_Checkout_EmptyCart(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/checkout", "sess-1", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, 0, env.orders.Count())
}
