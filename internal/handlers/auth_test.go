package handlers

import (
	"net/http"
	"testing"

	"art-marketplace-platform/internal/models"
	"art-marketplace-platform/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "buyer@example.com",
		"password": "secret",
		"role":     "buyer",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp loginResponse
	decodeBody(t, rr, &resp)

	assert.Equal(t, "Welcome to ArtVault, buyer@example.com!", resp.Message)
	assert.Equal(t, "buyer@example.com", resp.Email)
	assert.Equal(t, "buyer", resp.Role)
	assert.NotEmpty(t, resp.CSRFToken)

	// A session cookie is set on the response
	assert.NotEmpty(t, rr.Result().Cookies())
}

func TestAuthHandler_Login_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{
			name: "missing role",
			body: map[string]string{"email": "a@b.com", "password": "pw"},
		},
		{
			name: "missing email",
			body: map[string]string{"password": "pw", "role": "buyer"},
		},
		{
			name: "missing password",
			body: map[string]string{"email": "a@b.com", "role": "seller"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rr := env.do(t, http.MethodPost, "/auth/login", "", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

			var resp errorResponse
			decodeBody(t, rr, &resp)
			assert.NotEmpty(t, resp.Error)
			assert.NotEmpty(t, resp.Field)
		})
	}
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do(t, http.MethodPost, "/auth/login", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAuthHandler_Logout_ClearsSessionAndCart(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.Login(&services.LoginRequest{
		Email:    "buyer@example.com",
		Password: "pw",
		Role:     models.RoleBuyer,
	})
	require.NoError(t, err)

	_, err = env.carts.AddItem(resp.SessionID, 1)
	require.NoError(t, err)

	rr := env.do(t, http.MethodPost, "/auth/logout", resp.SessionID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	// The session is gone and its cart emptied
	_, err = env.auth.ValidateSession(resp.SessionID)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	assert.True(t, env.carts.Get(resp.SessionID).IsEmpty())
}
