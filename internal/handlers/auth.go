package handlers

import (
	"net/http"

	"art-marketplace-platform/internal/middleware"
	"art-marketplace-platform/internal/services"

	"github.com/gorilla/sessions"
)

// AuthHandler handles login and logout requests
type AuthHandler struct {
	authService services.AuthServiceInterface
	cartService services.CartServiceInterface
	store       sessions.Store
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface, cartService services.CartServiceInterface, store sessions.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cartService: cartService,
		store:       store,
	}
}

// loginResponse is returned after a successful login
type loginResponse struct {
	Message   string `json:"message"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CSRFToken string `json:"csrf_token"`
}

// Login opens a session for the given email and role
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		// A tampered cookie yields an error plus a fresh session; use it
		session, _ = h.store.New(r, middleware.SessionName)
	}

	csrfToken := middleware.GenerateCSRFToken()
	session.Values["session_id"] = resp.SessionID
	session.Values["csrf_token"] = csrfToken
	if err := session.Save(r, w); err != nil {
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save session"})
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Message:   "Welcome to ArtVault, " + resp.User.Email + "!",
		Email:     resp.User.Email,
		Role:      string(resp.User.Role),
		CSRFToken: csrfToken,
	})
}

// Logout destroys the session and clears its cart
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionIDFromContext(r.Context())
	if sessionID != "" {
		h.cartService.Clear(sessionID)
		h.authService.Logout(sessionID)
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err == nil {
		session.Values["session_id"] = nil
		session.Values["csrf_token"] = nil
		session.Options.MaxAge = -1
		session.Save(r, w)
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
