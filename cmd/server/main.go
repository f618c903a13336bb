package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"art-marketplace-platform/internal/config"
	"art-marketplace-platform/internal/handlers"
	"art-marketplace-platform/internal/middleware"
	"art-marketplace-platform/internal/models"
	"art-marketplace-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400, // 1 day; the engine holds no state beyond the session
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize the engine stores
	catalogService := services.NewCatalogService(services.SeedListings(), services.SeedAuctionListing())
	cartService := services.NewCartService(catalogService)
	paymentService := services.NewMockPaymentService(cfg.Payment.Environment)
	orderService := services.NewOrderService(catalogService, cartService, paymentService)
	auctionService := services.NewAuctionService(catalogService.AuctionListing())
	authService := services.NewAuthService()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService, sessionStore)
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore)
	loginRateLimiter := middleware.NewRateLimiter(10, 15*time.Minute)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cartService, sessionStore)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, orderService)
	orderHandler := handlers.NewOrderHandler(orderService)
	auctionHandler := handlers.NewAuctionHandler(auctionService)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.SecureHeaders)
	r.Use(authMiddleware.LoadUser)

	r.NotFound(middleware.NotFoundHandler().ServeHTTP)

	// Auth routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitLogin(loginRateLimiter))
		r.Post("/auth/login", authHandler.Login)
	})
	r.Post("/auth/logout", authHandler.Logout)

	// Authenticated API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Use(sessionMiddleware.RequireCSRF)

		// Catalog browsing is open to both roles
		r.Get("/listings", catalogHandler.List)
		r.Get("/listings/{id}", catalogHandler.Detail)

		// Seller surface
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireRole(models.RoleSeller))
			r.Post("/listings", catalogHandler.Create)
		})

		// Buyer surface
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireRole(models.RoleBuyer))
			r.Get("/cart", cartHandler.View)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Patch("/cart/items/{id}", cartHandler.AdjustQuantity)
			r.Post("/checkout", cartHandler.Checkout)
			r.Post("/listings/{id}/buy", orderHandler.BuyNow)
			r.Get("/orders", orderHandler.History)
			r.Get("/auction", auctionHandler.State)
			r.Post("/auction/bids", auctionHandler.PlaceBid)
		})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("ArtVault marketplace listening on http://%s (%s)", addr, cfg.Server.Env)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
