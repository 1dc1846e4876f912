package router

import (
	"net/http"

	"stock-admin/internal/handler"
	"stock-admin/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers the router dispatches to.
type Handlers struct {
	Auth     *handler.AuthHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Admin    *handler.AdminHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, verifier middleware.TokenVerifier, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("POST /login", h.Auth.Login)

	mux.HandleFunc("GET /categories", h.Category.List)
	mux.HandleFunc("POST /categories", h.Category.Create)
	mux.HandleFunc("PUT /categories/{id}", h.Category.Update)
	mux.HandleFunc("DELETE /categories/{id}", h.Category.Delete)

	mux.HandleFunc("GET /products", h.Product.List)
	mux.HandleFunc("POST /products", h.Product.Create)
	mux.HandleFunc("GET /products/{id}", h.Product.GetByID)
	mux.HandleFunc("PUT /products/{id}", h.Product.Update)
	mux.HandleFunc("DELETE /products/{id}", h.Product.Delete)

	mux.HandleFunc("POST /admin/refill-mocks", h.Admin.RefillMocks)
	mux.HandleFunc("DELETE /admin/clear-data", h.Admin.ClearData)

	// Apply middleware in order: Recovery -> Logging -> RequestID -> CORS -> BearerAuth
	var handler http.Handler = mux
	handler = middleware.BearerAuth(verifier, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
