package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/verification-api/internal/application/verification"
	"github.com/verification-api/internal/config"
	"github.com/verification-api/internal/transport/http/handler"
	appmiddleware "github.com/verification-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.Recover)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-API-Key"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Applied to the write endpoint only; reads are cheap O(1) lookups.
	writeRL := appmiddleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	verificationSvc := verification.NewService(deps.VerificationRepo)

	healthH := handler.NewHealthHandler()
	verificationH := handler.NewVerificationHandler(verificationSvc)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusNotFound, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// ── Public routes (no shared secret) ─────────────────────────────────
	r.Get("/", healthH.Index)
	r.Get("/api/health", healthH.Check)

	// ── Gated routes ─────────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.APIKey(cfg.APIKey))

		r.With(writeRL.Limit).Post("/api/verification", verificationH.Post)
		r.Get("/api/verification/{username}", verificationH.Get)
		r.Delete("/api/verification/{username}", verificationH.Delete)
	})

	return r
}

// writeEnvelope covers the router-level error hooks, which fire outside any
// handler and therefore cannot use the handler package's helpers.
func writeEnvelope(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"returnCode": status,
		"response":   msg,
	})
}
