// internal/httpserver/server.go
//
// HTTP server wiring for the recipe API.
// Responsibilities:
//   - Router + middleware (JSON, request logging, metrics, panic recovery,
//     request IDs, timeouts).
//   - Public endpoints: "/", "/health", "/metrics", "/auth/registro",
//     "/auth/login".
//   - Protected endpoints (bearer token): "/usuario", "/receitas".
//
// Notes:
//   - The auth middleware verifies the token exactly once and attaches the
//     subject user id to the request context; handlers read it from there.
//   - All error bodies are {"msg": "..."}.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lfreitas/receitas-api/internal/auth"
	"github.com/lfreitas/receitas-api/internal/config"
	"github.com/lfreitas/receitas-api/internal/store"
)

// Server bundles router, configuration, credential store, and token manager.
type Server struct {
	r      *chi.Mux
	cfg    config.Config
	store  store.Store
	tokens *auth.TokenManager
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, st store.Store) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		cfg:    cfg,
		store:  st,
		tokens: auth.NewTokenManager(cfg.Secret),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(requestLogger)
	s.r.Use(requestMetrics)

	// --- public ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeMsg(w, http.StatusOK, "welcome to our API")
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.r.Route("/auth", func(r chi.Router) {
		r.Post("/registro", s.handleRegister)
		r.Post("/login", s.handleLogin)
	})

	// --- protected ---
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireAuth())
		r.Get("/usuario", s.handleProfile)
		r.Get("/receitas", s.handleListRecipes)
		r.Post("/receitas", s.handleAddRecipe)
		r.Delete("/receitas/{idReceita}", s.handleDeleteRecipe)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMsg(w, http.StatusNotFound, "not found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- responses -----------------------------------

type msgResponse struct {
	Msg string `json:"msg"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMsg writes the API's standard {"msg": ...} body.
func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, msgResponse{Msg: msg})
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}
