package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		// Static catalogues
		r.Get("/roles", s.handleListRoles)
		r.Get("/keys", s.handleListKeys)
		r.Get("/values", s.handleListValues)

		// Per-role property surface
		r.Route("/devices/{role}", func(r chi.Router) {
			r.Get("/history", s.handleRoleHistory)

			// Commissioning: rewire role assignments at runtime
			r.Put("/assignment", s.handleAssignRole)
			r.Delete("/assignment", s.handleUnassignRole)

			r.Route("/properties/{key}", func(r chi.Router) {
				r.Get("/", s.handleGetProperty)
				r.Put("/", s.handleSetProperty)
				r.Get("/exists", s.handlePropertyExists)
			})
		})

		// WebSocket property change feed
		r.Get("/ws", s.handleWebSocket)
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
