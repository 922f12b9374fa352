/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. zerolog:    Structured request logging
  4. CORS:       Cross-origin requests for clients

ROUTE GROUPS:
  /api/employees/*      Employees, accrual, ledger, bonus, settlement
  /api/vacations/*      Vacation record deletion
  /api/absences/*       Absence record deletion
  /api/payroll/*        Receipt generation
  /api/rules            Effective statutory configuration

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Employee routes
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Get("/{id}/vacation", h.GetVacationSummary)
			r.Get("/{id}/vacations", h.ListVacations)
			r.Post("/{id}/vacations", h.RegisterVacation)
			r.Get("/{id}/absences", h.ListAbsences)
			r.Post("/{id}/absences", h.RegisterAbsence)
			r.Get("/{id}/bonus", h.GetBonus)
			r.Post("/{id}/bonus/pay", h.MarkBonusPaid)
			r.Post("/{id}/settlement", h.ComputeSettlement)
			r.Get("/{id}/receipts", h.ListReceipts)
		})

		// Ledger record routes
		r.Route("/vacations", func(r chi.Router) {
			r.Delete("/{id}", h.DeleteVacation)
		})
		r.Route("/absences", func(r chi.Router) {
			r.Delete("/{id}", h.DeleteAbsence)
		})

		// Payroll routes
		r.Route("/payroll", func(r chi.Router) {
			r.Post("/generate", h.GeneratePayroll)
		})

		// Rules
		r.Get("/rules", h.GetRules)
	})

	return r
}

// requestLogger logs one structured line per request.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
