package server

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/omarshaarawi/gridiron/internal/service"
)

// NewRouter wires the HTTP API onto a chi router.
func NewRouter(fantasyService *service.FantasyService) *chi.Mux {
	h := NewHandler(fantasyService)

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Recovery)
	r.Use(chimiddleware.Logger)

	r.Get("/health", h.Health)

	r.Route("/api/fantasy", func(r chi.Router) {
		r.Get("/rate-team", h.ListRatings)
		r.Post("/rate-team", h.RateTeam)
		r.Post("/analyze-trade", h.AnalyzeTrade)
		r.Get("/players", h.Players)
		r.Get("/compare", h.CompareTeams)
	})

	r.Route("/api/nfl", func(r chi.Router) {
		r.Get("/predictions", h.Predictions)
		r.Get("/schedule-strength", h.ScheduleStrength)
		r.Get("/playoffs", h.Playoffs)
		r.Get("/odds", h.Odds)
	})

	return r
}
