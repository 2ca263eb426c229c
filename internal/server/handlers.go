package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/omarshaarawi/gridiron/internal/models"
	"github.com/omarshaarawi/gridiron/internal/service"
)

type Handler struct {
	fantasyService *service.FantasyService
}

func NewHandler(fantasyService *service.FantasyService) *Handler {
	return &Handler{fantasyService: fantasyService}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	success(w, r, map[string]string{"status": "healthy"})
}

func (h *Handler) ListRatings(w http.ResponseWriter, r *http.Request) {
	success(w, r, h.fantasyService.RateAllTeams(r.Context()))
}

type rateTeamRequest struct {
	TeamID string `json:"teamId"`
}

type rateTeamResponse struct {
	TeamID   string            `json:"teamId"`
	TeamName string            `json:"teamName"`
	Rating   models.TeamRating `json:"rating"`
	Tier     string            `json:"tier"`
}

func (h *Handler) RateTeam(w http.ResponseWriter, r *http.Request) {
	var req rateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return
	}

	rated, err := h.fantasyService.RateTeam(r.Context(), req.TeamID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	success(w, r, rateTeamResponse{
		TeamID:   rated.ID,
		TeamName: rated.Name,
		Rating:   rated.Rating,
		Tier:     rated.Tier,
	})
}

func (h *Handler) AnalyzeTrade(w http.ResponseWriter, r *http.Request) {
	var req service.TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return
	}

	result, err := h.fantasyService.AnalyzeTrade(r.Context(), req)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	success(w, r, result)
}

// CompareTeams compares the fantasy teams named by the team1 and team2 ids.
func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	comparison, err := h.fantasyService.CompareTeams(r.Context(), q.Get("team1"), q.Get("team2"))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	success(w, r, comparison)
}

func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	limit, ok := intParam(w, r, "limit")
	if !ok {
		return
	}
	success(w, r, h.fantasyService.TopPlayers(r.Context(), limit))
}

func (h *Handler) Predictions(w http.ResponseWriter, r *http.Request) {
	week, ok := intParam(w, r, "week")
	if !ok {
		return
	}
	success(w, r, h.fantasyService.Predictions(r.Context(), week))
}

func (h *Handler) ScheduleStrength(w http.ResponseWriter, r *http.Request) {
	success(w, r, h.fantasyService.ScheduleStrengths(r.Context()))
}

func (h *Handler) Playoffs(w http.ResponseWriter, r *http.Request) {
	season, err := h.fantasyService.SeasonPrediction(r.Context())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	success(w, r, season)
}

type oddsResponse struct {
	SuperBowlOdds []models.TeamOdds         `json:"superBowlOdds"`
	PlayoffOdds   []service.TeamPlayoffOdds `json:"playoffOdds"`
}

func (h *Handler) Odds(w http.ResponseWriter, r *http.Request) {
	playoffOdds, err := h.fantasyService.PlayoffOdds(r.Context())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	success(w, r, oddsResponse{
		SuperBowlOdds: h.fantasyService.SuperBowlOdds(r.Context()),
		PlayoffOdds:   playoffOdds,
	})
}

// intParam reads an optional non-negative integer query parameter. A missing
// parameter is 0.
func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		fail(w, r, http.StatusBadRequest, "INVALID_PARAMETER", name+" must be a non-negative integer")
		return 0, false
	}
	return v, true
}

func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrTeamNotFound):
		fail(w, r, http.StatusNotFound, "TEAM_NOT_FOUND", "Team not found")
	case errors.Is(err, service.ErrSameTeam):
		fail(w, r, http.StatusBadRequest, "SAME_TEAM", "Pick two different teams")
	case errors.Is(err, service.ErrInvalidPlayers):
		fail(w, r, http.StatusBadRequest, "INVALID_PLAYERS", "Invalid player selection")
	default:
		slog.Error("Error handling request", "error", err, "path", r.URL.Path, "requestId", GetRequestID(r.Context()))
		fail(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
	}
}
