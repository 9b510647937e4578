package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arabicvocab/backend/internal/models"
)

// MatchService is the interface that wraps methods for matching game sessions
type MatchService interface {
	// Deal samples words and lays out a shuffled board.
	Deal(ctx context.Context, tag string) (*models.MatchSession, error)
	// Get returns a running session.
	Get(id string) (*models.MatchSession, error)
	// Pick handles one card click; the result is non-nil on the winning pick.
	Pick(id, cardID string) (*models.MatchSession, *models.MatchResult, error)
	// Exit discards a session.
	Exit(id string)
}

// MatchSessionResponse is the client view of a matching game session.
type MatchSessionResponse struct {
	ID             string              `json:"id"`
	Cards          []models.MatchCard  `json:"cards"`
	TotalPairs     int                 `json:"total_pairs"`
	PairsFound     int                 `json:"pairs_found"`
	Mistakes       int                 `json:"mistakes"`
	Won            bool                `json:"won"`
	ElapsedSeconds float64             `json:"elapsed_seconds"`
	Result         *models.MatchResult `json:"result,omitempty"`
}

func matchSessionResponse(session *models.MatchSession, result *models.MatchResult) *MatchSessionResponse {
	return &MatchSessionResponse{
		ID:             session.ID,
		Cards:          session.Cards,
		TotalPairs:     session.TotalPairs,
		PairsFound:     session.PairsFound,
		Mistakes:       session.Mistakes,
		Won:            session.Won,
		ElapsedSeconds: session.Elapsed(time.Now()).Seconds(),
		Result:         result,
	}
}

// MatchHandler handles matching game HTTP requests
type MatchHandler struct {
	BaseHandler
	service MatchService
}

// NewMatchHandler creates a new matching game handler
func NewMatchHandler(svc MatchService, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all matching game handler routes
// Note: This assumes the router is already scoped to /api
func (h *MatchHandler) RegisterRoutes(r chi.Router) {
	r.Route("/match", func(r chi.Router) {
		r.Post("/", h.Deal)
		r.Get("/{id}", h.Get)
		r.Post("/{id}/pick", h.Pick)
		r.Delete("/{id}", h.Exit)
	})
}

// Deal handles POST /match
// @Summary Start a matching game
// @Description Deal a board of ten cards from five sampled words; needs at least five words in the pool
// @Tags match
// @Accept json
// @Produce json
// @Param session body map[string]string false "Session payload, e.g. {\"tag\": \"school\"}"
// @Success 201 {object} MatchSessionResponse "New session"
// @Failure 400 {object} map[string]string "Pool too small"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /match [post]
func (h *MatchHandler) Deal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tag string `json:"tag"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	session, err := h.service.Deal(r.Context(), req.Tag)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, matchSessionResponse(session, nil))
}

// Get handles GET /match/{id}
// @Summary Get a matching game session
// @Tags match
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} MatchSessionResponse "Session"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /match/{id} [get]
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, matchSessionResponse(session, nil))
}

// Pick handles POST /match/{id}/pick
// @Summary Pick a card
// @Description Click one card; the second pick of a pair resolves it, and the winning pick returns the result
// @Tags match
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param pick body map[string]string true "Pick payload, e.g. {\"card_id\": \"...\"}"
// @Success 200 {object} MatchSessionResponse "Updated session"
// @Failure 400 {object} map[string]string "Game already won"
// @Failure 404 {object} map[string]string "Session or card not found"
// @Router /match/{id}/pick [post]
func (h *MatchHandler) Pick(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CardID string `json:"card_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, result, err := h.service.Pick(chi.URLParam(r, "id"), req.CardID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, matchSessionResponse(session, result))
}

// Exit handles DELETE /match/{id}
// @Summary Exit a matching game
// @Tags match
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]bool "Exited"
// @Router /match/{id} [delete]
func (h *MatchHandler) Exit(w http.ResponseWriter, r *http.Request) {
	h.service.Exit(chi.URLParam(r, "id"))
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
