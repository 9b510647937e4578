package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arabicvocab/backend/internal/models"
)

// WordsService is the interface that wraps methods for word catalog operations
type WordsService interface {
	// List retrieves words filtered by search pattern, tag and word group.
	List(ctx context.Context, search, tag, group string) ([]models.Word, error)
	// GetByID retrieves a word by its ID.
	GetByID(ctx context.Context, id string) (*models.Word, error)
	// Create validates and stores a new word.
	Create(ctx context.Context, req *models.WordRequest) (*models.Word, error)
	// Update validates and overwrites an existing word.
	Update(ctx context.Context, id string, req *models.WordRequest) (*models.Word, error)
	// Delete removes a word by ID.
	Delete(ctx context.Context, id string) error
}

// WordsHandler handles word catalog HTTP requests
type WordsHandler struct {
	BaseHandler
	service WordsService
}

// NewWordsHandler creates a new word handler
func NewWordsHandler(svc WordsService, logger *zap.Logger) *WordsHandler {
	return &WordsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all word handler routes
// Note: This assumes the router is already scoped to /api
func (h *WordsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/words", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /words
// @Summary List words
// @Description Get the word catalog with optional search, tag and group filters
// @Tags words
// @Produce json
// @Param search query string false "Case-insensitive substring over Arabic, English, Danish and transliteration"
// @Param tag query string false "Exact tag membership"
// @Param group query string false "Exact word group"
// @Success 200 {array} models.Word "List of words"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /words [get]
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := strings.TrimSpace(query.Get("search"))
	tag := strings.TrimSpace(query.Get("tag"))
	group := strings.TrimSpace(query.Get("group"))

	words, err := h.service.List(r.Context(), search, tag, group)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, words)
}

// GetByID handles GET /words/{id}
// @Summary Get a word
// @Tags words
// @Produce json
// @Param id path string true "Word ID"
// @Success 200 {object} models.Word "Word"
// @Failure 404 {object} map[string]string "Word not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /words/{id} [get]
func (h *WordsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	word, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, word)
}

// Create handles POST /words
// @Summary Create a word
// @Description Store a new vocabulary entry; Arabic, English and Danish are required
// @Tags words
// @Accept json
// @Produce json
// @Param word body models.WordRequest true "Word payload"
// @Success 201 {object} models.Word "Created word"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /words [post]
func (h *WordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.WordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, word)
}

// Update handles PUT /words/{id}
// @Summary Update a word
// @Tags words
// @Accept json
// @Produce json
// @Param id path string true "Word ID"
// @Param word body models.WordRequest true "Word payload"
// @Success 200 {object} models.Word "Updated word"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Word not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /words/{id} [put]
func (h *WordsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.WordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, word)
}

// Delete handles DELETE /words/{id}
// @Summary Delete a word
// @Tags words
// @Produce json
// @Param id path string true "Word ID"
// @Success 200 {object} map[string]bool "Deleted"
// @Failure 404 {object} map[string]string "Word not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /words/{id} [delete]
func (h *WordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
