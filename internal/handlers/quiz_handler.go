package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arabicvocab/backend/internal/models"
)

// QuizService is the interface that wraps methods for quiz sessions
type QuizService interface {
	// Start samples a question set and opens a new session.
	Start(ctx context.Context, mode models.QuizMode, tag string) (*models.QuizSession, error)
	// Get returns a running session.
	Get(id string) (*models.QuizSession, error)
	// Answer evaluates a selection against the current question.
	Answer(id, selectedWordID string) (*models.QuizAnswer, error)
	// Next advances the session; the result is non-nil once it finishes.
	Next(id string) (*models.QuizSession, *models.QuizResult, error)
	// Exit discards a session.
	Exit(id string)
}

// QuizQuestionResponse is the client view of the active question. The word
// behind it stays server-side so the correct answer cannot be read off the
// payload.
type QuizQuestionResponse struct {
	Prompt  string              `json:"prompt"`
	Options []models.QuizOption `json:"options"`
}

// QuizSessionResponse is the client view of a quiz session.
type QuizSessionResponse struct {
	ID       string                `json:"id"`
	Mode     models.QuizMode       `json:"mode"`
	Tag      string                `json:"tag,omitempty"`
	Total    int                   `json:"total"`
	Index    int                   `json:"index"`
	Score    int                   `json:"score"`
	Finished bool                  `json:"finished"`
	Question *QuizQuestionResponse `json:"question,omitempty"`
	Result   *models.QuizResult    `json:"result,omitempty"`
}

func quizSessionResponse(session *models.QuizSession, result *models.QuizResult) *QuizSessionResponse {
	resp := &QuizSessionResponse{
		ID:       session.ID,
		Mode:     session.Mode,
		Tag:      session.Tag,
		Total:    len(session.Questions),
		Index:    session.Index,
		Score:    session.Score,
		Finished: session.Finished,
		Result:   result,
	}
	if question := session.Current(); question != nil {
		resp.Question = &QuizQuestionResponse{
			Prompt:  question.Prompt,
			Options: question.Options,
		}
	}
	return resp
}

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	BaseHandler
	service QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(svc QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all quiz handler routes
// Note: This assumes the router is already scoped to /api
func (h *QuizHandler) RegisterRoutes(r chi.Router) {
	r.Route("/quiz", func(r chi.Router) {
		r.Post("/", h.Start)
		r.Get("/{id}", h.Get)
		r.Post("/{id}/answer", h.Answer)
		r.Post("/{id}/next", h.Next)
		r.Delete("/{id}", h.Exit)
	})
}

// Start handles POST /quiz
// @Summary Start a quiz
// @Description Open a session of up to ten multiple-choice questions; needs at least four words in the pool
// @Tags quiz
// @Accept json
// @Produce json
// @Param session body map[string]string true "Session payload, e.g. {\"mode\": \"ar-en\", \"tag\": \"school\"}"
// @Success 201 {object} QuizSessionResponse "New session"
// @Failure 400 {object} map[string]string "Invalid request or pool too small"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /quiz [post]
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode models.QuizMode `json:"mode"`
		Tag  string          `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Mode == "" {
		req.Mode = models.QuizModeArabicToMeaning
	}

	session, err := h.service.Start(r.Context(), req.Mode, req.Tag)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, quizSessionResponse(session, nil))
}

// Get handles GET /quiz/{id}
// @Summary Get a quiz session
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} QuizSessionResponse "Session"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /quiz/{id} [get]
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, quizSessionResponse(session, nil))
}

// Answer handles POST /quiz/{id}/answer
// @Summary Answer the current question
// @Description Submit the selected option; each question accepts exactly one answer
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param answer body map[string]string true "Answer payload, e.g. {\"word_id\": \"...\"}"
// @Success 200 {object} models.QuizAnswer "Evaluation"
// @Failure 400 {object} map[string]string "Already answered or finished"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /quiz/{id}/answer [post]
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WordID string `json:"word_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.service.Answer(chi.URLParam(r, "id"), req.WordID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, answer)
}

// Next handles POST /quiz/{id}/next
// @Summary Advance to the next question
// @Description Move past the answered question; passing the last one finishes the session and returns the result
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} QuizSessionResponse "Session, with result once finished"
// @Failure 400 {object} map[string]string "Current question not answered yet"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /quiz/{id}/next [post]
func (h *QuizHandler) Next(w http.ResponseWriter, r *http.Request) {
	session, result, err := h.service.Next(chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, quizSessionResponse(session, result))
}

// Exit handles DELETE /quiz/{id}
// @Summary Exit a quiz
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]bool "Exited"
// @Router /quiz/{id} [delete]
func (h *QuizHandler) Exit(w http.ResponseWriter, r *http.Request) {
	h.service.Exit(chi.URLParam(r, "id"))
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
