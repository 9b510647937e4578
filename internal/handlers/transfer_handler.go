package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arabicvocab/backend/internal/models"
)

// maxImportSize caps uploaded vocabulary files at 10 MB.
const maxImportSize = 10 << 20

// TransferService is the interface that wraps import and export operations
type TransferService interface {
	// Export assembles the full vocabulary dataset.
	Export(ctx context.Context) (*models.Dataset, error)
	// ExportToFile additionally writes a server-side copy and returns its path.
	ExportToFile(ctx context.Context) (*models.Dataset, string, error)
	// Import loads a dataset, merging or replacing the catalog.
	Import(ctx context.Context, dataset *models.Dataset, merge bool) (*models.ImportResult, error)
}

// TransferHandler handles import/export HTTP requests
type TransferHandler struct {
	BaseHandler
	service TransferService
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(svc TransferService, logger *zap.Logger) *TransferHandler {
	return &TransferHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all transfer handler routes
// Note: This assumes the router is already scoped to /api
func (h *TransferHandler) RegisterRoutes(r chi.Router) {
	r.Get("/export", h.Export)
	r.Post("/import", h.Import)
}

// Export handles GET /export
// @Summary Export the vocabulary
// @Description Download the full dataset; with save=1 a timestamped copy is also written server-side
// @Tags transfer
// @Produce json
// @Param save query string false "Write a server-side copy when set to 1"
// @Success 200 {object} models.Dataset "Vocabulary dataset"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /export [get]
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("save") == "1" {
		dataset, path, err := h.service.ExportToFile(r.Context())
		if err != nil {
			h.respondServiceError(w, err)
			return
		}
		h.logger.Info("export saved", zap.String("path", path))
		w.Header().Set("X-Export-Path", path)
		h.respondJSON(w, http.StatusOK, dataset)
		return
	}

	dataset, err := h.service.Export(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="arabic_vocabulary.json"`)
	h.respondJSON(w, http.StatusOK, dataset)
}

// Import handles POST /import
// @Summary Import a vocabulary file
// @Description Upload a dataset as multipart "file" or a raw JSON body; merge=true upserts over the existing catalog, otherwise it is replaced
// @Tags transfer
// @Accept mpfd
// @Produce json
// @Param merge query bool false "Merge instead of replace"
// @Param file formData file true "Vocabulary JSON file"
// @Success 200 {object} models.ImportResult "Import result"
// @Failure 400 {object} map[string]string "Invalid vocabulary file"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /import [post]
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	merge := r.URL.Query().Get("merge") == "true"

	dataset, err := h.decodeDataset(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Import(r.Context(), dataset, merge)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

func (h *TransferHandler) decodeDataset(r *http.Request) (*models.Dataset, error) {
	var dataset models.Dataset

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			return nil, errInvalidFile
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, errInvalidFile
		}
		defer file.Close()

		if err := json.NewDecoder(file).Decode(&dataset); err != nil {
			return nil, errInvalidFile
		}
		return &dataset, nil
	}

	if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxImportSize)).Decode(&dataset); err != nil {
		return nil, errInvalidFile
	}
	return &dataset, nil
}

var errInvalidFile = errors.New("invalid vocabulary file")
