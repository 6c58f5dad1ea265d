package memories

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/activity"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/auth"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/httputil"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/metrics"

	"github.com/go-chi/chi/v5"
)

// Multipart uploads are capped at 64MB per request.
const maxUploadBytes = 64 << 20

type Handler struct {
	store    *Store
	service  *Service
	logger   *slog.Logger
	metrics  *metrics.Metrics
	recorder *activity.Recorder
}

func NewHandler(store *Store, service *Service, logger *slog.Logger, metrics *metrics.Metrics, recorder *activity.Recorder) *Handler {
	return &Handler{
		store:    store,
		service:  service,
		logger:   logger,
		metrics:  metrics,
		recorder: recorder,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/memories", h.List)
	router.Post("/memories", h.Upload)
	router.Get("/memories/{id}", h.Get)
	router.Post("/memories/{id}/like", h.Like)
}

// List serves the gallery, optionally filtered by ?batch= ("all" passes
// everything). An empty result carries an explicit empty-state message.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filtered := FilterByBatch(h.store.All(), r.URL.Query().Get("batch"))

	resolved := make([]Memory, len(filtered))
	for i, memory := range filtered {
		resolved[i] = h.service.WithMediaURLs(r.Context(), memory)
	}

	response := map[string]interface{}{
		"memories": resolved,
		"count":    len(resolved),
		"total":    h.store.Count(),
	}
	if len(resolved) == 0 {
		response["emptyState"] = "No Memories Found"
	}

	httputil.RespondWithJSON(w, http.StatusOK, response)
}

// Upload accepts a multipart form with title/description/batch fields and one
// or more image or video files.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	uploader, _ := auth.GetEmail(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := UploadRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Batch:       r.FormValue("batch"),
		Uploader:    uploader,
	}

	for _, header := range r.MultipartForm.File["files"] {
		file, err := header.Open()
		if err != nil {
			httputil.RespondWithError(w, http.StatusBadRequest, "unreadable upload")
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			httputil.RespondWithError(w, http.StatusBadRequest, "unreadable upload")
			return
		}
		req.Files = append(req.Files, Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	memory, err := h.service.Upload(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTitleRequired):
			httputil.RespondWithError(w, http.StatusBadRequest, "Please enter a memory title")
		case errors.Is(err, ErrNoFiles):
			httputil.RespondWithError(w, http.StatusBadRequest, "Please select at least one file to upload")
		case errors.Is(err, ErrUnsupportedType):
			httputil.RespondWithError(w, http.StatusBadRequest, "Only image and video files are allowed")
		default:
			h.logger.ErrorContext(r.Context(), "upload failed", "error", err)
			httputil.RespondWithError(w, http.StatusInternalServerError, "upload failed")
		}
		return
	}

	h.metrics.RecordMemoryUpload(r.Context())
	h.recorder.Record(r.Context(), activity.TypeMemoryUploaded, uploader, memory.Title)

	httputil.RespondWithJSON(w, http.StatusCreated, h.service.WithMediaURLs(r.Context(), memory))
}

// Get serves one memory and counts the view.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid memory id")
		return
	}

	memory, err := h.store.Get(id)
	if err != nil {
		httputil.RespondWithError(w, http.StatusNotFound, "memory not found")
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, h.service.WithMediaURLs(r.Context(), memory))
}

// Like bumps the like counter.
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid memory id")
		return
	}

	likes, err := h.store.Like(id)
	if err != nil {
		httputil.RespondWithError(w, http.StatusNotFound, "memory not found")
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, map[string]int{"likes": likes})
}
