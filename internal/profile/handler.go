package profile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/activity"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/auth"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/httputil"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/metrics"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	store    *Store
	logger   *slog.Logger
	metrics  *metrics.Metrics
	recorder *activity.Recorder
}

func NewHandler(store *Store, logger *slog.Logger, metrics *metrics.Metrics, recorder *activity.Recorder) *Handler {
	return &Handler{
		store:    store,
		logger:   logger,
		metrics:  metrics,
		recorder: recorder,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/profile", h.Get)
	router.Put("/profile", h.Save)
	router.Get("/profile/picture", h.GetPicture)
	router.Put("/profile/picture", h.SavePicture)
}

type pictureRequest struct {
	DataURL string `json:"dataUrl"`
}

// Get loads the caller's profile. No stored data yields an empty record
// rather than an error, mirroring a first visit to the editor.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.GetEmail(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	record, err := h.store.Load(r.Context(), owner)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "profile load failed", "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if record == nil {
		record = &Record{}
	}

	httputil.RespondWithJSON(w, http.StatusOK, record)
}

// Save persists the submitted record into the profile slot.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.GetEmail(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var record Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.store.Save(r.Context(), owner, record); err != nil {
		// Storage failures are non-fatal for the editor; the previous
		// blob is still intact.
		httputil.RespondWithError(w, http.StatusInternalServerError, "Error saving profile")
		return
	}

	h.metrics.RecordProfileSave(r.Context())
	h.recorder.Record(r.Context(), activity.TypeProfileSaved, owner, "")

	httputil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// GetPicture serves the stored data-URL image, if any.
func (h *Handler) GetPicture(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.GetEmail(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	dataURL, err := h.store.LoadPicture(r.Context(), owner)
	if err != nil {
		httputil.RespondWithError(w, http.StatusInternalServerError, "failed to load picture")
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, pictureRequest{DataURL: dataURL})
}

// SavePicture stores a data-URL-encoded profile image.
func (h *Handler) SavePicture(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.GetEmail(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req pictureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.store.SavePicture(r.Context(), owner, req.DataURL); err != nil {
		switch {
		case errors.Is(err, ErrNotImage):
			httputil.RespondWithError(w, http.StatusBadRequest, "Please select an image file")
		case errors.Is(err, ErrPictureSize):
			httputil.RespondWithError(w, http.StatusBadRequest, "Image size should be less than 5MB")
		default:
			httputil.RespondWithError(w, http.StatusInternalServerError, "failed to store picture")
		}
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
