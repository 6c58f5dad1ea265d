package alumni

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/activity"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/auth"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/httputil"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	store    *Store
	validate *validator.Validate
	logger   *slog.Logger
	metrics  *metrics.Metrics
	recorder *activity.Recorder
}

func NewHandler(store *Store, logger *slog.Logger, metrics *metrics.Metrics, recorder *activity.Recorder) *Handler {
	return &Handler{
		store:    store,
		validate: validator.New(),
		logger:   logger,
		metrics:  metrics,
		recorder: recorder,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/alumni", h.List)
	router.Post("/alumni", h.Create)
	router.Get("/alumni/export", h.ExportCSV)
	router.Get("/alumni/stats", h.Stats)
}

// List renders the directory view, optionally filtered by ?search=, ?batch=
// and ?department=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := query.Get("search")
	batch := query.Get("batch")
	department := query.Get("department")

	records := h.store.All()
	filtered := Filter(records, search, batch, department)

	view := NewView()
	Render(filtered, len(records), view)

	if search != "" || batch != "" || department != "" {
		h.metrics.RecordDirectorySearch(r.Context())
	}

	httputil.RespondWithJSON(w, http.StatusOK, view)
}

// Create appends a new directory record.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	if !auth.IsValidEmail(req.Email) {
		httputil.RespondWithError(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}

	company := req.Company
	if company == "" {
		company = "Not specified"
	}

	record := h.store.Append(Record{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Batch:      req.Batch,
		Department: req.Department,
		Company:    company,
		Position:   "Not specified",
		Avatar:     defaultAvatar,
	})

	h.logger.InfoContext(r.Context(), "alumni record added", "id", record.ID, "email", record.Email)
	h.recorder.Record(r.Context(), activity.TypeAlumniAdded, record.Email, record.Name)

	httputil.RespondWithJSON(w, http.StatusCreated, record)
}

// ExportCSV streams the currently filtered records as a CSV download.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filtered := Filter(h.store.All(), query.Get("search"), query.Get("batch"), query.Get("department"))

	body := ExportCSV(filtered)
	filename := ExportFilename(time.Now())

	h.metrics.RecordCSVExport(r.Context())
	h.logger.InfoContext(r.Context(), "directory exported", "records", len(filtered), "filename", filename)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

// Stats serves the dashboard aggregates.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, ComputeStats(h.store.All()))
}
