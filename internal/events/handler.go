package events

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/httputil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	store    *Store
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(store *Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:    store,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/events", h.List)
	router.Post("/events", h.Create)
}

// List serves events, optionally filtered by ?type=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filtered := FilterByType(h.store.All(), r.URL.Query().Get("type"))
	httputil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"events": filtered,
		"count":  len(filtered),
		"total":  h.store.Count(),
	})
}

// Create appends a new event with form defaults.
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

	description := req.Description
	if description == "" {
		description = "No description provided"
	}

	record := h.store.Append(Record{
		Title:       req.Title,
		Description: description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Type:        "networking",
		Attendees:   0,
	})

	h.logger.InfoContext(r.Context(), "event created", "id", record.ID, "title", record.Title)

	httputil.RespondWithJSON(w, http.StatusCreated, record)
}
