package events_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/events"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventsRouter(t *testing.T) (chi.Router, *events.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store := events.NewStore(events.SampleRecords())
	handler := events.NewHandler(store, logger)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router, store
}

type eventsResponse struct {
	Events []events.Record `json:"events"`
	Count  int             `json:"count"`
	Total  int             `json:"total"`
}

func TestListEvents(t *testing.T) {
	router, store := newEventsRouter(t)

	t.Run("lists all seeded events", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response eventsResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, store.Count(), response.Count)
		assert.Len(t, response.Events, store.Count())
	})

	t.Run("filters by type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events?type=networking", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response eventsResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Len(t, response.Events, 1)
		assert.Equal(t, "Annual Alumni Meet 2024", response.Events[0].Title)
		assert.Equal(t, store.Count(), response.Total)
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("success applies form defaults", func(t *testing.T) {
		router, store := newEventsRouter(t)
		before := store.Count()

		payload := map[string]string{
			"title":    "Winter Meetup",
			"date":     "2026-12-20",
			"time":     "18:00",
			"location": "Main Auditorium",
		}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var record events.Record
		require.NoError(t, json.NewDecoder(w.Body).Decode(&record))
		assert.Equal(t, before+1, record.ID)
		assert.Equal(t, "No description provided", record.Description)
		assert.Equal(t, "networking", record.Type)
		assert.Equal(t, 0, record.Attendees)
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		router, store := newEventsRouter(t)
		before := store.Count()

		body, _ := json.Marshal(map[string]string{"title": "No Date"})
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, before, store.Count())
	})
}

func TestFilterByType(t *testing.T) {
	records := []events.Record{
		{ID: 1, Type: "reunion"},
		{ID: 2, Type: "networking"},
		{ID: 3, Type: "reunion"},
	}

	assert.Len(t, events.FilterByType(records, ""), 3)

	reunions := events.FilterByType(records, "reunion")
	require.Len(t, reunions, 2)
	assert.Equal(t, 1, reunions[0].ID)
	assert.Equal(t, 3, reunions[1].ID)
}
