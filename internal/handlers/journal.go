package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/cyberme/apiserver/internal/services"
)

const (
	dateLayout      = "2006-01-02"
	recentLogsLimit = 10
)

// JournalHandler provides HTTP handlers for the daily log.
type JournalHandler struct {
	journal *services.JournalService
}

// NewJournalHandler constructs a handler with the provided service.
func NewJournalHandler(journal *services.JournalService) *JournalHandler {
	return &JournalHandler{journal: journal}
}

// CreateLog inserts a new log entry and returns the full row.
func (h *JournalHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	var req CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.EntryType = strings.TrimSpace(req.EntryType)
	if req.Date == "" || req.EntryType == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
		return
	}

	entry, err := h.journal.Create(r.Context(), date, req.EntryType, req.Mood, req.Content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create log")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// ListLogs returns the most recent log entries, newest date first.
func (h *JournalHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.journal.Recent(r.Context(), recentLogsLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list logs")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// CreateLogRequest is the payload to create a log entry.
type CreateLogRequest struct {
	Date      string  `json:"date"`
	EntryType string  `json:"entry_type"`
	Mood      *string `json:"mood"`
	Content   string  `json:"content"`
}
