package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/cyberme/apiserver/internal/services"
	"github.com/cyberme/apiserver/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TaskHandler provides HTTP handlers for the task list.
type TaskHandler struct {
	tasks *services.TaskService
}

// NewTaskHandler constructs a handler with the provided service.
func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// CreateTask inserts a new pending task and returns the full row.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	task, err := h.tasks.Create(r.Context(), req.Title, req.Priority)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create task")
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// ToggleTask flips the done state of the task in the path.
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseTaskID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.tasks.Toggle(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update task")
		return
	}

	writeJSON(w, http.StatusOK, "Task updated")
}

// CreateTaskRequest is the payload to create a task.
type CreateTaskRequest struct {
	Title    string  `json:"title"`
	Priority *string `json:"priority"`
}

func parseTaskID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "taskID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, errors.New("invalid task id")
	}
	return id, nil
}
