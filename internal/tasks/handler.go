package tasks

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wellvoice/clinic-ops/pkg/logging"
)

// Handler handles HTTP requests for tasks
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new tasks handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// ListTasksResponse is the response for listing tasks
type ListTasksResponse struct {
	Tasks []Task `json:"tasks"`
	Count int    `json:"count"`
}

// List handles GET /api/tasks?status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !ValidStatus(status) {
		http.Error(w, "unknown status: "+status, http.StatusBadRequest)
		return
	}

	list, err := h.repo.List(r.Context(), status)
	if err != nil {
		h.logger.Error("failed to list tasks", "error", err)
		http.Error(w, "failed to list tasks", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ListTasksResponse{Tasks: list, Count: len(list)})
}

// UpdateStatus handles PATCH /api/tasks/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !ValidStatus(body.Status) {
		http.Error(w, "unknown status: "+body.Status, http.StatusBadRequest)
		return
	}

	task, err := h.repo.UpdateStatus(r.Context(), id, body.Status)
	if errors.Is(err, ErrTaskNotFound) {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to update task status", "error", err, "id", id)
		http.Error(w, "failed to update task", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(task)
}
