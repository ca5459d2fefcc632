package agents

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/wellvoice/clinic-ops/pkg/logging"
)

// Provisioner creates the platform-side assistant behind an AI agent.
// Provisioning is best effort; local registration never blocks on it.
type Provisioner interface {
	EnsureAssistant(ctx context.Context, agent *Agent) (string, error)
}

// Handler handles HTTP requests for agents
type Handler struct {
	repo        Repository
	provisioner Provisioner
	logger      *logging.Logger
}

// NewHandler creates a new agents handler. provisioner may be nil.
func NewHandler(repo Repository, provisioner Provisioner, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, provisioner: provisioner, logger: logger}
}

// ListAgentsResponse is the response for listing agents
type ListAgentsResponse struct {
	Agents []Agent `json:"agents"`
	Count  int     `json:"count"`
}

// List handles GET /api/agents
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list agents", "error", err)
		http.Error(w, "failed to list agents", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ListAgentsResponse{Agents: list, Count: len(list)})
}

// Get handles GET /api/agents/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	a, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to load agent", "error", err, "id", id)
		http.Error(w, "failed to load agent", http.StatusInternalServerError)
		return
	}
	if a == nil {
		http.Error(w, "agent not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Create handles POST /api/agents
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a := &Agent{
		ID:          req.ID,
		Name:        req.Name,
		Kind:        req.Kind,
		VoiceID:     req.VoiceID,
		Specialties: req.Specialties,
		Active:      true,
	}
	if a.Specialties == nil {
		a.Specialties = []string{}
	}

	if a.Kind == KindAI && h.provisioner != nil {
		assistantID, err := h.provisioner.EnsureAssistant(r.Context(), a)
		if err != nil {
			h.logger.Warn("assistant provisioning failed, registering agent anyway", "id", a.ID, "error", err)
		} else {
			a.AssistantID = assistantID
		}
	}

	if err := h.repo.Insert(r.Context(), a); err != nil {
		if errors.Is(err, ErrAgentExists) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to register agent", "error", err, "id", a.ID)
		http.Error(w, "failed to register agent", http.StatusInternalServerError)
		return
	}

	h.logger.Info("agent registered", "id", a.ID, "kind", a.Kind)
	writeJSON(w, http.StatusCreated, a)
}

// Delete handles DELETE /api/agents/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.logger.Error("failed to delete agent", "error", err, "id", id)
		http.Error(w, "failed to delete agent", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// SearchResponse is the response for fuzzy agent search
type SearchResponse struct {
	Agents []Agent `json:"agents"`
}

// Search handles GET /api/agents/search?q= used by the UI agent picker.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}

	list, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list agents", "error", err)
		http.Error(w, "failed to search agents", http.StatusInternalServerError)
		return
	}

	names := make([]string, len(list))
	for i, a := range list {
		names[i] = a.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(q, names)
	sort.Sort(ranks)

	matched := make([]Agent, 0, len(ranks))
	for _, rank := range ranks {
		matched = append(matched, list[rank.OriginalIndex])
	}
	writeJSON(w, http.StatusOK, SearchResponse{Agents: matched})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
