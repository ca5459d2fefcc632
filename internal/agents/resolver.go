package agents

import (
	"context"
	"strings"

	"github.com/wellvoice/clinic-ops/pkg/logging"
)

// Resolver maps the "Agent Name" cell of an import row to an agent identity.
// Resolution order: exact id, then case-insensitive name/id among active AI
// agents, then the configured default. It never fails; the default keeps
// task creation total.
type Resolver struct {
	repo      Repository
	defaultID string
	logger    *logging.Logger
}

// NewResolver creates a Resolver with the configured fallback agent id.
func NewResolver(repo Repository, defaultID string, logger *logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &Resolver{repo: repo, defaultID: defaultID, logger: logger.WithComponent("agents")}
}

// Resolve returns the owning agent id for ref.
func (r *Resolver) Resolve(ctx context.Context, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return r.defaultID
	}

	if a, err := r.repo.GetByID(ctx, ref); err == nil && a != nil {
		return a.ID
	} else if err != nil {
		r.logger.Warn("agent lookup failed, using default", "ref", ref, "error", err)
		return r.defaultID
	}

	ais, err := r.repo.ListAI(ctx)
	if err != nil {
		r.logger.Warn("AI agent listing failed, using default", "ref", ref, "error", err)
		return r.defaultID
	}
	for _, a := range ais {
		if strings.EqualFold(a.Name, ref) || strings.EqualFold(a.ID, ref) {
			return a.ID
		}
	}

	r.logger.Debug("agent reference unresolved, using default", "ref", ref, "default", r.defaultID)
	return r.defaultID
}
