package agents

import "context"

// Repository defines the interface for agent storage.
type Repository interface {
	// GetByID returns (nil, nil) when no agent owns the id.
	GetByID(ctx context.Context, id string) (*Agent, error)
	List(ctx context.Context) ([]Agent, error)
	ListAI(ctx context.Context) ([]Agent, error)
	Insert(ctx context.Context, a *Agent) error
	Delete(ctx context.Context, id string) error
}
