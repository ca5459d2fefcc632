package tasks

import "context"

// Repository defines the interface for task storage.
type Repository interface {
	Insert(ctx context.Context, t *Task) error
	List(ctx context.Context, status string) ([]Task, error)
	UpdateStatus(ctx context.Context, id, status string) (*Task, error)
}
