package patients

import "context"

// Repository defines the interface for patient storage.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Patient, error)
	// GetByPhone returns (nil, nil) when no patient owns the phone.
	GetByPhone(ctx context.Context, phone string) (*Patient, error)
	Insert(ctx context.Context, p *Patient) error
	Update(ctx context.Context, p *Patient) error
	List(ctx context.Context) ([]Patient, error)
	Delete(ctx context.Context, id string) error
}
