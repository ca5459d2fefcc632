package appointments

import "context"

// Repository defines the interface for appointment storage.
type Repository interface {
	Insert(ctx context.Context, a *Appointment) error
	ListByPatient(ctx context.Context, patientID string) ([]Appointment, error)
}
