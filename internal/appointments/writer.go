package appointments

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Writer records visit-date side effects during imports. Repeated imports of
// the same visit date create duplicate rows; callers wanting dedup must
// handle it themselves.
type Writer struct {
	repo Repository
}

// NewWriter creates a Writer over the given repository.
func NewWriter(repo Repository) *Writer {
	return &Writer{repo: repo}
}

// RecordVisit inserts one appointment for the patient when visitDate is
// non-blank. The boolean reports whether a row was written.
func (w *Writer) RecordVisit(ctx context.Context, patientID, visitDate string) (bool, error) {
	if strings.TrimSpace(visitDate) == "" {
		return false, nil
	}
	a := &Appointment{
		ID:        uuid.NewString(),
		PatientID: patientID,
		VisitDate: visitDate,
	}
	if err := w.repo.Insert(ctx, a); err != nil {
		return false, err
	}
	return true, nil
}
