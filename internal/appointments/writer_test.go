package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	rows []Appointment
}

func (m *memRepo) Insert(ctx context.Context, a *Appointment) error {
	m.rows = append(m.rows, *a)
	return nil
}

func (m *memRepo) ListByPatient(ctx context.Context, patientID string) ([]Appointment, error) {
	var out []Appointment
	for _, a := range m.rows {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestRecordVisitBlankIsNoop(t *testing.T) {
	repo := &memRepo{}
	w := NewWriter(repo)

	for _, blank := range []string{"", "   "} {
		written, err := w.RecordVisit(context.Background(), "PT-0001", blank)
		require.NoError(t, err)
		assert.False(t, written)
	}
	assert.Empty(t, repo.rows)
}

func TestRecordVisitInserts(t *testing.T) {
	repo := &memRepo{}
	w := NewWriter(repo)

	written, err := w.RecordVisit(context.Background(), "PT-0001", "2026-03-15")
	require.NoError(t, err)
	assert.True(t, written)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, "PT-0001", repo.rows[0].PatientID)
	assert.Equal(t, "2026-03-15", repo.rows[0].VisitDate)
	assert.NotEmpty(t, repo.rows[0].ID)
}

func TestRecordVisitDoesNotDedup(t *testing.T) {
	repo := &memRepo{}
	w := NewWriter(repo)

	for i := 0; i < 2; i++ {
		_, err := w.RecordVisit(context.Background(), "PT-0001", "2026-03-15")
		require.NoError(t, err)
	}
	assert.Len(t, repo.rows, 2)
}
