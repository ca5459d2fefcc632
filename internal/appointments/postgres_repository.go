package appointments

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresRepository stores appointments in the relational database.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a repository backed by database/sql.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	if db == nil {
		panic("appointments: db required")
	}
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, a *Appointment) error {
	a.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (id, patient_id, visit_date, created_at)
		VALUES ($1, $2, $3, $4)`,
		a.ID, a.PatientID, a.VisitDate, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("appointments: insert failed: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByPatient(ctx context.Context, patientID string) ([]Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, patient_id, visit_date::text, created_at
		FROM appointments WHERE patient_id = $1 ORDER BY visit_date ASC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("appointments: list failed: %w", err)
	}
	defer rows.Close()

	var out []Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.VisitDate, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if out == nil {
		out = []Appointment{}
	}
	return out, rows.Err()
}
