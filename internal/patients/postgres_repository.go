package patients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Unique constraints created by the initial migration.
const (
	ConstraintCode  = "patients_pkey"
	ConstraintPhone = "patients_phone_key"
)

// PostgresRepository stores patients in the relational database.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a repository backed by database/sql.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	if db == nil {
		panic("patients: db required")
	}
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Patient, error) {
	return r.getOne(ctx, `
		SELECT id, first_name, last_name, phone, dob, created_at, updated_at
		FROM patients WHERE id = $1`, id)
}

func (r *PostgresRepository) GetByPhone(ctx context.Context, phone string) (*Patient, error) {
	return r.getOne(ctx, `
		SELECT id, first_name, last_name, phone, dob, created_at, updated_at
		FROM patients WHERE phone = $1`, phone)
}

func (r *PostgresRepository) getOne(ctx context.Context, query, arg string) (*Patient, error) {
	var p Patient
	var dob sql.NullString
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Phone, &dob, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("patients: select failed: %w", err)
	}
	p.DOB = dob.String
	return &p, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, p *Patient) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO patients (id, first_name, last_name, phone, dob, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $6)`,
		p.ID, p.FirstName, p.LastName, p.Phone, p.DOB, now)
	if err != nil {
		return fmt.Errorf("patients: insert failed: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *Patient) error {
	now := time.Now().UTC()
	p.UpdatedAt = now
	res, err := r.db.ExecContext(ctx, `
		UPDATE patients
		SET first_name = $2, last_name = $3, phone = $4, dob = NULLIF($5, ''), updated_at = $6
		WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.Phone, p.DOB, now)
	if err != nil {
		return fmt.Errorf("patients: update failed: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrPatientNotFound
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, phone, dob, created_at, updated_at
		FROM patients ORDER BY last_name, first_name`)
	if err != nil {
		return nil, fmt.Errorf("patients: list failed: %w", err)
	}
	defer rows.Close()

	var out []Patient
	for rows.Next() {
		var p Patient
		var dob sql.NullString
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Phone, &dob, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.DOB = dob.String
		out = append(out, p)
	}
	if out == nil {
		out = []Patient{}
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	return err
}

// IsUniqueViolation reports whether err is a Postgres unique-violation on the
// named constraint. Empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != "23505" {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
