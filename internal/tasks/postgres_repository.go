package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrTaskNotFound is returned when the target task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// PostgresRepository stores tasks in the relational database.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a repository backed by database/sql.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	if db == nil {
		panic("tasks: db required")
	}
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, t *Task) error {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, patient_id, provider, task_type, status, description, agent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		t.ID, t.PatientID, t.Provider, string(t.Type), t.Status, t.Description, t.AgentID, now)
	if err != nil {
		return fmt.Errorf("tasks: insert failed: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, status string) ([]Task, error) {
	query := `
		SELECT id, patient_id, provider, task_type, status, description, agent_id, created_at, updated_at
		FROM tasks`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("tasks: list failed: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		var t Task
		var typ string
		if err := rows.Scan(&t.ID, &t.PatientID, &t.Provider, &typ, &t.Status, &t.Description, &t.AgentID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Type = Type(typ)
		out = append(out, t)
	}
	if out == nil {
		out = []Task{}
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) (*Task, error) {
	var t Task
	var typ string
	err := r.db.QueryRowContext(ctx, `
		UPDATE tasks SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, patient_id, provider, task_type, status, description, agent_id, created_at, updated_at`,
		id, status, time.Now().UTC()).Scan(
		&t.ID, &t.PatientID, &t.Provider, &typ, &t.Status, &t.Description, &t.AgentID, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("tasks: update status failed: %w", err)
	}
	t.Type = Type(typ)
	return &t, nil
}
