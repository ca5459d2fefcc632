package agents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// PostgresRepository stores agents in the relational database.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a repository backed by database/sql.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	if db == nil {
		panic("agents: db required")
	}
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Agent, error) {
	var a Agent
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, kind, voice_id, assistant_id, specialties, active, created_at
		FROM agents WHERE id = $1`, id).Scan(
		&a.ID, &a.Name, &a.Kind, &a.VoiceID, &a.AssistantID, pq.Array(&a.Specialties), &a.Active, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("agents: select failed: %w", err)
	}
	if a.Specialties == nil {
		a.Specialties = []string{}
	}
	return &a, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Agent, error) {
	return r.list(ctx, `
		SELECT id, name, kind, voice_id, assistant_id, specialties, active, created_at
		FROM agents ORDER BY name ASC`)
}

func (r *PostgresRepository) ListAI(ctx context.Context) ([]Agent, error) {
	return r.list(ctx, `
		SELECT id, name, kind, voice_id, assistant_id, specialties, active, created_at
		FROM agents WHERE kind = 'ai' AND active ORDER BY name ASC`)
}

func (r *PostgresRepository) list(ctx context.Context, query string) ([]Agent, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("agents: list failed: %w", err)
	}
	defer rows.Close()

	var out []Agent
	for rows.Next() {
		var a Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.Kind, &a.VoiceID, &a.AssistantID, pq.Array(&a.Specialties), &a.Active, &a.CreatedAt); err != nil {
			return nil, err
		}
		if a.Specialties == nil {
			a.Specialties = []string{}
		}
		out = append(out, a)
	}
	if out == nil {
		out = []Agent{}
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Insert(ctx context.Context, a *Agent) error {
	a.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO agents (id, name, kind, voice_id, assistant_id, specialties, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.Name, a.Kind, a.VoiceID, a.AssistantID, pq.Array(a.Specialties), a.Active, a.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrAgentExists
		}
		return fmt.Errorf("agents: insert failed: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM agents WHERE id = $1`, id)
	return err
}
