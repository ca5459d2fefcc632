package tasks

import "time"

// Task is one piece of agent work against a patient.
type Task struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	Provider    string    `json:"provider,omitempty"`
	Type        Type      `json:"type"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	AgentID     string    `json:"agent_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
