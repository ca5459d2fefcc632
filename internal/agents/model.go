package agents

import (
	"strings"
	"time"
)

// Agent kinds. AI agents are backed by an assistant on the voice platform;
// human agents are office staff shown in the same picker.
const (
	KindAI    = "ai"
	KindHuman = "human"
)

// Agent is an entry in the practice's agent registry.
type Agent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	VoiceID     string    `json:"voice_id,omitempty"`
	AssistantID string    `json:"assistant_id,omitempty"`
	Specialties []string  `json:"specialties"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateAgentRequest represents the request body for registering an agent
type CreateAgentRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	VoiceID     string   `json:"voice_id"`
	Specialties []string `json:"specialties"`
}

// Validate validates the create agent request
func (r *CreateAgentRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	if r.Kind != KindAI && r.Kind != KindHuman {
		return ErrUnknownKind
	}
	return nil
}
