package voice

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// The voice platform accepts deeply nested, loosely typed configuration
// payloads. Each outbound variant gets an explicit builder type here and is
// validated before the call leaves the process.

var validate = validator.New()

// ModelConfig selects the LLM behind an assistant.
type ModelConfig struct {
	Provider    string  `json:"provider" validate:"required"`
	Model       string  `json:"model" validate:"required"`
	Temperature float64 `json:"temperature,omitempty" validate:"gte=0,lte=2"`
	SystemPrompt string `json:"systemPrompt,omitempty"`
}

// VoiceConfig selects the TTS voice.
type VoiceConfig struct {
	Provider string `json:"provider,omitempty"`
	VoiceID  string `json:"voiceId,omitempty"`
}

// ToolDefinition declares one tool an assistant may call mid-conversation.
type ToolDefinition struct {
	Type     string        `json:"type" validate:"required,oneof=function transferCall endCall"`
	Function *FunctionSpec `json:"function,omitempty"`
}

// FunctionSpec describes a webhook-backed tool function.
type FunctionSpec struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	ServerURL   string         `json:"serverUrl,omitempty" validate:"omitempty,url"`
}

// AssistantCreateRequest is the assistant-create payload variant.
type AssistantCreateRequest struct {
	Name         string           `json:"name" validate:"required"`
	Model        ModelConfig      `json:"model" validate:"required"`
	Voice        VoiceConfig      `json:"voice,omitempty"`
	FirstMessage string           `json:"firstMessage,omitempty"`
	Tools        []ToolDefinition `json:"tools,omitempty" validate:"dive"`
	ServerURL    string           `json:"serverUrl,omitempty" validate:"omitempty,url"`
}

// Validate checks the payload before it is sent.
func (r *AssistantCreateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("assistant payload invalid: %w", err)
	}
	for i, tool := range r.Tools {
		if tool.Type == "function" && tool.Function == nil {
			return fmt.Errorf("assistant payload invalid: tools[%d] is a function tool without a function spec", i)
		}
	}
	return nil
}

// SquadMember is one assistant inside a squad, with its handoff targets.
type SquadMember struct {
	AssistantID           string        `json:"assistantId" validate:"required"`
	AssistantDestinations []Destination `json:"assistantDestinations,omitempty" validate:"dive"`
}

// Destination names another squad member calls can be handed off to.
type Destination struct {
	Type          string `json:"type" validate:"required,oneof=assistant number"`
	AssistantName string `json:"assistantName,omitempty"`
	Number        string `json:"number,omitempty"`
	Message       string `json:"message,omitempty"`
}

// SquadCreateRequest is the squad-create payload variant.
type SquadCreateRequest struct {
	Name    string        `json:"name" validate:"required"`
	Members []SquadMember `json:"members" validate:"required,min=1,dive"`
}

// Validate checks the payload before it is sent.
func (r *SquadCreateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("squad payload invalid: %w", err)
	}
	return nil
}

// Assistant is the platform's view of a created assistant.
type Assistant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Squad is the platform's view of a created squad.
type Squad struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CallLog is one entry from the platform's call history.
type CallLog struct {
	ID          string  `json:"id"`
	AssistantID string  `json:"assistantId"`
	Phone       string  `json:"customerNumber"`
	Status      string  `json:"status"`
	StartedAt   string  `json:"startedAt"`
	EndedAt     string  `json:"endedAt"`
	DurationSec float64 `json:"durationSeconds"`
}
