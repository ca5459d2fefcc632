package voice

import (
	"context"
	"fmt"

	"github.com/wellvoice/clinic-ops/internal/agents"
	"github.com/wellvoice/clinic-ops/pkg/logging"
)

// Provisioner creates platform assistants for locally registered AI agents.
type Provisioner struct {
	client *Client
	logger *logging.Logger
}

// NewProvisioner wires a Provisioner over the platform client.
func NewProvisioner(client *Client, logger *logging.Logger) *Provisioner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Provisioner{client: client, logger: logger.WithComponent("voice")}
}

// EnsureAssistant creates the platform assistant backing agent and returns
// its id. Existing assistant ids are returned untouched.
func (p *Provisioner) EnsureAssistant(ctx context.Context, agent *agents.Agent) (string, error) {
	if agent.AssistantID != "" {
		return agent.AssistantID, nil
	}

	req := &AssistantCreateRequest{
		Name: agent.Name,
		Model: ModelConfig{
			Provider:     "openai",
			Model:        "gpt-4o",
			SystemPrompt: fmt.Sprintf("You are %s, a helpful front-office assistant for a medical practice.", agent.Name),
		},
		Voice: VoiceConfig{
			VoiceID: agent.VoiceID,
		},
		FirstMessage: fmt.Sprintf("Hi, this is %s calling from your doctor's office.", agent.Name),
	}

	created, err := p.client.CreateAssistant(ctx, req)
	if err != nil {
		return "", err
	}
	p.logger.Info("assistant provisioned", "agent_id", agent.ID, "assistant_id", created.ID)
	return created.ID, nil
}
