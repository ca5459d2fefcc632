package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAssistant() *AssistantCreateRequest {
	return &AssistantCreateRequest{
		Name: "Recall Bot",
		Model: ModelConfig{
			Provider: "openai",
			Model:    "gpt-4o",
		},
	}
}

func TestAssistantValidateOK(t *testing.T) {
	require.NoError(t, validAssistant().Validate())
}

func TestAssistantValidateMissingName(t *testing.T) {
	req := validAssistant()
	req.Name = ""
	assert.Error(t, req.Validate())
}

func TestAssistantValidateMissingModel(t *testing.T) {
	req := validAssistant()
	req.Model.Model = ""
	assert.Error(t, req.Validate())
}

func TestAssistantValidateBadServerURL(t *testing.T) {
	req := validAssistant()
	req.ServerURL = "not a url"
	assert.Error(t, req.Validate())
}

func TestAssistantValidateToolRules(t *testing.T) {
	req := validAssistant()
	req.Tools = []ToolDefinition{{Type: "function"}}
	assert.Error(t, req.Validate(), "function tool without spec must fail")

	req.Tools = []ToolDefinition{{Type: "function", Function: &FunctionSpec{Name: "lookupPatient"}}}
	assert.NoError(t, req.Validate())

	req.Tools = []ToolDefinition{{Type: "teleport"}}
	assert.Error(t, req.Validate(), "unknown tool type must fail")

	req.Tools = []ToolDefinition{{Type: "endCall"}}
	assert.NoError(t, req.Validate())
}

func TestSquadValidate(t *testing.T) {
	req := &SquadCreateRequest{Name: "Front Office"}
	assert.Error(t, req.Validate(), "squad needs at least one member")

	req.Members = []SquadMember{{AssistantID: "asst-1"}}
	assert.NoError(t, req.Validate())

	req.Members = append(req.Members, SquadMember{
		AssistantID: "asst-2",
		AssistantDestinations: []Destination{
			{Type: "assistant", AssistantName: "Recall Bot"},
		},
	})
	assert.NoError(t, req.Validate())

	req.Members[1].AssistantDestinations[0].Type = "carrier-pigeon"
	assert.Error(t, req.Validate())
}
