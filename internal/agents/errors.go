package agents

import "errors"

var (
	// ErrMissingID is returned when the agent id is blank.
	ErrMissingID = errors.New("agent id is required")

	// ErrMissingName is returned when the display name is blank.
	ErrMissingName = errors.New("agent name is required")

	// ErrUnknownKind is returned for kinds other than ai/human.
	ErrUnknownKind = errors.New("agent kind must be ai or human")

	// ErrAgentNotFound is returned when an agent is not found.
	ErrAgentNotFound = errors.New("agent not found")

	// ErrAgentExists is returned when registering an id that is taken.
	ErrAgentExists = errors.New("agent id already registered")
)
