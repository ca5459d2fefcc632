package tasks

import "strings"

// Type classifies the call a task asks an agent to make.
type Type string

const (
	TypeConfirmation Type = "confirmation"
	TypeNoShow       Type = "no-show"
	TypePreVisit     Type = "pre-visit"
	TypePostVisit    Type = "post-visit"
	TypeRecall       Type = "recall"
	TypeCollections  Type = "collections"
)

// DefaultType is used when a row's task-type cell is absent or unrecognized.
const DefaultType = TypePostVisit

// Statuses a task moves through after creation.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

var validTypes = map[Type]struct{}{
	TypeConfirmation: {},
	TypeNoShow:       {},
	TypePreVisit:     {},
	TypePostVisit:    {},
	TypeRecall:       {},
	TypeCollections:  {},
}

// ParseType lowercases and trims raw and reports whether it names a known
// task type.
func ParseType(raw string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := validTypes[t]
	return t, ok
}

// TypeOrDefault resolves a free-text cell to a Type, falling back to
// DefaultType for anything unrecognized.
func TypeOrDefault(raw string) Type {
	if t, ok := ParseType(raw); ok {
		return t
	}
	return DefaultType
}

// Label returns a human-readable name for t, used in templated descriptions.
func (t Type) Label() string {
	switch t {
	case TypeConfirmation:
		return "Confirmation"
	case TypeNoShow:
		return "No-show follow-up"
	case TypePreVisit:
		return "Pre-visit"
	case TypePostVisit:
		return "Post-visit"
	case TypeRecall:
		return "Recall"
	case TypeCollections:
		return "Collections"
	default:
		return string(t)
	}
}

// ValidStatus reports whether s is a known task status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed:
		return true
	}
	return false
}
