package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wellvoice/clinic-ops/pkg/logging"
)

// AgentResolver maps a free-text agent reference from an import row to a
// known agent identity. Implementations must always return a usable id.
type AgentResolver interface {
	Resolve(ctx context.Context, ref string) string
}

// RowInput carries the task-related cells of one import row.
type RowInput struct {
	CreateTaskCell string
	TaskTypeCell   string
	AgentRef       string
	Provider       string
	Description    string
	FirstName      string
	LastName       string
}

// Writer creates follow-up tasks as an import side effect.
type Writer struct {
	repo     Repository
	resolver AgentResolver
	logger   *logging.Logger
}

// NewWriter creates a Writer.
func NewWriter(repo Repository, resolver AgentResolver, logger *logging.Logger) *Writer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Writer{repo: repo, resolver: resolver, logger: logger.WithComponent("tasks")}
}

// truthy spellings accepted in the "Whether to create task" cell. An unset
// or blank cell is also treated as eligible. Raw boolean cells arrive from
// the workbook as "1".
var truthyCells = map[string]struct{}{
	"":     {},
	"true": {},
	"yes":  {},
	"Yes":  {},
	"1":    {},
}

// Eligible reports whether the create-task cell value opts the row in.
func Eligible(cell string) bool {
	_, ok := truthyCells[strings.TrimSpace(cell)]
	return ok
}

// CreateForRow conditionally inserts one pending task for the patient. The
// boolean reports whether a task was written; ineligible rows return
// (false, nil).
func (w *Writer) CreateForRow(ctx context.Context, patientID string, in RowInput) (bool, error) {
	if !Eligible(in.CreateTaskCell) {
		return false, nil
	}

	taskType := TypeOrDefault(in.TaskTypeCell)
	agentID := w.resolver.Resolve(ctx, in.AgentRef)

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = fmt.Sprintf("%s call for %s %s",
			taskType.Label(), strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName))
	}

	t := &Task{
		ID:          uuid.NewString(),
		PatientID:   patientID,
		Provider:    strings.TrimSpace(in.Provider),
		Type:        taskType,
		Status:      StatusPending,
		Description: description,
		AgentID:     agentID,
	}
	if err := w.repo.Insert(ctx, t); err != nil {
		return false, err
	}
	w.logger.Debug("task created", "task_id", t.ID, "patient_id", patientID, "type", string(taskType), "agent_id", agentID)
	return true, nil
}
