package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	tasks []Task
}

func (m *memRepo) Insert(ctx context.Context, t *Task) error {
	m.tasks = append(m.tasks, *t)
	return nil
}

func (m *memRepo) List(ctx context.Context, status string) ([]Task, error) {
	return m.tasks, nil
}

func (m *memRepo) UpdateStatus(ctx context.Context, id, status string) (*Task, error) {
	return nil, ErrTaskNotFound
}

type stubResolver struct {
	result string
	lastIn string
}

func (s *stubResolver) Resolve(ctx context.Context, ref string) string {
	s.lastIn = ref
	if s.result == "" {
		return "agent-front-desk"
	}
	return s.result
}

func TestEligibility(t *testing.T) {
	eligible := []string{"", "  ", "true", "yes", "Yes", "1"}
	for _, cell := range eligible {
		assert.True(t, Eligible(cell), "cell %q should be eligible", cell)
	}

	// Only the exact spellings opt in; case variants are not in the set.
	ineligible := []string{"no", "No", "false", "FALSE", "TRUE", "YES", "0", "nope", "y"}
	for _, cell := range ineligible {
		assert.False(t, Eligible(cell), "cell %q should not be eligible", cell)
	}
}

func TestCreateForRowSkipsIneligible(t *testing.T) {
	repo := &memRepo{}
	w := NewWriter(repo, &stubResolver{}, nil)

	created, err := w.CreateForRow(context.Background(), "PT-0001", RowInput{CreateTaskCell: "no"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, repo.tasks)
}

func TestCreateForRowDefaults(t *testing.T) {
	repo := &memRepo{}
	w := NewWriter(repo, &stubResolver{}, nil)

	created, err := w.CreateForRow(context.Background(), "PT-0001", RowInput{
		TaskTypeCell: "definitely-not-a-type",
		FirstName:    "Ann",
		LastName:     "Lee",
	})
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, repo.tasks, 1)

	task := repo.tasks[0]
	assert.Equal(t, TypePostVisit, task.Type)
	assert.Equal(t, StatusPending, task.Status)
	assert.Equal(t, "agent-front-desk", task.AgentID)
	assert.Equal(t, "Post-visit call for Ann Lee", task.Description)
	assert.NotEmpty(t, task.ID)
}

func TestCreateForRowAcceptsKnownType(t *testing.T) {
	repo := &memRepo{}
	w := NewWriter(repo, &stubResolver{result: "agent-recall"}, nil)

	created, err := w.CreateForRow(context.Background(), "PT-0001", RowInput{
		TaskTypeCell: "  Recall  ",
		AgentRef:     "Recall Bot",
		FirstName:    "Bo",
		LastName:     "Kim",
	})
	require.NoError(t, err)
	assert.True(t, created)

	task := repo.tasks[0]
	assert.Equal(t, TypeRecall, task.Type)
	assert.Equal(t, "agent-recall", task.AgentID)
	assert.Equal(t, "Recall call for Bo Kim", task.Description)
}

func TestCreateForRowKeepsExplicitDescription(t *testing.T) {
	repo := &memRepo{}
	w := NewWriter(repo, &stubResolver{}, nil)

	_, err := w.CreateForRow(context.Background(), "PT-0001", RowInput{
		Description: "Call about lab results",
		FirstName:   "Ann",
		LastName:    "Lee",
	})
	require.NoError(t, err)
	assert.Equal(t, "Call about lab results", repo.tasks[0].Description)
}

func TestParseType(t *testing.T) {
	got, ok := ParseType(" Collections ")
	assert.True(t, ok)
	assert.Equal(t, TypeCollections, got)

	_, ok = ParseType("urgent")
	assert.False(t, ok)

	assert.Equal(t, DefaultType, TypeOrDefault(""))
	assert.Equal(t, TypeNoShow, TypeOrDefault("No-Show"))
}
