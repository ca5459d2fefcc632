package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type memRepo struct {
	agents []Agent
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*Agent, error) {
	for _, a := range m.agents {
		if a.ID == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRepo) List(ctx context.Context) ([]Agent, error) {
	return m.agents, nil
}

func (m *memRepo) ListAI(ctx context.Context) ([]Agent, error) {
	var out []Agent
	for _, a := range m.agents {
		if a.Kind == KindAI && a.Active {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memRepo) Insert(ctx context.Context, a *Agent) error {
	m.agents = append(m.agents, *a)
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id string) error { return nil }

func testRepo() *memRepo {
	return &memRepo{agents: []Agent{
		{ID: "agent-recall", Name: "Recall Bot", Kind: KindAI, Active: true},
		{ID: "agent-confirm", Name: "Confirmation Bot", Kind: KindAI, Active: true},
		{ID: "agent-inactive", Name: "Old Bot", Kind: KindAI, Active: false},
		{ID: "dr-smith", Name: "Dr. Smith", Kind: KindHuman, Active: true},
	}}
}

func TestResolveExactID(t *testing.T) {
	r := NewResolver(testRepo(), "agent-front-desk", nil)
	assert.Equal(t, "agent-recall", r.Resolve(context.Background(), "agent-recall"))
	// Exact id matches work for any kind, not just AI.
	assert.Equal(t, "dr-smith", r.Resolve(context.Background(), "dr-smith"))
}

func TestResolveCaseInsensitiveName(t *testing.T) {
	r := NewResolver(testRepo(), "agent-front-desk", nil)
	assert.Equal(t, "agent-recall", r.Resolve(context.Background(), "recall bot"))
	assert.Equal(t, "agent-confirm", r.Resolve(context.Background(), "CONFIRMATION BOT"))
	assert.Equal(t, "agent-recall", r.Resolve(context.Background(), "AGENT-RECALL"))
}

func TestResolveDefaultFallback(t *testing.T) {
	r := NewResolver(testRepo(), "agent-front-desk", nil)
	assert.Equal(t, "agent-front-desk", r.Resolve(context.Background(), "Nobody Special"))
	assert.Equal(t, "agent-front-desk", r.Resolve(context.Background(), ""))
	assert.Equal(t, "agent-front-desk", r.Resolve(context.Background(), "   "))
	// Human names are not in the AI match set; only exact id reaches them.
	assert.Equal(t, "agent-front-desk", r.Resolve(context.Background(), "dr. smith"))
	// Inactive AI agents are excluded from the fuzzy join.
	assert.Equal(t, "agent-front-desk", r.Resolve(context.Background(), "Old Bot"))
}
