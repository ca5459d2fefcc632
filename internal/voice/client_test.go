package voice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssistant(t *testing.T) {
	var gotAuth string
	var gotBody AssistantCreateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/assistant", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Assistant{ID: "asst-123", Name: gotBody.Name})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key", 0, nil)
	created, err := c.CreateAssistant(context.Background(), validAssistant())
	require.NoError(t, err)
	assert.Equal(t, "asst-123", created.ID)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "Recall Bot", gotBody.Name)
}

func TestCreateAssistantRejectsInvalidPayloadLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key", 0, nil)
	req := validAssistant()
	req.Name = ""
	_, err := c.CreateAssistant(context.Background(), req)
	require.Error(t, err)
	assert.False(t, called, "invalid payload must not reach the wire")
}

func TestCreateSquadNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusPaymentRequired)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key", 0, nil)
	_, err := c.CreateSquad(context.Background(), &SquadCreateRequest{
		Name:    "Front Office",
		Members: []SquadMember{{AssistantID: "asst-1"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}

func TestListCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/call", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]CallLog{
			{ID: "call-1", Status: "ended", DurationSec: 42},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key", 0, nil)
	calls, err := c.ListCalls(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "call-1", calls[0].ID)
}
