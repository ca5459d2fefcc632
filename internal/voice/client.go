package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wellvoice/clinic-ops/pkg/logging"
)

const defaultTimeout = 15 * time.Second

// Client wraps the voice-assistant platform's REST API. All payloads go
// through the typed builders in types.go and are validated client-side.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logging.Logger
}

// NewClient constructs a platform client.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *logging.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		logger:     logger.WithComponent("voice"),
	}
}

// CreateAssistant registers a new assistant.
func (c *Client) CreateAssistant(ctx context.Context, req *AssistantCreateRequest) (*Assistant, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out Assistant
	if err := c.doJSON(ctx, http.MethodPost, "/assistant", req, &out); err != nil {
		return nil, fmt.Errorf("create assistant: %w", err)
	}
	return &out, nil
}

// UpdateAssistant patches an existing assistant's configuration.
func (c *Client) UpdateAssistant(ctx context.Context, id string, req *AssistantCreateRequest) (*Assistant, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out Assistant
	path := "/assistant/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodPatch, path, req, &out); err != nil {
		return nil, fmt.Errorf("update assistant: %w", err)
	}
	return &out, nil
}

// CreateSquad registers a squad of assistants with handoff wiring.
func (c *Client) CreateSquad(ctx context.Context, req *SquadCreateRequest) (*Squad, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out Squad
	if err := c.doJSON(ctx, http.MethodPost, "/squad", req, &out); err != nil {
		return nil, fmt.Errorf("create squad: %w", err)
	}
	return &out, nil
}

// ListCalls fetches recent call logs, newest first.
func (c *Client) ListCalls(ctx context.Context, limit int) ([]CallLog, error) {
	path := "/call"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []CallLog
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("list calls: %w", err)
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	endpoint := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(respBody)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		c.logger.Warn("voice API non-2xx response", "status", resp.StatusCode, "path", path, "body", msg)
		return fmt.Errorf("voice API returned %d: %s", resp.StatusCode, msg)
	}

	if len(respBody) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
