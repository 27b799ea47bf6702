package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"quadsolve/internal/logging"
	"quadsolve/internal/quadratic"
	"quadsolve/internal/response"
	"quadsolve/internal/shared"
)

// maxResponseBytes bounds how much of a reply is read.
const maxResponseBytes = 1 << 20

type Client struct {
	Cfg    *shared.ClientConfig
	Client *http.Client
}

// ServerError is a non-200 reply. Message is the server's error string when
// the body was a response contract, otherwise the raw body.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func New(cfg *shared.ClientConfig) *Client {
	if cfg == nil {
		cfg = &shared.ClientConfig{}
	}
	cfg.ApplyDefaults()
	return &Client{
		Cfg:    cfg,
		Client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Cfg.ServerURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	id := logging.RequestID(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	req.Header.Set(logging.RequestIDHeader, id)
	return req, nil
}

// Solve asks the server for the roots of a·x² + b·x + c = 0.
func (c *Client) Solve(ctx context.Context, a, b, cc float64) (*response.Response, error) {
	body, err := json.Marshal(shared.SolveRequest{Params: quadratic.Coefficients{A: a, B: b, C: cc}})
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/calculate?quadratic", body)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b2, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	var out response.Response
	if err := json.Unmarshal(b2, &out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &ServerError{Status: resp.StatusCode, Message: string(bytes.TrimSpace(b2))}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if out.Error != nil {
			msg = *out.Error
		}
		return &out, &ServerError{Status: resp.StatusCode, Message: msg}
	}
	return &out, nil
}

// Health reports whether the server answers GET /health with ok=true.
func (c *Client) Health(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var hr struct {
		OK bool `json:"ok"`
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode != http.StatusOK {
		return &ServerError{Status: resp.StatusCode, Message: string(bytes.TrimSpace(b))}
	}
	if err := json.Unmarshal(b, &hr); err != nil {
		return fmt.Errorf("decode health: %w", err)
	}
	if !hr.OK {
		return &ServerError{Status: resp.StatusCode, Message: "server reports not ok"}
	}
	return nil
}
