package backend

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

	"github.com/google/uuid"
)

// StatusError is a failure the backend reported itself, carrying the
// human-readable reason from its error body.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// Client talks to the password-analysis backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the backend at baseURL. The base address is
// passed in explicitly; there is no package-level default.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Analyze submits a candidate password for scoring. The password travels only
// in the request body and is never retained by the client.
func (c *Client) Analyze(ctx context.Context, password string) (Report, error) {
	body, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return Report{}, fmt.Errorf("encode analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze", bytes.NewReader(body))
	if err != nil {
		return Report{}, fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("analyze: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, statusError(resp)
	}

	var report Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return Report{}, fmt.Errorf("decode analyze response: %w", err)
	}
	return report, nil
}

// Generate asks the backend for a freshly generated password of the given
// length. Callers treat the result verbatim; any error means "use the local
// fallback", never a user-visible failure.
func (c *Client) Generate(ctx context.Context, length int) (string, error) {
	q := url.Values{"length": {strconv.Itoa(length)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/generate?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp)
	}

	var out struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if out.Password == "" {
		return "", fmt.Errorf("generate: empty password in response")
	}
	return out.Password, nil
}

// statusError extracts the backend's {"error": "..."} body when present.
func statusError(resp *http.Response) error {
	se := &StatusError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		var body struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &body) == nil {
			se.Message = body.Error
		}
	}
	return se
}
