package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

/* ---------------------------------------------------------------------
   Data-transfer objects (DTOs)
   ---------------------------------------------------------------------
   JSON contract with the employee-directory service. Only the fields we
   use today are exposed; adding a JSON tag later is backward-compatible.
   ------------------------------------------------------------------ */

type Employee struct {
	ID    string `json:"id"` // string for easy cross-service use
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
}

/* ---------------------------------------------------------------------
   Client interface & HTTP implementation
   ------------------------------------------------------------------ */

type DirectoryClient interface {
	GetEmployee(ctx context.Context, userID string) (*Employee, error)
}

// httpDirectoryClient is a thin wrapper over net/http that knows how to talk
// to the directory service: it builds the request and unmarshals the
// response, nothing more.
type httpDirectoryClient struct {
	baseURL string       // e.g. "http://employee-directory:8080/api/internal"
	http    *http.Client // injected so we can swap in mocks/timeouts later
}

// NewDirectoryHTTPClient is the public constructor used by the service at
// boot time.
func NewDirectoryHTTPClient(baseURL string) DirectoryClient {
	return &httpDirectoryClient{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

/* ---------------------------------------------------------------------
   GetEmployee – GET /employees/{id}
   ------------------------------------------------------------------ */

func (c *httpDirectoryClient) GetEmployee(ctx context.Context, userID string) (*Employee, error) {
	url := fmt.Sprintf("%s/employees/%s", c.baseURL, userID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build directory request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("directory call failed: %w", err)
	}
	defer resp.Body.Close()

	// Non-2xx → bubble up the plain body for easier troubleshooting.
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("directory returned %s – body: %s", resp.Status, raw)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	// The directory responds with an envelope: {"message": ..., "data": {...}}.
	// `id` must be tolerated as either a JSON number or a string.
	type envelope struct {
		Data struct {
			ID    flexID `json:"id"`
			Name  string `json:"name"`
			Role  string `json:"role"`
			Email string `json:"email"`
		} `json:"data"`
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode employee: %w", err)
	}

	return &Employee{
		ID:    string(env.Data.ID),
		Name:  env.Data.Name,
		Role:  env.Data.Role,
		Email: env.Data.Email,
	}, nil
}

// flexID accepts both `"id": 7` and `"id": "u-42"` payload shapes.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*f = flexID(s)
	return nil
}
