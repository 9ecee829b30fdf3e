// Package verify talks to the external licence verification API. The API is
// an optional dependency: when disabled the calling validators omit the check
// entirely.
package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Status is the outcome of one verification lookup.
type Status string

const (
	StatusValid    Status = "valid"
	StatusInvalid  Status = "invalid"
	StatusError    Status = "error"
	StatusDisabled Status = "disabled"
)

// Jurisdiction identifies the registry queried.
type Jurisdiction string

const (
	JurisdictionOntario Jurisdiction = "ontario"
	JurisdictionBC      Jurisdiction = "british-columbia"
)

// Result carries the verification outcome plus diagnostic detail.
type Result struct {
	Status  Status
	Message string
	Data    map[string]interface{}
}

// Client looks up a driver's licence against a jurisdiction registry.
// Implementations must be safe for concurrent use.
type Client interface {
	Enabled() bool
	VerifyLicense(ctx context.Context, jurisdiction Jurisdiction, documentNumber, lastName string) Result
}

// Disabled is the no-op client used when verification is not configured.
type Disabled struct{}

func (Disabled) Enabled() bool { return false }

func (Disabled) VerifyLicense(context.Context, Jurisdiction, string, string) Result {
	return Result{Status: StatusDisabled, Message: "verification disabled"}
}

// HTTPClient calls the verification API over HTTP with a bearer token.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  zerolog.Logger
}

// NewHTTPClient builds a client against baseURL. A zero timeout defaults to
// 30 seconds.
func NewHTTPClient(baseURL, token string, timeout time.Duration, logger zerolog.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *HTTPClient) Enabled() bool { return c.baseURL != "" && c.token != "" }

// VerifyLicense queries the registry for the licence. A 200 response with a
// non-empty data object means the licence exists; an explicit empty data
// object or a 404 means it does not. Every other outcome is an availability
// problem reported as StatusError so callers can degrade it to a warning.
func (c *HTTPClient) VerifyLicense(ctx context.Context, jurisdiction Jurisdiction, documentNumber, lastName string) Result {
	endpoint := fmt.Sprintf("%s/ca/%s/driver-license", c.baseURL, jurisdiction)
	u, err := url.Parse(endpoint)
	if err != nil {
		return Result{Status: StatusError, Message: fmt.Sprintf("invalid endpoint: %v", err)}
	}
	q := u.Query()
	q.Set("documentNumber", documentNumber)
	if lastName != "" {
		q.Set("lastName", lastName)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Result{Status: StatusError, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("jurisdiction", string(jurisdiction)).Msg("verification request failed")
		return Result{Status: StatusError, Message: fmt.Sprintf("verification request failed: %v", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return Result{Status: StatusError, Message: fmt.Sprintf("read response: %v", err)}
		}
		var payload struct {
			Data map[string]interface{} `json:"data"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return Result{Status: StatusError, Message: fmt.Sprintf("decode response: %v", err)}
		}
		if len(payload.Data) == 0 {
			return Result{Status: StatusInvalid, Message: "no registry record found"}
		}
		return Result{Status: StatusValid, Message: "registry record found", Data: payload.Data}
	case resp.StatusCode == http.StatusNotFound:
		return Result{Status: StatusInvalid, Message: "no registry record found"}
	case resp.StatusCode == http.StatusUnauthorized:
		c.logger.Error().Str("jurisdiction", string(jurisdiction)).Msg("verification API rejected credentials")
		return Result{Status: StatusError, Message: "verification API rejected credentials"}
	case resp.StatusCode == http.StatusTooManyRequests:
		return Result{Status: StatusError, Message: "verification API rate limit exceeded"}
	default:
		return Result{Status: StatusError, Message: fmt.Sprintf("verification API returned status %d", resp.StatusCode)}
	}
}
