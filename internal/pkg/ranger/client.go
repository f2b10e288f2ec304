package ranger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/metrics"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	nrpkg "github.com/twigalabs/rangertrack/internal/pkg/newrelic"
)

const (
	defaultPageSize = 4000
	defaultTimeout  = 30 * time.Second
	// Re-authenticate slightly before the server-side expiry
	tokenExpiryMargin = 60 * time.Second
)

// ErrUnauthorized is returned when the upstream rejects the credentials
var ErrUnauthorized = fmt.Errorf("upstream rejected credentials")

// Client talks to the upstream tracking server. It authenticates with the
// password grant, caches the bearer token for the session and re-acquires it
// when it expires or a request comes back 401.
type Client struct {
	httpClient *http.Client
	serverURL  string
	username   string
	password   string
	clientID   string
	pageSize   int
	logger     *logger.ZapLogger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// NewClient creates a client for the configured upstream server
func NewClient(cfg models.RangerConfig, zapLogger *logger.ZapLogger) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	timeout := defaultTimeout
	if cfg.TimeoutS > 0 {
		timeout = time.Duration(cfg.TimeoutS) * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		serverURL:  strings.TrimRight(cfg.ServerURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		clientID:   cfg.ClientID,
		pageSize:   pageSize,
		logger:     zapLogger,
	}
}

// Authenticate acquires a bearer token via the password grant. Called lazily
// by the request path; exposed so callers can validate credentials up front.
func (c *Client) Authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticateLocked(ctx)
}

func (c *Client) authenticateLocked(ctx context.Context) error {
	form := url.Values{}
	form.Set("username", c.username)
	form.Set("password", c.password)
	form.Set("grant_type", "password")
	form.Set("client_id", c.clientID)

	authURL := c.serverURL + "/oauth2/token/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	metrics.RecordUpstreamRequest(serviceName(), "oauth2/token", err, time.Since(start))
	if err != nil {
		return fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("auth request returned status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return fmt.Errorf("failed to decode auth response: %w", err)
	}
	if token.AccessToken == "" {
		return fmt.Errorf("auth response contained no access token")
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	c.logger.Debug("authenticated with upstream server",
		logger.String("server", c.serverURL),
		logger.Int("expires_in_s", token.ExpiresIn))

	return nil
}

// token returns the cached bearer token, refreshing it when missing or stale
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken == "" || time.Now().After(c.tokenExpiry.Add(-tokenExpiryMargin)) {
		if err := c.authenticateLocked(ctx); err != nil {
			return "", err
		}
	}
	return c.accessToken, nil
}

// invalidateToken drops the cached token so the next request re-authenticates
func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

// getJSON performs an authenticated GET and decodes the response body into
// out. A 401 triggers one re-authentication and retry before failing.
func (c *Client) getJSON(ctx context.Context, rawURL, endpoint string, out interface{}) error {
	body, err := c.get(ctx, rawURL, endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL, endpoint string) ([]byte, error) {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := c.token(ctx)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")

		start := time.Now()
		resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
			return c.httpClient.Do(req)
		})
		metrics.RecordUpstreamRequest(serviceName(), endpoint, err, time.Since(start))
		if err != nil {
			return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusUnauthorized {
			// Token expired server-side, re-authenticate once
			c.invalidateToken()
			c.logger.Warn("upstream returned 401, re-authenticating",
				logger.String("endpoint", endpoint))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("request to %s returned status %d", endpoint, resp.StatusCode)
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read %s response: %w", endpoint, readErr)
		}
		return body, nil
	}
	return nil, ErrUnauthorized
}

func serviceName() string {
	return "rangertrack-tracking"
}
