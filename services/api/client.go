package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/config"
	"github.com/sedtender/tender_portal/environment"
	"github.com/sedtender/tender_portal/services"
	"github.com/sedtender/tender_portal/utils/metrics"
	"go.uber.org/zap"
)

const defaultBaseURL = "http://localhost:8000"

// Client sends authenticated JSON requests to the tender API
type Client struct {
	logger     *zap.Logger
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// NewClient creates a Client for the API at the API_BASE_URL env var
func NewClient(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, m *metrics.Metrics) (*Client, error) {
	base := strings.TrimSpace(env.Get(environment.APIBaseURL))
	if base == "" {
		base = defaultBaseURL
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	if _, err := url.Parse(base); err != nil {
		return nil, errors.Wrap(err, "invalid api base url")
	}

	timeout := time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		logger:     logger,
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}, nil
}

// Do sends a request to path on the API.
// body is sent as JSON when not nil, token is sent as a bearer token when not empty
// and a successful response body is decoded into out when out is not nil.
// A 401 response results in a *services.UnauthorizedError, any other non-success
// response in a *services.APIError carrying the API's error message
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, token string, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "could not encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if t := strings.TrimSpace(token); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(method, path, 0, time.Since(start))
		c.logger.Error("api request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return errors.Wrap(&services.APIError{Message: services.NetworkErrorMessage}, err.Error())
	}
	defer res.Body.Close()
	c.metrics.ObserveUpstream(method, path, res.StatusCode, time.Since(start))

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(&services.APIError{Status: res.StatusCode, Message: services.NetworkErrorMessage}, err.Error())
	}

	if res.StatusCode == http.StatusUnauthorized {
		c.logger.Debug("api rejected session token", zap.String("method", method), zap.String("path", path))
		return &services.UnauthorizedError{Message: errorMessage(res.StatusCode, data)}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &services.APIError{
			Status:  res.StatusCode,
			Message: errorMessage(res.StatusCode, data),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "could not decode response body")
	}
	return nil
}

// errorMessage extracts the message of an API error payload.
// Payloads use either a "detail" or an "error" field
func errorMessage(status int, data []byte) string {
	var payload struct {
		Detail interface{} `json:"detail"`
		Error  interface{} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return services.NetworkErrorMessage
	}

	if detail, ok := payload.Detail.(string); ok && detail != "" {
		return detail
	}
	if msg, ok := payload.Error.(string); ok && msg != "" {
		return msg
	}
	return fmt.Sprintf("HTTP %d", status)
}
