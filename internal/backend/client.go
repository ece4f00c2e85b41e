package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"collection-console/internal/config"
	"collection-console/internal/metrics"

	"github.com/google/uuid"
)

// ErrPermissionDenied is the user-facing message for a backend 403. The exact
// wording is part of the observable contract.
var ErrPermissionDenied = fmt.Errorf("Error connecting to the backend: You do not have sufficient permissions.")

const serviceTokenHeader = "X-External-Access-Token"

// Client performs one-shot HTTP calls against the collection backend. Every
// request carries two credentials: the caller's bearer token and the static
// service token identifying this front end as a trusted caller.
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
	logger       *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("backend host is required")
	}

	if cfg.ServiceToken == "" {
		return nil, fmt.Errorf("backend service token is required")
	}

	return &Client{
		baseURL:      strings.TrimSuffix(cfg.Host, "/"),
		serviceToken: cfg.ServiceToken,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		logger:       logger,
	}, nil
}

type requestOptions struct {
	method      string
	body        io.Reader
	contentType string
	operation   string
}

// makeRequest performs exactly one outbound call and normalizes the outcome:
// the parsed JSON body (an empty object when absent or malformed) and an
// error carrying the user-facing message for non-2xx and network failures.
// A body that fails to parse on an otherwise-successful response is logged
// and replaced with an empty object; callers tolerate empty results.
func (c *Client) makeRequest(ctx context.Context, endpoint, authToken string, opts requestOptions) (json.RawMessage, error) {
	method := opts.method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, opts.body)
	if err != nil {
		return emptyObject(), fmt.Errorf("Error connecting to the backend: %v", err)
	}

	requestID := uuid.New().String()
	req.Header.Set(serviceTokenHeader, c.serviceToken)
	req.Header.Set("Authorization", authToken)
	req.Header.Set("X-Request-Id", requestID)
	if opts.contentType != "" {
		req.Header.Set("Content-Type", opts.contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.BackendRequestErrors.WithLabelValues(opts.operation).Inc()
		return emptyObject(), fmt.Errorf("Error connecting to the backend: %v", err)
	}
	defer resp.Body.Close()

	metrics.BackendRequestsTotal.WithLabelValues(opts.operation, method, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.BackendRequestDuration.WithLabelValues(opts.operation).Observe(time.Since(start).Seconds())

	var callErr error
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusForbidden {
			callErr = ErrPermissionDenied
		} else {
			callErr = fmt.Errorf("Error connecting to the backend: HTTP %d.", resp.StatusCode)
		}
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		c.logger.Warn("failed to read backend response body",
			"operation", opts.operation,
			"request_id", requestID,
			"error", readErr)
		return emptyObject(), callErr
	}

	if len(body) == 0 || !json.Valid(body) {
		if len(body) > 0 {
			c.logger.Warn("backend returned a malformed JSON body, substituting an empty object",
				"operation", opts.operation,
				"request_id", requestID,
				"status", resp.StatusCode)
		}
		return emptyObject(), callErr
	}

	return json.RawMessage(body), callErr
}

func emptyObject() json.RawMessage {
	return json.RawMessage("{}")
}

// decode unmarshals a backend body into out, tolerating shape mismatches.
// The backend owns these shapes; a partial decode leaves zero values behind.
func (c *Client) decode(body json.RawMessage, out any, operation string) {
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Warn("failed to decode backend response",
			"operation", operation,
			"error", err)
	}
}
