// Package client talks to the travel recommendation service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tripplan/tripplan-terminal/pkg/models"
)

const (
	CitiesPath = "/api/cities"
	HealthPath = "/health/live"

	// DefaultTimeout bounds a single recommendation request
	DefaultTimeout = 30 * time.Second

	maxErrorBody = 1 << 20
)

// Recommender is the behaviour the UI layer needs from a client
type Recommender interface {
	FetchRecommendations(ctx context.Context, q models.TripQuery) (models.ResultList, error)
}

// Client issues requests against one base URL
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
	requestID  func() string
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-request deadline. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger attaches a logger for request tracing
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client for the service at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
		requestID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the configured per-request deadline
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// FetchRecommendations posts the query to the cities endpoint.
// A 2xx body that is not a JSON array yields an empty list.
func (c *Client) FetchRecommendations(ctx context.Context, q models.TripQuery) (models.ResultList, error) {
	payload, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	ctx, cancel := c.withDeadline(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+CitiesPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	reqID := c.requestID()
	req.Header.Set("X-Request-ID", reqID)

	log := c.logger.With(zap.String("request_id", reqID), zap.String("url", req.URL.String()))
	log.Debug("Requesting recommendations",
		zap.Float64("budget", q.Budget),
		zap.Float64("duration", q.Duration),
		zap.Ints("experience_types", q.ExperienceTypes))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = c.classify(ctx, err)
		log.Warn("Recommendation request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		herr := errorFromResponse(resp)
		log.Warn("Recommendation service returned an error",
			zap.Int("status", resp.StatusCode),
			zap.String("message", herr.Message))
		return nil, herr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.classify(ctx, err)
	}

	results, isList, err := decodeResults(body)
	if err != nil {
		log.Warn("Recommendation response was not valid JSON", zap.Error(err))
		return nil, &DecodeError{Err: err}
	}
	if !isList {
		log.Warn("Recommendation response was not a list")
	}

	log.Debug("Received recommendations",
		zap.Int("count", len(results)),
		zap.Duration("elapsed", time.Since(start)))
	return results, nil
}

// Health calls the liveness probe and returns the reported status
func (c *Client) Health(ctx context.Context) (string, error) {
	ctx, cancel := c.withDeadline(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+HealthPath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", c.requestID())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.classify(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errorFromResponse(resp)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &DecodeError{Err: err}
	}
	return body.Status, nil
}

func (c *Client) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// classify maps transport failures onto the error kinds the UI distinguishes
func (c *Client) classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{After: c.timeout, Err: err}
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return &TimeoutError{After: c.timeout, Err: err}
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("request canceled: %w", err)
	}
	return &NetworkError{Err: err}
}

// errorFromResponse reads a FastAPI style error body: {"detail": ...} or {"error": ...}
func errorFromResponse(resp *http.Response) *HTTPError {
	herr := &HTTPError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("Request failed: %d", resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return herr
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return herr
	}

	if msg := detailMessage(payload["detail"]); msg != "" {
		herr.Message = msg
	} else if msg := stringField(payload["error"]); msg != "" {
		herr.Message = msg
	}
	return herr
}

func stringField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// detailMessage accepts a plain string or the list form used for request validation failures
func detailMessage(raw json.RawMessage) string {
	if s := stringField(raw); s != "" {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return ""
	}
	msgs := make([]string, 0, len(items))
	for _, item := range items {
		if item.Msg != "" {
			msgs = append(msgs, item.Msg)
		}
	}
	return strings.Join(msgs, "; ")
}

func decodeResults(body []byte) (models.ResultList, bool, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, false, errors.New("invalid JSON body")
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return models.ResultList{}, false, nil
	}

	var results models.ResultList
	if err := json.Unmarshal(trimmed, &results); err != nil {
		return nil, false, err
	}
	return results, true, nil
}
