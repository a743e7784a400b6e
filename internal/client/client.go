// Package client talks to the assignment board API over HTTP/JSON.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "technician-board/internal/errors"
	"technician-board/internal/logger"
	"technician-board/internal/roster"
)

// APIError is returned for unexpected non-2xx responses
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("board api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("board api: status %d: %s", e.StatusCode, e.Message)
}

// Client is a board API client
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API rooted at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type successBody struct {
	Success bool `json:"success"`
}

// FetchAssignments returns the aggregated department view
func (c *Client) FetchAssignments(ctx context.Context) (roster.View, error) {
	var view roster.View
	if err := c.do(ctx, http.MethodGet, "/api/assignments", nil, &view); err != nil {
		return nil, err
	}
	if view == nil {
		view = roster.View{}
	}
	return view, nil
}

// MoveTechnician reassigns a technician. An unknown technician yields ErrTechnicianNotFound.
func (c *Client) MoveTechnician(ctx context.Context, move roster.Move) error {
	var resp successBody
	err := c.do(ctx, http.MethodPost, "/api/move-technician", move, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			switch apiErr.StatusCode {
			case http.StatusNotFound:
				return fmt.Errorf("%w: %s", apperrors.ErrTechnicianNotFound, move.TechnicianID)
			case http.StatusBadRequest:
				return apperrors.NewValidationError("", apiErr.Message)
			}
		}
		return err
	}
	if !resp.Success {
		return &APIError{StatusCode: http.StatusOK, Message: "move not acknowledged"}
	}
	return nil
}

// VerifyPin reports whether pin matches the server's edit PIN
func (c *Client) VerifyPin(ctx context.Context, pin string) (bool, error) {
	var resp successBody
	err := c.do(ctx, http.MethodPost, "/api/verify-pin", map[string]string{"pin": pin}, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			switch apiErr.StatusCode {
			case http.StatusUnauthorized:
				return false, nil
			case http.StatusTooManyRequests:
				return false, apperrors.ErrRateLimited
			}
		}
		return false, err
	}
	return resp.Success, nil
}

// AuditLog returns up to limit recent changes, newest first
func (c *Client) AuditLog(ctx context.Context, limit int) ([]roster.AuditEntry, error) {
	path := "/api/audit-log?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	var entries []roster.AuditEntry
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Health checks the server's liveness endpoint
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health/live", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.WithContext(ctx).Debugf("board api %s %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var eb errorBody
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &eb) == nil {
			if eb.Error != "" {
				msg = eb.Error
			} else if eb.Message != "" {
				msg = eb.Message
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
