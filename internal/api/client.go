// Package api is the single choke point for talking to the commerce backend.
// It builds request URLs, attaches the bearer token, and normalizes JSON and
// error responses into one error type carrying a human-readable message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Error is the normalized failure shape for every non-2xx backend response.
// Message is already human-readable (validation arrays come pre-joined).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// IsUnauthorized reports whether err is a backend 401/403, which the session
// layer treats as an expired or invalid token.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
	}
	return false
}

type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		timeout: timeout,
	}
}

// fieldError is one entry of a FastAPI-style validation detail array.
type fieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func (f fieldError) String() string {
	parts := make([]string, 0, len(f.Loc))
	for _, l := range f.Loc {
		parts = append(parts, fmt.Sprint(l))
	}
	return strings.Join(parts, ".") + ": " + f.Msg
}

// do issues one JSON request. token == "" means the call needs no auth.
// A nil out discards the payload; 204 responses are treated as plain success.
func (c *Client) do(ctx context.Context, method, endpoint, token string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return errors.Wrapf(err, "build request %s %s", method, endpoint)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrapf(err, "chamada à API %s", endpoint)
	}
	defer resp.Body.Close()

	return decode(resp, out)
}

// decode normalizes the response per the backend's conventions.
func decode(resp *http.Response, out any) error {
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		if !ok {
			return &Error{Status: resp.StatusCode, Message: fmt.Sprintf("erro de rede ou servidor: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))}
		}
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	if !ok {
		return &Error{Status: resp.StatusCode, Message: detailMessage(raw, resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "resposta inválida do servidor com status %d", resp.StatusCode)
	}
	return nil
}

// detailMessage collapses the backend's error body into one readable string.
// A detail array of field errors becomes "loc.field: msg; loc.field: msg".
func detailMessage(raw []byte, status int) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return fmt.Sprintf("erro na API: %d %s", status, http.StatusText(status))
	}

	var fields []fieldError
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil && len(fields) > 0 {
		msgs := make([]string, len(fields))
		for i, f := range fields {
			msgs[i] = f.String()
		}
		return strings.Join(msgs, "; ")
	}

	var msg string
	if err := json.Unmarshal(envelope.Detail, &msg); err == nil && msg != "" {
		return msg
	}
	return fmt.Sprintf("erro na API: %d %s", status, http.StatusText(status))
}

func (c *Client) get(ctx context.Context, endpoint, token string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, token, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, token, body, out)
}

func (c *Client) put(ctx context.Context, endpoint, token string, body, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, token, body, out)
}

func (c *Client) delete(ctx context.Context, endpoint, token string) error {
	return c.do(ctx, http.MethodDelete, endpoint, token, nil, nil)
}
