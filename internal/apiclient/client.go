// Package apiclient talks to the ghostconfig API server over HTTP/JSON.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ghostconfig/internal/model"
)

// StatusError is a non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// ExitError wraps a failed exit request. Callers treat it as advisory.
type ExitError struct {
	Err error
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit request: %v", e.Err) }
func (e *ExitError) Unwrap() error { return e.Err }

type Client struct {
	BaseURL string
	HTTP    *http.Client
	// AcceptLanguage is forwarded on /api/i18n so the server can pick a default.
	AcceptLanguage string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if path == "/api/i18n" && strings.TrimSpace(c.AcceptLanguage) != "" {
		req.Header.Set("Accept-Language", c.AcceptLanguage)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}

func (c *Client) Options(ctx context.Context) ([]model.Section, error) {
	var out []model.Section
	if err := c.do(ctx, http.MethodGet, "/api/options", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Colors(ctx context.Context) ([]model.Color, error) {
	var out []model.Color
	if err := c.do(ctx, http.MethodGet, "/api/colors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Fonts(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/api/fonts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) I18n(ctx context.Context) (model.I18nBundle, error) {
	var out model.I18nBundle
	if err := c.do(ctx, http.MethodGet, "/api/i18n", nil, &out); err != nil {
		return model.I18nBundle{}, err
	}
	return out, nil
}

// Config returns the raw key/value pairs from the user's config file.
func (c *Client) Config(ctx context.Context) (map[string]string, error) {
	out := map[string]string{}
	if err := c.do(ctx, http.MethodGet, "/api/config", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaveConfig(ctx context.Context, key, value string) error {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/config", model.ConfigUpdate{Key: key, Value: value}, &out); err != nil {
		return err
	}
	if out.Status != "" && out.Status != "ok" {
		return errors.New("save config: unexpected status " + out.Status)
	}
	return nil
}

// Exit asks the server to shut down. Any failure is an *ExitError.
func (c *Client) Exit(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/exit", nil, nil); err != nil {
		return &ExitError{Err: err}
	}
	return nil
}

// Health reports whether the server answers GET /health.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
