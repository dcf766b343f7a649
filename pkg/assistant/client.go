// Package assistant wraps the remote model service: plain request/response
// JSON calls, no retries, no streaming. A failed call is reported once and
// the caller decides whether the user retries.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/dailyctx"
)

const (
	requestTimeout = 60 * time.Second
	// probeTimeout bounds the availability check only; a slow health
	// endpoint reads as unavailable, not as an error.
	probeTimeout = 3 * time.Second
)

type Client struct {
	base string
	http *http.Client
	log  *zap.SugaredLogger
}

// New returns a client for the service at base, e.g. "http://localhost:8000".
func New(base string, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: requestTimeout},
		log:  log,
	}
}

// APIError is a non-success response, carrying the HTTP status and the
// service's structured detail message when one was supplied.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Detail)
}

// Available probes the health endpoint with a short timeout. Unreachable,
// slow or non-2xx all read as false; this never returns an error.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debugw("health probe failed", "error", err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Health fetches the full health payload.
func (c *Client) Health(ctx context.Context) (*HealthCheck, error) {
	var out HealthCheck
	if err := c.get(ctx, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Chat sends the message history plus the daily context. The context's
// finance collection travels as "finances" per the wire contract, handled by
// the dailyctx JSON tags.
func (c *Client) Chat(ctx context.Context, messages []ChatMessage, dctx dailyctx.Context) (*ChatResponse, error) {
	var out ChatResponse
	if err := c.post(ctx, "/api/chat", ChatRequest{Messages: messages, Context: dctx}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeDay submits a daily context for a per-category breakdown.
func (c *Client) AnalyzeDay(ctx context.Context, dctx dailyctx.Context) (*DayAnalysis, error) {
	var out DayAnalysis
	if err := c.post(ctx, "/api/analyze/day", dctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ModelStatus reports whether a model is loaded and on what device.
func (c *Client) ModelStatus(ctx context.Context) (*ModelStatus, error) {
	var out ModelStatus
	if err := c.get(ctx, "/api/model/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AvailableModels lists the service's model catalog and host system info.
func (c *Client) AvailableModels(ctx context.Context) (*AvailableModels, error) {
	var out AvailableModels
	if err := c.get(ctx, "/api/models/available", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentModel describes the active model.
func (c *Client) CurrentModel(ctx context.Context) (*CurrentModel, error) {
	var out CurrentModel
	if err := c.get(ctx, "/api/models/current", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SwitchModel activates a different model by name.
func (c *Client) SwitchModel(ctx context.Context, name string) (*SwitchResponse, error) {
	var out SwitchResponse
	if err := c.post(ctx, "/api/models/switch", SwitchRequest{ModelName: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling assistant service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading assistant response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Detail: errorDetail(raw, resp.Status)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding assistant response: %w", err)
	}
	return nil
}

// errorDetail extracts the service's detail message: a plain string, a
// validation-error list rendered as "loc: msg" pairs, or the raw body when
// neither parses.
func errorDetail(raw []byte, fallback string) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil {
			return s
		}
		var list []struct {
			Loc []any  `json:"loc"`
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(payload.Detail, &list); err == nil && len(list) > 0 {
			parts := make([]string, 0, len(list))
			for _, item := range list {
				locs := make([]string, 0, len(item.Loc))
				for _, l := range item.Loc {
					locs = append(locs, fmt.Sprint(l))
				}
				parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(locs, "."), item.Msg))
			}
			return strings.Join(parts, ", ")
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return fallback
}
