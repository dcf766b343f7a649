package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/dailyctx"
)

func TestChatSendsFinancesOnTheWire(t *testing.T) {
	var got map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var body struct {
			Messages []ChatMessage              `json:"messages"`
			Context  map[string]json.RawMessage `json:"context"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		got = body.Context
		json.NewEncoder(w).Encode(ChatResponse{Success: true, Response: "hi"})
	}))
	defer srv.Close()

	data := appdata.Empty()
	data.Money.Transactions = []appdata.MoneyTransaction{
		{ID: "tx1", Date: "2024-01-01", Type: appdata.TxExpense, Amount: 5, Category: "a"},
	}
	dctx := dailyctx.Collect(data, "2024-01-01")

	c := New(srv.URL, nil)
	resp, err := c.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hello"}}, dctx)
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if resp.Response != "hi" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if _, ok := got["finances"]; !ok {
		t.Fatalf("context must carry the finance collection as %q, got keys %v", "finances", keys(got))
	}
	if _, ok := got["money"]; ok {
		t.Fatalf("internal field name must not leak onto the wire")
	}
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestAPIErrorWithStringDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"detail": "model not loaded"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.ModelStatus(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: %d", apiErr.Status)
	}
	if apiErr.Detail != "model not loaded" {
		t.Fatalf("unexpected detail: %q", apiErr.Detail)
	}
}

func TestAPIErrorWithValidationDetailList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": [{"loc": ["body", "context", "date"], "msg": "field required"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.AnalyzeDay(context.Background(), dailyctx.Context{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Detail != "body.context.date: field required" {
		t.Fatalf("unexpected detail: %q", apiErr.Detail)
	}
}

func TestAPIErrorWithPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Health(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Detail != "boom" {
		t.Fatalf("unexpected detail: %q", apiErr.Detail)
	}
	if !strings.Contains(apiErr.Error(), "500") {
		t.Fatalf("error string should carry the status: %q", apiErr.Error())
	}
}

func TestAvailableFalseWhenUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", nil) // nothing listens there
	if c.Available(context.Background()) {
		t.Fatalf("unreachable service must read as unavailable")
	}
}

func TestAvailableTrueOnHealthyService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(HealthCheck{Status: "healthy"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	if !c.Available(context.Background()) {
		t.Fatalf("healthy service must read as available")
	}
}

func TestSwitchModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/models/switch" || r.Method != http.MethodPost {
			t.Fatalf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var req SwitchRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(SwitchResponse{Success: true, Message: "switched to " + req.ModelName})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	resp, err := c.SwitchModel(context.Background(), "mistral-small")
	if err != nil {
		t.Fatalf("switch: %v", err)
	}
	if !resp.Success || resp.Message != "switched to mistral-small" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
