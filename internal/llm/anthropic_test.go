package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// anthropicServer serves reply for every request and captures the last
// decoded request body.
func anthropicServer(t *testing.T, status int, header http.Header, reply any) (*AnthropicProvider, *map[string]any, *atomic.Int32) {
	t.Helper()
	var body map[string]any
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_ = json.NewDecoder(r.Body).Decode(&body)
		for k, v := range header {
			w.Header()[k] = v
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "test-key", Model: "claude-haiku", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}
	return p, &body, &hits
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 310, "output_tokens": 64},
	}
}

func anthropicAPIError(kind string) map[string]any {
	return map[string]any{"type": "error", "error": map[string]any{"type": kind, "message": kind}}
}

func TestAnthropicProvider_GeneratesTopics(t *testing.T) {
	fenced := "Here you go:\n```json\n" + topicsReply + "\n```"
	p, body, _ := anthropicServer(t, http.StatusOK, nil, anthropicMessage(fenced, "end_turn"))

	resp, err := p.Generate(context.Background(), topicsRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	decodeTopics(t, resp)
	if resp.Usage.InputTokens != 310 || resp.Usage.TotalTokens != 374 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != StopEnd {
		t.Errorf("stop = %q, want %q", resp.StopReason, StopEnd)
	}

	if (*body)["model"] != "claude-haiku-4-5-20251001" {
		t.Errorf("model sent = %v", (*body)["model"])
	}
	sys, _ := json.Marshal((*body)["system"])
	if !strings.Contains(string(sys), "Reply with a single JSON object") {
		t.Errorf("system sent = %s", sys)
	}
	schema, _ := json.Marshal((*body)["output_config"])
	if !strings.Contains(string(schema), `"Politics"`) || strings.Contains(string(schema), "minLength") {
		t.Errorf("output_config sent = %s", schema)
	}
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	p, _, _ := anthropicServer(t, http.StatusOK, nil, anthropicMessage(`{"topics":[{"title":"Should Vot`, "max_tokens"))

	_, err := p.Generate(context.Background(), topicsRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("error = %v, want ErrMaxTokensExceeded", err)
	}
}

func TestAnthropicProvider_RateLimitNotRetriedBySDK(t *testing.T) {
	header := http.Header{"Retry-After": []string{"7"}}
	p, _, hits := anthropicServer(t, http.StatusTooManyRequests, header, anthropicAPIError("rate_limit_error"))

	_, err := p.Generate(context.Background(), topicsRequest())
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("error = %v, want ErrRateLimit", err)
	}
	if rl.RetryAfter != 7*time.Second {
		t.Errorf("RetryAfter = %s, want 7s", rl.RetryAfter)
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1", hits.Load())
	}
}

func TestAnthropicProvider_ErrorClasses(t *testing.T) {
	tests := []struct {
		status int
		kind   string
		check  func(error) bool
	}{
		{http.StatusUnauthorized, "authentication_error", func(err error) bool {
			var e *ErrUnauthorized
			return errors.As(err, &e) && e.Provider == ProviderAnthropic
		}},
		{http.StatusInternalServerError, "api_error", func(err error) bool {
			var e *ErrProviderUnavailable
			return errors.As(err, &e)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			p, _, _ := anthropicServer(t, tt.status, nil, anthropicAPIError(tt.kind))
			_, err := p.Generate(context.Background(), topicsRequest())
			if !tt.check(err) {
				t.Errorf("error = %T (%v)", err, err)
			}
		})
	}
}

func TestAnthropicProvider_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
