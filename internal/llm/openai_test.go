package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func openAIServer(t *testing.T, status int, reply any) (*OpenAIProvider, *map[string]any) {
	t.Helper()
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-mini", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	return p, &body
}

func openAICompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1760000000,
		"model":   "gpt-4o-mini-2024-07-18",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 280, "completion_tokens": 70, "total_tokens": 350},
	}
}

func TestOpenAIProvider_GeneratesTopics(t *testing.T) {
	p, body := openAIServer(t, http.StatusOK, openAICompletion(topicsReply, "stop"))

	resp, err := p.Generate(context.Background(), topicsRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	decodeTopics(t, resp)
	if resp.Model != "gpt-4o-mini-2024-07-18" {
		t.Errorf("model = %q", resp.Model)
	}
	if resp.Usage.OutputTokens != 70 {
		t.Errorf("usage = %+v", resp.Usage)
	}

	if (*body)["model"] != "gpt-4o-mini" {
		t.Errorf("model sent = %v", (*body)["model"])
	}
	msgs, _ := (*body)["messages"].([]any)
	if len(msgs) != 2 || msgs[0].(map[string]any)["role"] != "system" {
		t.Fatalf("messages sent = %v", msgs)
	}
	format, _ := (*body)["response_format"].(map[string]any)
	js, _ := format["json_schema"].(map[string]any)
	if format["type"] != "json_schema" || js["name"] != "wat-topics" || js["strict"] != true {
		t.Errorf("response_format sent = %v", format)
	}
	raw, _ := json.Marshal(js["schema"])
	var sent map[string]any
	_ = json.Unmarshal(raw, &sent)
	items := sent["properties"].(map[string]any)["topics"].(map[string]any)
	if _, ok := items["minItems"]; ok {
		t.Errorf("minItems sent to strict mode: %s", raw)
	}
}

func TestOpenAIProvider_LengthFinishIsTruncation(t *testing.T) {
	p, _ := openAIServer(t, http.StatusOK, openAICompletion(`{"topics":[`, "length"))

	_, err := p.Generate(context.Background(), topicsRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("error = %v, want ErrMaxTokensExceeded", err)
	}
}

func TestOpenAIProvider_InvalidCategory(t *testing.T) {
	reply := `{"topics":[{"title":"Is Space Tourism Worth It?","category":"Sports","difficulty":"Easy"}]}`
	p, _ := openAIServer(t, http.StatusOK, openAICompletion(reply, "stop"))

	_, err := p.Generate(context.Background(), topicsRequest())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("error = %v, want ErrInvalidResponse", err)
	}
}

func TestOpenAIProvider_ErrorClasses(t *testing.T) {
	apiErr := func(code string) map[string]any {
		return map[string]any{"error": map[string]any{"message": code, "type": "invalid_request_error", "code": code}}
	}
	tests := []struct {
		name   string
		status int
		reply  any
		check  func(error) bool
	}{
		{"rate limit", http.StatusTooManyRequests, apiErr("rate_limit_exceeded"), func(err error) bool {
			var e *ErrRateLimit
			return errors.As(err, &e)
		}},
		{"bad key", http.StatusUnauthorized, apiErr("invalid_api_key"), func(err error) bool {
			var e *ErrUnauthorized
			return errors.As(err, &e) && e.Provider == ProviderOpenAI
		}},
		{"gateway text body", http.StatusTooManyRequests, "slow down", func(err error) bool {
			var e *ErrRateLimit
			return errors.As(err, &e)
		}},
		{"server error", http.StatusBadGateway, apiErr("upstream"), func(err error) bool {
			var e *ErrProviderUnavailable
			return errors.As(err, &e)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := openAIServer(t, tt.status, tt.reply)
			_, err := p.Generate(context.Background(), topicsRequest())
			if !tt.check(err) {
				t.Errorf("error = %T (%v)", err, err)
			}
		})
	}
}
