package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func geminiServer(t *testing.T, status int, reply any) (*GeminiProvider, *string) {
	t.Helper()
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "test-key", Model: "gemini-flash", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewGeminiProvider: %v", err)
	}
	return p, &path
}

func geminiReply(text, finish string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}},
			"finishReason": finish,
		}},
		"usageMetadata": map[string]any{"promptTokenCount": 250, "candidatesTokenCount": 60, "totalTokenCount": 310},
		"modelVersion":  "gemini-2.0-flash-001",
	}
}

func TestGeminiProvider_GeneratesTopics(t *testing.T) {
	p, path := geminiServer(t, http.StatusOK, geminiReply(topicsReply, "STOP"))

	resp, err := p.Generate(context.Background(), topicsRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	decodeTopics(t, resp)
	if resp.Model != "gemini-2.0-flash-001" || resp.Usage.TotalTokens != 310 {
		t.Errorf("resp = %+v", resp)
	}
	if !strings.Contains(*path, "gemini-2.0-flash:generateContent") {
		t.Errorf("path = %q", *path)
	}
}

func TestGeminiProvider_Truncated(t *testing.T) {
	p, _ := geminiServer(t, http.StatusOK, geminiReply(`{"topics":[`, "MAX_TOKENS"))

	_, err := p.Generate(context.Background(), topicsRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("error = %v, want ErrMaxTokensExceeded", err)
	}
}

func TestGeminiProvider_RateLimit(t *testing.T) {
	reply := map[string]any{"error": map[string]any{"code": 429, "message": "quota", "status": "RESOURCE_EXHAUSTED"}}
	p, _ := geminiServer(t, http.StatusTooManyRequests, reply)

	_, err := p.Generate(context.Background(), topicsRequest())
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("error = %T (%v), want ErrRateLimit", err, err)
	}
}

func TestGeminiSchema_TopicShape(t *testing.T) {
	schema := geminiSchema(topicsSchema().Definition)

	topics := schema.Properties["topics"]
	if topics == nil || topics.Type != "ARRAY" {
		t.Fatalf("topics = %+v", topics)
	}
	if topics.MinItems == nil || *topics.MinItems != 1 {
		t.Errorf("minItems = %v, want 1", topics.MinItems)
	}
	item := topics.Items
	if got := item.Properties["category"].Enum; len(got) != 6 || got[4] != "Politics" {
		t.Errorf("category enum = %v", got)
	}
	title := item.Properties["title"]
	if title.MinLength == nil || *title.MinLength != 10 || title.MaxLength == nil || *title.MaxLength != 160 {
		t.Errorf("title bounds = %v/%v", title.MinLength, title.MaxLength)
	}
	if len(item.Required) != 3 {
		t.Errorf("required = %v", item.Required)
	}
}
