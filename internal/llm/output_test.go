package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"bare", `{"topics":[]}`, `{"topics":[]}`},
		{"json fence", "```json\n{\"topics\":[]}\n```", `{"topics":[]}`},
		{"plain fence", "```\n{\"topics\":[]}\n```", `{"topics":[]}`},
		{"prose around", "Sure! Here are the topics:\n{\"topics\":[]}\nGood luck.", `{"topics":[]}`},
		{"nested braces", `{"topics":[{"title":"A {bracketed} idea"}]}`, `{"topics":[{"title":"A {bracketed} idea"}]}`},
		{"no object", "no JSON here", "no JSON here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(extractJSON(tt.in)); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWireSchemaStripsBounds(t *testing.T) {
	def := topicsSchema().Definition
	wire := wireSchema(def)

	raw, err := json.Marshal(wire)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, kw := range []string{"minItems", "minLength", "maxLength"} {
		if strings.Contains(string(raw), kw) {
			t.Errorf("wire schema still has %s: %s", kw, raw)
		}
	}
	for _, kw := range []string{"additionalProperties", "enum", "required", "Politics"} {
		if !strings.Contains(string(raw), kw) {
			t.Errorf("wire schema lost %s: %s", kw, raw)
		}
	}

	// The caller's definition is left intact for local validation.
	if _, ok := def["properties"].(map[string]any)["topics"].(map[string]any)["minItems"]; !ok {
		t.Error("wireSchema mutated the original definition")
	}
}

func TestSystemPrompt(t *testing.T) {
	req := topicsRequest()
	got := systemPrompt(req)
	if !strings.HasPrefix(got, req.System+"\n\n") {
		t.Errorf("system prompt lost the caller's text: %q", got)
	}
	if !strings.Contains(got, "The object is: A list of new essay prompts.") {
		t.Errorf("system prompt = %q", got)
	}

	req.Schema = nil
	if got := systemPrompt(req); got != req.System {
		t.Errorf("plain request system = %q, want unchanged", got)
	}
	if got := systemPrompt(Request{Schema: topicsSchema()}); strings.HasPrefix(got, "\n") {
		t.Errorf("empty system prompt starts with a blank line: %q", got)
	}
}

func TestFinish(t *testing.T) {
	usage := Usage{InputTokens: 1, OutputTokens: 2, TotalTokens: 3}

	resp, err := finish(topicsRequest(), "```json\n"+topicsReply+"\n```", "", usage, "m")
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	decodeTopics(t, resp)
	if resp.StopReason != StopEnd || resp.Model != "m" || resp.Usage != usage {
		t.Errorf("resp = %+v", resp)
	}

	_, err = finish(topicsRequest(), `{"topics":[`, StopMaxTokens, usage, "m")
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) || string(maxTok.Content) != `{"topics":[` {
		t.Errorf("truncated error = %v", err)
	}

	plain, err := finish(Request{}, "partial prose", StopMaxTokens, usage, "m")
	if err != nil || plain.StopReason != StopMaxTokens {
		t.Errorf("plain truncated = %+v, %v", plain, err)
	}
}
