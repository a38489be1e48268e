package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(topicsReply), Usage: Usage{InputTokens: 300, OutputTokens: 60, TotalTokens: 360}},
		MockResponse{Err: &ErrRateLimit{}},
	)

	resp, err := mock.Generate(context.Background(), topicsRequest())
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	decodeTopics(t, resp)
	if resp.Usage.InputTokens != 300 || resp.StopReason != StopEnd || resp.Model != "mock" {
		t.Errorf("resp = %+v", resp)
	}

	_, err = mock.Generate(context.Background(), topicsRequest())
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("second Generate error = %v, want ErrRateLimit", err)
	}

	_, err = mock.Generate(context.Background(), topicsRequest())
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("drained Generate error = %v, want ErrProviderUnavailable", err)
	}
	if mock.CallCount() != 3 || mock.Calls[0].Purpose != PurposeTopicGen {
		t.Errorf("calls = %d, first purpose = %q", mock.CallCount(), mock.Calls[0].Purpose)
	}
}

func TestMockProvider_EnforcesSchema(t *testing.T) {
	tests := []struct {
		name  string
		reply MockResponse
		check func(error) bool
	}{
		{
			name:  "fenced reply is unwrapped",
			reply: MockResponse{Text: "```json\n" + topicsReply + "\n```"},
			check: func(err error) bool { return err == nil },
		},
		{
			name:  "unknown category",
			reply: MockResponse{Content: json.RawMessage(`{"topics":[{"title":"Is Space Tourism Worth It?","category":"Sports","difficulty":"Easy"}]}`)},
			check: func(err error) bool {
				var e *ErrInvalidResponse
				return errors.As(err, &e)
			},
		},
		{
			name:  "title too short",
			reply: MockResponse{Content: json.RawMessage(`{"topics":[{"title":"Tax?","category":"Economics","difficulty":"Easy"}]}`)},
			check: func(err error) bool {
				var e *ErrInvalidResponse
				return errors.As(err, &e)
			},
		},
		{
			name:  "truncated",
			reply: MockResponse{Text: `{"topics":[`, Stop: StopMaxTokens},
			check: func(err error) bool {
				var e *ErrMaxTokensExceeded
				return errors.As(err, &e)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMockProvider(tt.reply).Generate(context.Background(), topicsRequest())
			if !tt.check(err) {
				t.Errorf("error = %T (%v)", err, err)
			}
		})
	}
}

func TestMockProvider_PlainTextWithoutSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "Is ambition a virtue?"})
	resp, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "One topic"}}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != "Is ambition a virtue?" {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		provider, name, want string
	}{
		{ProviderAnthropic, "claude-haiku", "claude-haiku-4-5-20251001"},
		{ProviderOpenAI, "gpt-mini", "gpt-4o-mini"},
		{ProviderGemini, "gemini-flash", "gemini-2.0-flash"},
		{ProviderOpenAI, "meta-llama/llama-3.1-8b-instruct", "meta-llama/llama-3.1-8b-instruct"},
		{ProviderGemini, "claude-haiku", "claude-haiku"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.provider, tt.name); got != tt.want {
			t.Errorf("resolveModel(%q, %q) = %q, want %q", tt.provider, tt.name, got, tt.want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}, Retry: RetryConfig{MaxAttempts: 1}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openrouter through openai", Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk-or", BaseURL: "https://openrouter.ai/api/v1"}, Retry: RetryConfig{MaxAttempts: 1}}, false},
		{"gemini without key", Config{Provider: ProviderGemini, Retry: RetryConfig{MaxAttempts: 1}}, true},
		{"mock needs no key", Config{Provider: ProviderMock, Retry: RetryConfig{MaxAttempts: 1}}, false},
		{"disabled", Config{Retry: RetryConfig{MaxAttempts: 1}}, false},
		{"zero retry attempts", Config{Provider: ProviderMock}, true},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Discover(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg := DefaultConfig()
	if !cfg.Discover() {
		t.Fatal("Discover() = false with OPENAI_API_KEY set")
	}
	if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "sk-openai" {
		t.Errorf("cfg = %+v", cfg)
	}

	explicit := Config{Provider: ProviderMock}
	if !explicit.Discover() || explicit.Provider != ProviderMock {
		t.Errorf("explicit provider overwritten: %q", explicit.Provider)
	}
}
