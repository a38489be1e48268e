package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/watcrack/internal/store"
)

// slowProvider blocks until its context is cancelled.
type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID() = %q, want mock", p.ModelID())
	}
	if got := ProviderName(p); got != ProviderMock {
		t.Errorf("ProviderName() = %q, want %q", got, ProviderMock)
	}
}

func TestNewProvider_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := NewProvider(ctx, DefaultConfig(), nil, nil); err == nil {
		t.Error("expected error with no provider")
	}

	cfg := DefaultConfig()
	cfg.Provider = "bogus"
	if _, err := NewProvider(ctx, cfg, nil, nil); err == nil {
		t.Error("expected error for unknown provider")
	}

	cfg.Provider = ProviderAnthropic
	if _, err := NewProvider(ctx, cfg, nil, nil); err == nil {
		t.Error("expected error for anthropic without key")
	}
}

func TestNewProvider_WrapsWithLogging(t *testing.T) {
	repo := openTestRepo(t)
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	cfg.Retry = retryConfig()

	p, err := NewProvider(context.Background(), cfg, repo, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	// The mock has no canned responses, so every attempt fails and is logged.
	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty mock")
	}
	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != cfg.Retry.MaxAttempts {
		t.Errorf("logged events = %d, want %d", len(events), cfg.Retry.MaxAttempts)
	}
}

func TestTimeoutProvider(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want DeadlineExceeded", err)
	}
	if time.Since(start) > time.Second {
		t.Error("timeout not applied")
	}
	if ProviderName(p) != "slow" {
		t.Errorf("ProviderName() = %q, want slow", ProviderName(p))
	}
}

func TestTimeoutProvider_PassesThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithTimeout(WithRetry(mock, retryConfig(), nil), time.Second)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
}
