package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/watcrack/internal/store"
)

func openTestRepo(t *testing.T) store.EventRepo {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

// failingRepo rejects every LLM event write.
type failingRepo struct {
	store.EventRepo
}

func (failingRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return errors.New("disk full")
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := openTestRepo(t)
	mock := NewMockProvider(MockResponse{
		Text:  "```json\n" + topicsReply + "\n```",
		Usage: Usage{InputTokens: 40, OutputTokens: 12, TotalTokens: 52},
	})
	p := WithLogging(mock, repo, nil)

	ctx := context.Background()
	if _, err := p.Generate(ctx, topicsRequest()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.Purpose != "topic-gen" || e.Provider != ProviderMock || !e.Success {
		t.Errorf("event = %+v", e.LLMRequestEventData)
	}
	if e.InputTokens != 40 || e.OutputTokens != 12 {
		t.Errorf("tokens = %d/%d, want 40/12", e.InputTokens, e.OutputTokens)
	}
	for _, want := range []string{"[system]", "Reply with a single JSON object", "[user]", "Write 2 new essay topics.", "[schema: wat-topics]"} {
		if !strings.Contains(e.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, e.RequestBody)
		}
	}
	if e.ResponseBody != topicsReply {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := openTestRepo(t)
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, repo, nil)

	ctx := context.Background()
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}

	events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Success {
		t.Error("success = true, want false")
	}
	if events[0].Purpose != string(PurposeUntagged) {
		t.Errorf("purpose = %q, want untagged", events[0].Purpose)
	}
	if !strings.Contains(events[0].ErrorMessage, "down") {
		t.Errorf("error message = %q", events[0].ErrorMessage)
	}
}

func TestLogging_RepoErrorDoesNotFailRequest(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, failingRepo{}, zap.New(core))

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := logs.FilterMessage("failed to log LLM request event").Len(); got != 1 {
		t.Errorf("warn entries = %d, want 1", got)
	}
}

func TestSerializeRequest_SkipsEmptySystem(t *testing.T) {
	got := serializeRequest(Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	if strings.Contains(got, "[system]") {
		t.Errorf("unexpected system block:\n%s", got)
	}
	if !strings.HasPrefix(got, "[user]\nhi") {
		t.Errorf("serialized = %q", got)
	}
}
