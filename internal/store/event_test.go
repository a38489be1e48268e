package store

import (
	"context"
	"testing"
)

func TestAppendAndQueryAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, score := range []int{40, 75, 90} {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID:    "sess-1",
			TopicID:      "t1",
			TopicTitle:   "Digital Privacy",
			WordCount:    100 + i*50,
			WPM:          20,
			Score:        score,
			Grade:        "C",
			ActiveSecs:   300.5,
			DurationSecs: 900,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryAttempts(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Score != 90 || got[1].Score != 75 {
		t.Errorf("scores = %d, %d; want newest first 90, 75", got[0].Score, got[1].Score)
	}
	if got[0].ActiveSecs != 300.5 {
		t.Errorf("active secs = %v, want 300.5", got[0].ActiveSecs)
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("sequences not descending: %d, %d", got[0].Sequence, got[1].Sequence)
	}

	older, err := repo.QueryAttempts(ctx, QueryOpts{Before: got[1].Sequence})
	if err != nil {
		t.Fatalf("query before: %v", err)
	}
	if len(older) != 1 || older[0].Score != 40 {
		t.Errorf("before filter = %+v, want the first attempt", older)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAttempt(ctx, AttemptEventData{SessionID: "s", Grade: "A"}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.AppendBadge(ctx, BadgeEventData{BadgeID: "grade-a", Name: "Top Marks", SessionID: "s", Reason: "scored an A"}); err != nil {
		t.Fatalf("append badge: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m", Purpose: "topic-gen", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	attempts, _ := repo.QueryAttempts(ctx, QueryOpts{})
	badges, _ := repo.QueryBadges(ctx, QueryOpts{})
	llm, _ := repo.QueryLLMEvents(ctx, QueryOpts{})
	if len(attempts) != 1 || len(badges) != 1 || len(llm) != 1 {
		t.Fatalf("counts = %d/%d/%d, want 1/1/1", len(attempts), len(badges), len(llm))
	}
	if attempts[0].Sequence != 1 || badges[0].Sequence != 2 || llm[0].Sequence != 3 {
		t.Errorf("sequences = %d/%d/%d, want 1/2/3", attempts[0].Sequence, badges[0].Sequence, llm[0].Sequence)
	}

	latest, err := repo.LatestSequence(ctx)
	if err != nil {
		t.Fatalf("latest sequence: %v", err)
	}
	if latest != 3 {
		t.Errorf("latest sequence = %d, want 3", latest)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude", Purpose: "topic-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "[user]\nhi"},
		{Provider: "anthropic", Model: "claude", Purpose: "topic-gen", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt", Purpose: "other", LatencyMs: 10, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	list, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(list) != 3 || list[0].Purpose != "other" {
		t.Fatalf("list = %+v, want 3 newest first", list)
	}

	first := list[2]
	got, err := repo.GetLLMEvent(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "[user]\nhi" {
		t.Errorf("get = %+v, want request body", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("get missing = %+v, want nil", missing)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("len(usage) = %d, want 2", len(usage))
	}
	if usage[1].Key != "topic-gen" || usage[1].Calls != 2 || usage[1].InputTokens != 400 || usage[1].AvgLatencyMs != 300 {
		t.Errorf("topic-gen usage = %+v", usage[1])
	}
}
