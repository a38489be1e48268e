package topics

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/watcrack/internal/llm"
)

func TestGenerator_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"topics":[
		{"title":"Four-Day Work Weeks: Productivity Boost or Fad?","category":"Economics","difficulty":"Medium"},
		{"title":"Social Media: Connecting People or Polarizing Societies?","category":"Social","difficulty":"Easy"},
		{"title":"Should Voting Be Compulsory?","category":"Politics","difficulty":"Hard"}
	]}`)})
	g := NewGenerator(mock, All(), nil)

	got, err := g.Generate(context.Background(), 3, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("topics = %d, want 2 (duplicate dropped)", len(got))
	}
	if got[0].Category != Economics || got[1].Difficulty != Hard {
		t.Errorf("topics = %+v", got)
	}
	for _, tp := range got {
		if !strings.HasPrefix(tp.ID, "gen-") {
			t.Errorf("id = %q, want gen- prefix", tp.ID)
		}
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "wat-topics" {
		t.Errorf("request schema = %+v", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "Write 3 new essay topics") {
		t.Errorf("prompt = %q", req.Messages[0].Content)
	}
}

func TestGenerator_CategoryInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"topics":[
		{"title":"Is Algorithmic Pricing Fair to Consumers?","category":"Ethics","difficulty":"Medium"}
	]}`)})
	g := NewGenerator(mock, All(), nil)

	if _, err := g.Generate(context.Background(), 50, Ethics); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Write 10 new essay topics in the Ethics category") {
		t.Errorf("prompt = %q", prompt)
	}
}

func TestGenerator_DedupAcrossCalls(t *testing.T) {
	body := json.RawMessage(`{"topics":[{"title":"Should Voting Be Compulsory?","category":"Politics","difficulty":"Hard"}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: body}, llm.MockResponse{Content: body})
	g := NewGenerator(mock, nil, nil)

	if _, err := g.Generate(context.Background(), 1, ""); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if _, err := g.Generate(context.Background(), 1, ""); !errors.Is(err, ErrNoTopics) {
		t.Errorf("second Generate error = %v, want ErrNoTopics", err)
	}
}

func TestGenerator_RejectsInvalidOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"topics":[
		{"title":"Is Space Tourism Worth It?","category":"Sports","difficulty":"Easy"}
	]}`)})
	g := NewGenerator(mock, All(), nil)

	_, err := g.Generate(context.Background(), 1, "")
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Errorf("error = %v, want ErrInvalidResponse", err)
	}
}

func TestGenerator_ProviderError(t *testing.T) {
	g := NewGenerator(llm.NewMockProvider(), All(), nil)
	_, err := g.Generate(context.Background(), 1, "")
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("error = %v, want ErrProviderUnavailable", err)
	}
}

func TestGenerator_TagsPurposeAndAcceptsFencedReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "Here you go:\n```json\n" +
			`{"topics":[{"title":"Can Gig Work Replace Stable Jobs?","category":"Economics","difficulty":"Medium"}]}` +
			"\n```",
	})
	g := NewGenerator(mock, All(), nil)

	got, err := g.Generate(context.Background(), 1, Economics)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Can Gig Work Replace Stable Jobs?" {
		t.Errorf("topics = %+v", got)
	}
	if mock.Calls[0].Purpose != llm.PurposeTopicGen {
		t.Errorf("purpose = %q, want %q", mock.Calls[0].Purpose, llm.PurposeTopicGen)
	}
}
