package topics

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/watcrack/internal/llm"
)

// MaxGenerate caps how many topics one request may ask for.
const MaxGenerate = 10

const generatorSystem = `You write prompts for a timed Written Ability Test used in MBA admissions.
Each prompt is a short, debatable title a candidate can argue in 120 to 250 words.
Prefer current affairs, business, ethics and society. Avoid questions with a single factual answer.`

var topicSchema = &llm.Schema{
	Name:        "wat-topics",
	Description: "A list of new essay prompts",
	Definition: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"topics"},
		"properties": map[string]any{
			"topics": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []any{"title", "category", "difficulty"},
					"properties": map[string]any{
						"title":      map[string]any{"type": "string", "minLength": 10, "maxLength": 160},
						"category":   map[string]any{"type": "string", "enum": []any{"Economics", "Social", "Technology", "Ethics", "Politics", "Abstract"}},
						"difficulty": map[string]any{"type": "string", "enum": []any{"Easy", "Medium", "Hard"}},
					},
				},
			},
		},
	},
}

type generatedTopics struct {
	Topics []struct {
		Title      string     `json:"title"`
		Category   Category   `json:"category"`
		Difficulty Difficulty `json:"difficulty"`
	} `json:"topics"`
}

// Generator asks an LLM for topics not already in the bank.
type Generator struct {
	provider llm.Provider
	logger   *zap.Logger

	mu    sync.Mutex
	known map[string]bool
}

// NewGenerator returns a Generator that de-duplicates against existing.
func NewGenerator(provider llm.Provider, existing []Topic, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	known := make(map[string]bool, len(existing))
	for _, t := range existing {
		known[normalizeTitle(t.Title)] = true
	}
	return &Generator{provider: provider, logger: logger.Named("topics"), known: known}
}

// Generate requests n new topics, optionally restricted to category.
// Titles already known are dropped, and ErrNoTopics is returned if none remain.
func (g *Generator) Generate(ctx context.Context, n int, category Category) ([]Topic, error) {
	n = max(1, min(n, MaxGenerate))

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Write %d new essay topics", n)
	if category != "" {
		fmt.Fprintf(&prompt, " in the %s category", category)
	}
	prompt.WriteString(". Do not repeat any of these:\n")
	for _, t := range bank {
		fmt.Fprintf(&prompt, "- %s\n", t.Title)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		Purpose:     llm.PurposeTopicGen,
		System:      generatorSystem,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt.String()}},
		Schema:      topicSchema,
		MaxTokens:   1024,
		Temperature: 0.9,
	})
	if err != nil {
		return nil, fmt.Errorf("generate topics: %w", err)
	}

	var out generatedTopics
	if err := llm.Decode(topicSchema, resp, &out); err != nil {
		return nil, fmt.Errorf("decode topics: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	var topics []Topic
	for _, t := range out.Topics {
		key := normalizeTitle(t.Title)
		if g.known[key] {
			g.logger.Debug("dropping duplicate topic", zap.String("title", t.Title))
			continue
		}
		g.known[key] = true
		topics = append(topics, Topic{
			ID:         "gen-" + uuid.NewString()[:8],
			Title:      strings.TrimSpace(t.Title),
			Category:   t.Category,
			Difficulty: t.Difficulty,
		})
		if len(topics) == n {
			break
		}
	}
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}

	g.logger.Info("generated topics", zap.Int("count", len(topics)), zap.String("model", resp.Model))
	return topics, nil
}
