package llm

import (
	"encoding/json"
	"testing"
)

// topicsSchema mirrors the shape the topic generator requests.
func topicsSchema() *Schema {
	return &Schema{
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
}

const topicsReply = `{"topics":[
	{"title":"Four-Day Work Weeks: Productivity Boost or Fad?","category":"Economics","difficulty":"Medium"},
	{"title":"Should Voting Be Compulsory?","category":"Politics","difficulty":"Hard"}
]}`

func topicsRequest() Request {
	return Request{
		Purpose:     PurposeTopicGen,
		System:      "You write prompts for a timed Written Ability Test.",
		Messages:    []Message{{Role: RoleUser, Content: "Write 2 new essay topics."}},
		Schema:      topicsSchema(),
		MaxTokens:   1024,
		Temperature: 0.9,
	}
}

type topicList struct {
	Topics []struct {
		Title      string `json:"title"`
		Category   string `json:"category"`
		Difficulty string `json:"difficulty"`
	} `json:"topics"`
}

// decodeTopics fails the test unless resp holds a valid two-topic reply.
func decodeTopics(t *testing.T, resp *Response) topicList {
	t.Helper()
	var out topicList
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		t.Fatalf("content is not clean JSON: %v\n%s", err, resp.Content)
	}
	if len(out.Topics) != 2 || out.Topics[1].Category != "Politics" {
		t.Fatalf("topics = %+v", out.Topics)
	}
	return out
}
