package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestValidate_TopicReplies(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"two topics", topicsReply, false},
		{"missing topics", `{}`, true},
		{"empty list", `{"topics":[]}`, true},
		{"missing difficulty", `{"topics":[{"title":"Should Voting Be Compulsory?","category":"Politics"}]}`, true},
		{"unknown difficulty", `{"topics":[{"title":"Should Voting Be Compulsory?","category":"Politics","difficulty":"Brutal"}]}`, true},
		{"title too long", `{"topics":[{"title":"` + strings.Repeat("a", 161) + `","category":"Politics","difficulty":"Hard"}]}`, true},
		{"extra field", `{"topics":[{"title":"Should Voting Be Compulsory?","category":"Politics","difficulty":"Hard","source":"web"}]}`, true},
		{"title is a number", `{"topics":[{"title":42,"category":"Politics","difficulty":"Hard"}]}`, true},
		{"malformed", `{"topics":[`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(topicsSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			var invErr *ErrInvalidResponse
			if err != nil && !errors.As(err, &invErr) {
				t.Fatalf("error type = %T, want *ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidate_NilSchema(t *testing.T) {
	if err := Validate(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestDecode(t *testing.T) {
	var out topicList
	resp := &Response{Content: json.RawMessage(topicsReply)}
	if err := Decode(topicsSchema(), resp, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(out.Topics) != 2 || out.Topics[0].Difficulty != "Medium" {
		t.Errorf("decoded = %+v", out)
	}

	bad := &Response{Content: json.RawMessage(`{"topics":[]}`)}
	var invResp *ErrInvalidResponse
	if err := Decode(topicsSchema(), bad, &out); !errors.As(err, &invResp) {
		t.Errorf("Decode(empty list) error = %v, want ErrInvalidResponse", err)
	}
	if err := Decode(topicsSchema(), nil, &out); !errors.As(err, &invResp) {
		t.Errorf("Decode(nil) error = %v, want ErrInvalidResponse", err)
	}
}
