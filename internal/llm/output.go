package llm

import (
	"encoding/json"
	"strings"
)

// unsupportedKeywords are JSON Schema constraints the hosted structured
// output modes reject. They are stripped from the schema sent over the
// wire and still enforced locally by Validate.
var unsupportedKeywords = map[string]bool{
	"minLength":        true,
	"maxLength":        true,
	"pattern":          true,
	"format":           true,
	"minimum":          true,
	"maximum":          true,
	"exclusiveMinimum": true,
	"exclusiveMaximum": true,
	"multipleOf":       true,
	"minItems":         true,
	"maxItems":         true,
}

// wireSchema returns a copy of def without unsupportedKeywords.
func wireSchema(def map[string]any) map[string]any {
	out := make(map[string]any, len(def))
	for k, v := range def {
		if unsupportedKeywords[k] {
			continue
		}
		switch k {
		case "properties":
			if props, ok := v.(map[string]any); ok {
				cp := make(map[string]any, len(props))
				for name, p := range props {
					if pm, ok := p.(map[string]any); ok {
						cp[name] = wireSchema(pm)
					} else {
						cp[name] = p
					}
				}
				v = cp
			}
		case "items":
			if im, ok := v.(map[string]any); ok {
				v = wireSchema(im)
			}
		}
		out[k] = v
	}
	return out
}

// systemPrompt returns the system prompt to send for req. Schema requests
// get an explicit JSON-only instruction for gateways without a native
// structured mode.
func systemPrompt(req Request) string {
	if req.Schema == nil {
		return req.System
	}
	var b strings.Builder
	b.WriteString(req.System)
	if b.Len() > 0 {
		b.WriteString("\n\n")
	}
	b.WriteString("Reply with a single JSON object and nothing else.")
	if req.Schema.Description != "" {
		b.WriteString(" The object is: ")
		b.WriteString(req.Schema.Description)
		b.WriteString(".")
	}
	return b.String()
}

// extractJSON strips markdown fences and any prose around the outermost
// JSON object in a model reply.
func extractJSON(text string) json.RawMessage {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	start, end := strings.IndexByte(s, '{'), strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return json.RawMessage(strings.TrimSpace(s))
}

// finish builds the Response for raw model output. For schema requests it
// strips fences, reports truncation as ErrMaxTokensExceeded and validates.
func finish(req Request, text, stop string, usage Usage, model string) (*Response, error) {
	content := json.RawMessage(text)
	if req.Schema != nil {
		content = extractJSON(text)
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		if err := Validate(req.Schema, content); err != nil {
			return nil, err
		}
	}
	if stop == "" {
		stop = StopEnd
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}
