package evaluator

import (
	"regexp"
	"strings"
)

var (
	wordPattern      = regexp.MustCompile(`\b\w+\b`)
	paragraphPattern = regexp.MustCompile(`\n\s*\n`)
	sentencePattern  = regexp.MustCompile(`[.!?]+`)
)

// Document is the tokenized, read-only view of a response shared by all analyzers.
type Document struct {
	// Text is the response exactly as submitted.
	Text string

	// Lower is Text lower-cased, used for substring marker checks.
	Lower string

	// Topic is the prompt title the response was written against.
	Topic string

	// Words holds the case-folded word tokens of the trimmed text.
	Words []string

	// Paragraphs holds the non-blank blocks separated by blank lines.
	Paragraphs []string

	// Sentences holds the non-blank pieces between runs of . ! ?
	Sentences []string
}

// NewDocument tokenizes and segments text.
func NewDocument(text, topic string) *Document {
	trimmed := strings.TrimSpace(text)

	words := wordPattern.FindAllString(strings.ToLower(trimmed), -1)

	var paragraphs []string
	if trimmed != "" {
		for _, p := range paragraphPattern.Split(trimmed, -1) {
			if strings.TrimSpace(p) != "" {
				paragraphs = append(paragraphs, p)
			}
		}
	}

	var sentences []string
	for _, s := range sentencePattern.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}

	return &Document{
		Text:       text,
		Lower:      strings.ToLower(text),
		Topic:      topic,
		Words:      words,
		Paragraphs: paragraphs,
		Sentences:  sentences,
	}
}

// WordCount returns the number of word tokens.
func (d *Document) WordCount() int {
	return len(d.Words)
}

// UniqueWordCount returns the number of distinct word tokens.
func (d *Document) UniqueWordCount() int {
	seen := make(map[string]struct{}, len(d.Words))
	for _, w := range d.Words {
		seen[w] = struct{}{}
	}
	return len(seen)
}

// FirstSentence returns the lower-cased first sentence, or "" if there is none.
func (d *Document) FirstSentence() string {
	if len(d.Sentences) == 0 {
		return ""
	}
	return strings.ToLower(d.Sentences[0])
}

// LastSentence returns the lower-cased last sentence, or "" if there is none.
func (d *Document) LastSentence() string {
	if len(d.Sentences) == 0 {
		return ""
	}
	return strings.ToLower(d.Sentences[len(d.Sentences)-1])
}

// containsAny reports whether s contains any of markers as a substring.
func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// countContained returns how many distinct markers occur in s.
func countContained(s string, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(s, m) {
			n++
		}
	}
	return n
}
