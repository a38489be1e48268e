package evaluator

import (
	"strings"
	"unicode/utf8"
)

// RelevanceThreshold is the minimum keyword overlap percentage (inclusive)
// for a response to count as on-topic.
const RelevanceThreshold = 50.0

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "to": {}, "in": {}, "on": {}, "at": {}, "of": {}, "for": {},
	"with": {}, "by": {}, "about": {}, "still": {}, "this": {}, "that": {},
}

// TopicKeywords extracts the prompt terms a response is expected to reuse:
// whitespace-separated, lower-cased tokens longer than three characters that
// are not stop words. Punctuation attached to a token is kept.
func TopicKeywords(title string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if utf8.RuneCountInString(w) <= 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		out = append(out, w)
	}
	return out
}

// KeywordOverlap returns the percentage of keywords found as substrings of
// lowerText. ok is false when there are no keywords to measure.
func KeywordOverlap(keywords []string, lowerText string) (pct float64, ok bool) {
	if len(keywords) == 0 {
		return 0, false
	}
	hits := countContained(lowerText, keywords)
	return float64(hits) / float64(len(keywords)) * 100, true
}

// RelevanceAnalyzer measures how many prompt keywords the response reuses.
// A prompt without usable keywords skips the rubric.
type RelevanceAnalyzer struct{}

func (a *RelevanceAnalyzer) Name() string { return "relevance" }

func (a *RelevanceAnalyzer) Analyze(doc *Document) Verdict {
	pct, ok := KeywordOverlap(TopicKeywords(doc.Topic), doc.Lower)
	if !ok {
		return Verdict{Skipped: true}
	}
	if pct < RelevanceThreshold {
		return Verdict{
			Modifier:    -20,
			Weaknesses:  []string{"Content shows generic tendencies; it lacks specific keyword integration from the prompt."},
			Actionables: []string{"Use keywords directly from the prompt to anchor your arguments."},
		}
	}
	return Verdict{
		Modifier:  15,
		Strengths: []string{"Strong topical relevance. You've successfully anchored your arguments to the prompt's key terms."},
	}
}
