package evaluator

import "fmt"

// Word count band for a standard WAT response.
const (
	MinWords = 120
	MaxWords = 250
)

// LengthAnalyzer scores the response against the 120–250 word band.
type LengthAnalyzer struct{}

func (a *LengthAnalyzer) Name() string { return "length" }

func (a *LengthAnalyzer) Analyze(doc *Document) Verdict {
	n := doc.WordCount()
	switch {
	case n < MinWords:
		return Verdict{
			Modifier:    -25,
			Weaknesses:  []string{fmt.Sprintf("Response (%d words) is underdeveloped. Standard WAT expectations range from 120-250 words.", n)},
			Actionables: []string{"Aim for at least 120 words to cover the topic in depth."},
		}
	case n <= MaxWords:
		return Verdict{
			Modifier:  25,
			Strengths: []string{"Excellent volume control; your response covers the topic thoroughly while remaining focused."},
		}
	default:
		return Verdict{
			Modifier:    -5,
			Weaknesses:  []string{"Response exceeds the concise limit of 250 words, which may dilute your core message."},
			Actionables: []string{"Focus on trimming repetitive ideas to stay within 250 words."},
		}
	}
}
