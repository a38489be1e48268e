package evaluator

import "regexp"

var extremeTone = regexp.MustCompile(`(?i)\b(stupid|ridiculous|terrible|idiotic|worst|disaster|hate|incredible|shocking)\b`)

// ToneAnalyzer penalizes emotionally charged vocabulary. It has no positive
// counterpart.
type ToneAnalyzer struct{}

func (a *ToneAnalyzer) Name() string { return "tone" }

func (a *ToneAnalyzer) Analyze(doc *Document) Verdict {
	if !extremeTone.MatchString(doc.Text) {
		return Verdict{}
	}
	return Verdict{
		Modifier:    -20,
		Weaknesses:  []string{"Tone issues detected. Overly emotional or extreme language reduces professional credibility."},
		Actionables: []string{"Maintain a formal, neutral tone; avoid exaggerations and strong emotional adjectives."},
	}
}
