package evaluator

import "math"

// BaseScore is the score every response starts from before rubric modifiers.
const BaseScore = 60

// Input carries the three values the engine scores. Zero values are valid:
// an empty topic and zero seconds.
type Input struct {
	Text             string
	TopicTitle       string
	TimeSpentSeconds float64
}

// Evaluate scores text written against topicTitle over timeSpentSeconds of
// active writing. It is pure and safe for concurrent use.
func Evaluate(text, topicTitle string, timeSpentSeconds float64) *Feedback {
	return EvaluateInput(Input{
		Text:             text,
		TopicTitle:       topicTitle,
		TimeSpentSeconds: timeSpentSeconds,
	})
}

// EvaluateInput is Evaluate with the arguments bundled.
func EvaluateInput(in Input) *Feedback {
	return NewEngine(DefaultAnalyzers()).Evaluate(in)
}

// Engine runs a fixed set of analyzers and aggregates their verdicts.
type Engine struct {
	analyzers []Analyzer
}

// NewEngine returns an engine running analyzers in the given order.
func NewEngine(analyzers []Analyzer) *Engine {
	return &Engine{analyzers: analyzers}
}

// Evaluate scores one response.
func (e *Engine) Evaluate(in Input) *Feedback {
	doc := NewDocument(in.Text, in.TopicTitle)
	verdicts, breakdown := RunAnalyzers(e.analyzers, doc)

	var (
		modifiers                 int
		positives, negatives, rec []string
	)
	for _, v := range verdicts {
		modifiers += v.Modifier
		positives = append(positives, v.Strengths...)
		negatives = append(negatives, v.Weaknesses...)
		rec = append(rec, v.Actionables...)
	}
	rec = append(rec, PEELTip)

	raw := float64(BaseScore + modifiers)
	score := int(clamp(roundHalfUp(raw), 0, 100))

	return &Feedback{
		Score:           score,
		WordCount:       doc.WordCount(),
		WPM:             WordsPerMinute(doc.WordCount(), in.TimeSpentSeconds),
		Grade:           GradeFor(score),
		Positives:       truncate(positives, MaxPositives),
		Negatives:       truncate(negatives, MaxNegatives),
		Recommendations: truncate(rec, MaxRecommendations),
		Metrics:         ComputeMetrics(doc),
		RawScore:        raw,
		Breakdown:       breakdown,
	}
}

// WordsPerMinute returns words per minute of active time, or 0 when no time
// was recorded.
func WordsPerMinute(words int, seconds float64) int {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0
	}
	return int(roundHalfUp(float64(words) / (seconds / 60)))
}

// ComputeMetrics derives the vocabulary, transition and structure sub-scores.
func ComputeMetrics(doc *Document) Metrics {
	c := CheckStructure(doc)

	var vocab int
	if n := doc.WordCount(); n > 0 {
		vocab = min(int(roundHalfUp(float64(doc.UniqueWordCount())/float64(n)*150)), 100)
	}

	structure := 0
	if c.HasIntro {
		structure += 33
	}
	if c.HasConclusion {
		structure += 33
	}
	if c.HasParagraphs {
		structure += 34
	}

	return Metrics{
		VocabularyBreadth: vocab,
		TransitionUsage:   min(c.TransitionCount*20, 100),
		StructureScore:    structure,
	}
}

// truncate returns a copy of s holding at most n items. The result is never
// nil so that empty lists encode as [].
func truncate(s []string, n int) []string {
	if len(s) > n {
		s = s[:n]
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
