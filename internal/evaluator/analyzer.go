package evaluator

// Analyzer is one independent rubric. It reads the shared document and
// returns a score modifier with optional feedback text.
type Analyzer interface {
	Name() string
	Analyze(doc *Document) Verdict
}

// Verdict is the output of a single analyzer.
type Verdict struct {
	Modifier    int
	Strengths   []string
	Weaknesses  []string
	Actionables []string

	// Skipped is set when the rubric could not be applied to this input
	// (for example a prompt with no usable keywords). Skipped verdicts
	// carry no modifier and no text.
	Skipped bool
}

// DefaultAnalyzers returns the rubrics in run order. Feedback lists preserve
// this order, so it is part of the output contract.
func DefaultAnalyzers() []Analyzer {
	return []Analyzer{
		&LengthAnalyzer{},
		&RelevanceAnalyzer{},
		&StructureAnalyzer{},
		&EvidenceAnalyzer{},
		&ToneAnalyzer{},
	}
}

// RubricResult records what one analyzer contributed to a feedback record.
type RubricResult struct {
	Name     string `json:"name"`
	Modifier int    `json:"modifier"`
	Skipped  bool   `json:"skipped,omitempty"`
}

// RunAnalyzers runs every analyzer against doc in order and returns their
// verdicts alongside a per-rubric breakdown.
func RunAnalyzers(analyzers []Analyzer, doc *Document) ([]Verdict, []RubricResult) {
	verdicts := make([]Verdict, 0, len(analyzers))
	breakdown := make([]RubricResult, 0, len(analyzers))
	for _, a := range analyzers {
		v := a.Analyze(doc)
		if v.Skipped {
			v = Verdict{Skipped: true}
		}
		verdicts = append(verdicts, v)
		breakdown = append(breakdown, RubricResult{
			Name:     a.Name(),
			Modifier: v.Modifier,
			Skipped:  v.Skipped,
		})
	}
	return verdicts, breakdown
}
