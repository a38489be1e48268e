package evaluator

// Grade is the letter band of a final score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Caps on the feedback lists.
const (
	MaxPositives       = 4
	MaxNegatives       = 4
	MaxRecommendations = 5
)

// PEELTip is the fallback recommendation appended after every rubric's
// actionables.
const PEELTip = "Adopt the P-E-E-L framework for every body paragraph: Point, Evidence, Explanation, Link."

// GradeFor returns the grade band for score. Lower bounds are inclusive.
func GradeFor(score int) Grade {
	switch {
	case score >= 85:
		return GradeA
	case score >= 70:
		return GradeB
	case score >= 50:
		return GradeC
	case score >= 30:
		return GradeD
	default:
		return GradeF
	}
}

// AtLeast reports whether g is the same as or better than other.
func (g Grade) AtLeast(other Grade) bool {
	return gradeRank(g) >= gradeRank(other)
}

func gradeRank(g Grade) int {
	switch g {
	case GradeA:
		return 4
	case GradeB:
		return 3
	case GradeC:
		return 2
	case GradeD:
		return 1
	default:
		return 0
	}
}

// Metrics are the auxiliary 0–100 sub-scores of a response.
type Metrics struct {
	VocabularyBreadth int `json:"vocabularyBreadth"`
	TransitionUsage   int `json:"transitionUsage"`
	StructureScore    int `json:"structureScore"`
}

// Feedback is the complete result of scoring one response. A fresh record is
// built for every call and never mutated afterwards.
type Feedback struct {
	Score           int      `json:"score"`
	WordCount       int      `json:"wordCount"`
	WPM             int      `json:"wpm"`
	Grade           Grade    `json:"grade"`
	Positives       []string `json:"positives"`
	Negatives       []string `json:"negatives"`
	Recommendations []string `json:"recommendations"`
	Metrics         Metrics  `json:"metrics"`

	// RawScore is the base plus every modifier, before clamping and rounding.
	RawScore float64 `json:"rawScore"`

	// Breakdown lists each rubric's contribution in run order.
	Breakdown []RubricResult `json:"breakdown"`
}
