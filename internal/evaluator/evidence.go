package evaluator

var evidenceMarkers = []string{
	"evidence", "reason", "example", "illustration", "factor",
	"impact", "significance", "because", "analysis", "instance",
}

// EvidenceAnalyzer checks that claims are backed by reasons or examples.
type EvidenceAnalyzer struct{}

func (a *EvidenceAnalyzer) Name() string { return "evidence" }

func (a *EvidenceAnalyzer) Analyze(doc *Document) Verdict {
	if containsAny(doc.Lower, evidenceMarkers) {
		return Verdict{
			Strengths: []string{"Evidence-based approach. You consistently support your claims with logic or illustrative examples."},
		}
	}
	return Verdict{
		Modifier:    -15,
		Weaknesses:  []string{"Claims are presented as assertions without supporting data or reasoning."},
		Actionables: []string{"For each claim, add a reason or example (answer 'why?' and 'how?')."},
	}
}
