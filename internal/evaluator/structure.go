package evaluator

var (
	introMarkers = []string{
		"introduction", "context", "initially", "believe", "thesis",
		"premise", "topic", "frame", "stance",
	}
	conclusionMarkers = []string{
		"conclusion", "summary", "ultimately", "finally", "consequently",
		"result", "therefore", "conclude", "restatement",
	}
	transitionWords = []string{
		"however", "therefore", "consequently", "nevertheless", "furthermore",
		"moreover", "in contrast", "additionally", "similarly", "on the other hand",
		"hence", "thus", "nonetheless", "alternatively", "as a result",
		"specifically", "to illustrate", "subsequently", "conversely", "accordingly",
		"yet", "paradoxically", "notwithstanding",
	}
)

const (
	// introWordProxy is the word count above which a response is assumed to
	// have an introduction regardless of its opening sentence.
	introWordProxy = 150

	// blockTextWords is the word count above which a response without
	// paragraph breaks is penalized as a single block.
	blockTextWords = 80

	minParagraphs  = 3
	minTransitions = 3
)

// StructureChecks are the structural facts shared by the structure rubric
// and the structure/transition metrics.
type StructureChecks struct {
	HasIntro        bool
	HasConclusion   bool
	HasParagraphs   bool
	TransitionCount int
}

// CheckStructure derives the structural facts of a document.
func CheckStructure(doc *Document) StructureChecks {
	return StructureChecks{
		HasIntro:        containsAny(doc.FirstSentence(), introMarkers) || doc.WordCount() > introWordProxy,
		HasConclusion:   containsAny(doc.LastSentence(), conclusionMarkers),
		HasParagraphs:   len(doc.Paragraphs) >= minParagraphs,
		TransitionCount: countContained(doc.Lower, transitionWords),
	}
}

// StructureAnalyzer scores framing, paragraphing and use of connectors.
type StructureAnalyzer struct{}

func (a *StructureAnalyzer) Name() string { return "structure" }

func (a *StructureAnalyzer) Analyze(doc *Document) Verdict {
	c := CheckStructure(doc)
	var v Verdict

	if c.HasIntro && c.HasConclusion {
		v.Strengths = append(v.Strengths, "Highly organized delivery. The transition from thesis statement to concluding summary is logical and effective.")
		v.Modifier += 20
	} else {
		if !c.HasIntro {
			v.Weaknesses = append(v.Weaknesses, "Missing clear thesis statement in the introduction to frame your stance.")
			v.Actionables = append(v.Actionables, "Start with a clear introduction that defines the topic and states your thesis.")
		}
		if !c.HasConclusion {
			v.Weaknesses = append(v.Weaknesses, "The essay ends abruptly without a synthesis of the discussed points.")
			v.Actionables = append(v.Actionables, "Summarize your main argument succinctly in a final paragraph.")
		}
		v.Modifier -= 20
	}

	if c.HasParagraphs {
		v.Strengths = append(v.Strengths, "Effective use of paragraphing to delineate separate arguments and enhance readability.")
		v.Modifier += 10
	} else if doc.WordCount() > blockTextWords {
		v.Weaknesses = append(v.Weaknesses, "The response is a single block of text, making it difficult for evaluators to track individual points.")
		v.Actionables = append(v.Actionables, "Use separate paragraphs for different points (one idea per paragraph).")
		v.Modifier -= 15
	}

	if c.TransitionCount >= minTransitions {
		v.Strengths = append(v.Strengths, "Fluid coherence. Your use of transition markers ensures a seamless logical flow between ideas.")
		v.Modifier += 10
	} else {
		v.Weaknesses = append(v.Weaknesses, "Limited logical connectors between sentences, resulting in a somewhat choppy narrative.")
		v.Actionables = append(v.Actionables, "Use linking words like 'however', 'consequently', or 'furthermore' to guide the reader.")
		v.Modifier -= 10
	}

	return v
}
