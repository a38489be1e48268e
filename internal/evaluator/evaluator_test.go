package evaluator

import (
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func loadEssay(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/social_media.txt")
	if err != nil {
		t.Fatalf("read essay: %v", err)
	}
	return string(b)
}

// repeated builds a tone-clean single-paragraph response of 140 words with
// evidence but no intro, conclusion or transitions.
func repeated() string {
	return strings.Repeat("Cities grow quickly because jobs move there. ", 20)
}

func TestEvaluate_EmptyText(t *testing.T) {
	fb := Evaluate("", "Global Warming", 0)

	if fb.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", fb.WordCount)
	}
	if fb.WPM != 0 {
		t.Errorf("WPM = %d, want 0", fb.WPM)
	}
	if fb.Score > 35 {
		t.Errorf("Score = %d, want <= 35", fb.Score)
	}
	if fb.Score != 0 || fb.Grade != GradeF {
		t.Errorf("Score/Grade = %d/%s, want 0/F", fb.Score, fb.Grade)
	}
	if fb.RawScore != -30 {
		t.Errorf("RawScore = %v, want -30", fb.RawScore)
	}
	if len(fb.Negatives) == 0 || !strings.HasPrefix(fb.Negatives[0], "Response (0 words) is underdeveloped") {
		t.Errorf("missing length weakness, got %q", fb.Negatives)
	}
	if fb.Metrics.VocabularyBreadth != 0 {
		t.Errorf("VocabularyBreadth = %d, want 0", fb.Metrics.VocabularyBreadth)
	}
}

func TestEvaluate_WellFormedEssay(t *testing.T) {
	fb := Evaluate(loadEssay(t), "Social Media and Democracy", 600)

	if fb.WordCount < 120 || fb.WordCount > 250 {
		t.Fatalf("fixture WordCount = %d, want within 120-250", fb.WordCount)
	}
	if fb.Score < 85 || fb.Grade != GradeA {
		t.Errorf("Score/Grade = %d/%s, want >=85/A", fb.Score, fb.Grade)
	}
	if len(fb.Negatives) != 0 {
		t.Errorf("Negatives = %q, want none", fb.Negatives)
	}
	if diff := cmp.Diff([]string{PEELTip}, fb.Recommendations); diff != "" {
		t.Errorf("Recommendations mismatch (-want +got):\n%s", diff)
	}

	// Six strengths are produced; the cap keeps the first four in run order.
	wantPositives := []string{
		"Excellent volume control; your response covers the topic thoroughly while remaining focused.",
		"Strong topical relevance. You've successfully anchored your arguments to the prompt's key terms.",
		"Highly organized delivery. The transition from thesis statement to concluding summary is logical and effective.",
		"Effective use of paragraphing to delineate separate arguments and enhance readability.",
	}
	if diff := cmp.Diff(wantPositives, fb.Positives); diff != "" {
		t.Errorf("Positives mismatch (-want +got):\n%s", diff)
	}

	wantMetrics := Metrics{VocabularyBreadth: 100, TransitionUsage: 80, StructureScore: 100}
	if diff := cmp.Diff(wantMetrics, fb.Metrics); diff != "" {
		t.Errorf("Metrics mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_WPM(t *testing.T) {
	fb := Evaluate(filler(40), "", 60)
	if fb.WordCount != 40 {
		t.Fatalf("WordCount = %d, want 40", fb.WordCount)
	}
	if fb.WPM != 40 {
		t.Errorf("WPM = %d, want 40", fb.WPM)
	}
}

func TestWordsPerMinute(t *testing.T) {
	tests := []struct {
		words   int
		seconds float64
		want    int
	}{
		{40, 60, 40},
		{100, 0, 0},
		{100, -5, 0},
		{10, 45, 13},
		{1, 120, 1},
		{0, 30, 0},
	}
	for _, tt := range tests {
		if got := WordsPerMinute(tt.words, tt.seconds); got != tt.want {
			t.Errorf("WordsPerMinute(%d, %v) = %d, want %d", tt.words, tt.seconds, got, tt.want)
		}
	}
}

func TestEvaluate_ToneCostsExactlyTwenty(t *testing.T) {
	clean := repeated()
	harsh := strings.Replace(clean, "because jobs", "because ridiculous jobs", 1)

	a := Evaluate(clean, "", 0)
	b := Evaluate(harsh, "", 0)

	if a.Score != 40 {
		t.Fatalf("clean Score = %d, want 40", a.Score)
	}
	if a.Score-b.Score != 20 {
		t.Errorf("score delta = %d, want 20", a.Score-b.Score)
	}
	if a.RawScore-b.RawScore != 20 {
		t.Errorf("raw score delta = %v, want 20", a.RawScore-b.RawScore)
	}
	tone := "Tone issues detected. Overly emotional or extreme language reduces professional credibility."
	found := false
	for _, n := range b.Negatives {
		if n == tone {
			found = true
		}
	}
	if !found {
		t.Errorf("tone weakness missing from %q", b.Negatives)
	}
}

func TestEvaluate_LengthBandsMonotonic(t *testing.T) {
	short := Evaluate(filler(119), "", 0)
	long := Evaluate(filler(150), "", 0)

	if short.Breakdown[0].Modifier != -25 || long.Breakdown[0].Modifier != 25 {
		t.Errorf("length modifiers = %d/%d, want -25/25", short.Breakdown[0].Modifier, long.Breakdown[0].Modifier)
	}
	if short.Score >= long.Score {
		t.Errorf("119 words scored %d, not below 150 words at %d", short.Score, long.Score)
	}
}

func TestEvaluate_RelevanceSkippedWithoutKeywords(t *testing.T) {
	fb := Evaluate(repeated(), "Is AI Bad", 0)
	rel := fb.Breakdown[1]
	if rel.Name != "relevance" || !rel.Skipped || rel.Modifier != 0 {
		t.Errorf("relevance breakdown = %+v, want skipped with no modifier", rel)
	}
	if fb.Score != 40 {
		t.Errorf("Score = %d, want 40", fb.Score)
	}
}

func TestEvaluate_TruncatesWithoutPEEL(t *testing.T) {
	fb := Evaluate("", "Global Warming", 0)
	if len(fb.Recommendations) != MaxRecommendations {
		t.Fatalf("len(Recommendations) = %d, want %d", len(fb.Recommendations), MaxRecommendations)
	}
	for _, r := range fb.Recommendations {
		if r == PEELTip {
			t.Error("P-E-E-L tip should fall past the cap when actionables fill it")
		}
	}
	if fb.Recommendations[0] != "Aim for at least 120 words to cover the topic in depth." {
		t.Errorf("first recommendation = %q, want the length actionable", fb.Recommendations[0])
	}
}

func TestEvaluate_PEELLastWhenRoom(t *testing.T) {
	fb := Evaluate(repeated(), "", 0)
	if got := fb.Recommendations[len(fb.Recommendations)-1]; got != PEELTip {
		t.Errorf("last recommendation = %q, want P-E-E-L tip", got)
	}
}

func TestEvaluate_Properties(t *testing.T) {
	inputs := []Input{
		{},
		{Text: "x"},
		{Text: "   \n\n\n   ", TopicTitle: "   "},
		{Text: filler(400), TopicTitle: "Technology and Society", TimeSpentSeconds: 1},
		{Text: strings.Repeat("stupid ", 300), TimeSpentSeconds: 1e-9},
		{Text: repeated(), TopicTitle: "Urban Growth of Cities", TimeSpentSeconds: 900},
		{Text: "Hate. Worst. Disaster!", TopicTitle: "a b c", TimeSpentSeconds: -10},
	}
	for i, in := range inputs {
		fb := EvaluateInput(in)
		if fb.Score < 0 || fb.Score > 100 {
			t.Errorf("[%d] Score = %d out of range", i, fb.Score)
		}
		if fb.WordCount < 0 || fb.WPM < 0 {
			t.Errorf("[%d] WordCount/WPM = %d/%d, want >= 0", i, fb.WordCount, fb.WPM)
		}
		if in.TimeSpentSeconds <= 0 && fb.WPM != 0 {
			t.Errorf("[%d] WPM = %d with no time, want 0", i, fb.WPM)
		}
		if fb.Grade != GradeFor(fb.Score) {
			t.Errorf("[%d] Grade = %s, want %s", i, fb.Grade, GradeFor(fb.Score))
		}
		if len(fb.Positives) > MaxPositives || len(fb.Negatives) > MaxNegatives || len(fb.Recommendations) > MaxRecommendations {
			t.Errorf("[%d] list caps exceeded: %d/%d/%d", i, len(fb.Positives), len(fb.Negatives), len(fb.Recommendations))
		}
		for _, m := range []int{fb.Metrics.VocabularyBreadth, fb.Metrics.TransitionUsage, fb.Metrics.StructureScore} {
			if m < 0 || m > 100 {
				t.Errorf("[%d] metric %d out of range", i, m)
			}
		}

		sum := BaseScore
		for _, r := range fb.Breakdown {
			sum += r.Modifier
		}
		if fb.RawScore != float64(sum) {
			t.Errorf("[%d] RawScore = %v, want %d", i, fb.RawScore, sum)
		}
		if want := int(clamp(fb.RawScore, 0, 100)); fb.Score != want {
			t.Errorf("[%d] Score = %d, want clamp(RawScore) = %d", i, fb.Score, want)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	essay := loadEssay(t)
	a := Evaluate(essay, "Social Media and Democracy", 432.5)
	b := Evaluate(essay, "Social Media and Democracy", 432.5)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated call differs (-first +second):\n%s", diff)
	}
}

func TestEvaluate_ConcurrentCalls(t *testing.T) {
	essay := loadEssay(t)
	want := Evaluate(essay, "Social Media and Democracy", 300)

	var wg sync.WaitGroup
	results := make([]*Feedback, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Evaluate(essay, "Social Media and Democracy", 300)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("goroutine %d differs:\n%s", i, diff)
		}
	}
}

func TestGradeFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Grade
	}{
		{100, GradeA}, {85, GradeA}, {84, GradeB}, {70, GradeB}, {69, GradeC},
		{50, GradeC}, {49, GradeD}, {30, GradeD}, {29, GradeF}, {0, GradeF},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.score); got != tt.want {
			t.Errorf("GradeFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestGrade_AtLeast(t *testing.T) {
	if !GradeA.AtLeast(GradeB) || !GradeB.AtLeast(GradeB) || GradeC.AtLeast(GradeB) {
		t.Error("AtLeast ordering is wrong")
	}
}

func TestFeedback_EmptyListsEncodeAsArrays(t *testing.T) {
	fb := Evaluate(loadEssay(t), "Social Media and Democracy", 0)
	if fb.Negatives == nil {
		t.Error("Negatives is nil, want empty slice")
	}
}

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Metrics
	}{
		{
			name: "empty",
			text: "",
			want: Metrics{},
		},
		{
			name: "opinion intro only",
			text: "I believe cats. Cats cats",
			want: Metrics{VocabularyBreadth: 90, TransitionUsage: 0, StructureScore: 33},
		},
		{
			name: "paragraphs and conclusion without intro",
			text: "Hello world.\n\nSecond part.\n\nThird part therefore",
			want: Metrics{VocabularyBreadth: 100, TransitionUsage: 20, StructureScore: 67},
		},
		{
			name: "transition usage caps at 100",
			text: "However moreover furthermore hence thus accordingly.",
			want: Metrics{VocabularyBreadth: 100, TransitionUsage: 100, StructureScore: 0},
		},
		{
			name: "one repeated word",
			text: "Growth growth growth growth growth growth growth growth growth growth",
			want: Metrics{VocabularyBreadth: 15, TransitionUsage: 0, StructureScore: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMetrics(NewDocument(tt.text, ""))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ComputeMetrics(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}
