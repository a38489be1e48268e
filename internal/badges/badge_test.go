package badges

import (
	"testing"

	"github.com/abhisek/watcrack/internal/evaluator"
	"github.com/abhisek/watcrack/internal/stats"
)

func ids(bs []Badge) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.ID
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		stats stats.UserStats
		fb    evaluator.Feedback
		want  []string
	}{
		{
			name:  "first submission, low score",
			stats: stats.UserStats{CompletedTests: 1, TotalWords: 40},
			fb:    evaluator.Feedback{Score: 20, Grade: evaluator.GradeF, WordCount: 40},
			want:  []string{FirstDraft},
		},
		{
			name:  "concise B",
			stats: stats.UserStats{CompletedTests: 2, TotalWords: 300, Badges: []string{FirstDraft}},
			fb:    evaluator.Feedback{Score: 75, Grade: evaluator.GradeB, WordCount: 150, WPM: 10},
			want:  []string{Concise},
		},
		{
			name:  "concise band edge misses at 251",
			stats: stats.UserStats{CompletedTests: 2, Badges: []string{FirstDraft}},
			fb:    evaluator.Feedback{Score: 75, Grade: evaluator.GradeB, WordCount: 251},
			want:  nil,
		},
		{
			name:  "perfect fast essay",
			stats: stats.UserStats{CompletedTests: 10, TotalWords: 1200, Badges: []string{FirstDraft}},
			fb:    evaluator.Feedback{Score: 100, Grade: evaluator.GradeA, WordCount: 200, WPM: 40},
			want:  []string{Concise, Sprinter, Wordsmith, GradeA, Marathon, Century},
		},
		{
			name:  "sprinter needs enough words",
			stats: stats.UserStats{CompletedTests: 3, Badges: []string{FirstDraft}},
			fb:    evaluator.Feedback{Score: 20, Grade: evaluator.GradeF, WordCount: 100, WPM: 60},
			want:  nil,
		},
		{
			name:  "already held badges are not repeated",
			stats: stats.UserStats{CompletedTests: 4, Badges: []string{FirstDraft, GradeA}},
			fb:    evaluator.Feedback{Score: 90, Grade: evaluator.GradeA, WordCount: 300},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Evaluate(&tt.stats, &tt.fb))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestEvaluate_Nil(t *testing.T) {
	if got := Evaluate(nil, &evaluator.Feedback{}); got != nil {
		t.Errorf("Evaluate(nil stats) = %v, want nil", got)
	}
	if got := Evaluate(&stats.UserStats{}, nil); got != nil {
		t.Errorf("Evaluate(nil feedback) = %v, want nil", got)
	}
}

func TestLookup(t *testing.T) {
	b, ok := Lookup(Century)
	if !ok {
		t.Fatal("Century not in catalog")
	}
	if b.Rarity != RarityLegendary {
		t.Errorf("Century rarity = %s, want legendary", b.Rarity)
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) should fail")
	}
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Catalog() {
		if seen[b.ID] {
			t.Errorf("duplicate badge id %q", b.ID)
		}
		seen[b.ID] = true
		if b.Name == "" || b.Description == "" || b.Icon() == "" {
			t.Errorf("badge %q missing display fields", b.ID)
		}
	}
	if len(seen) != 7 {
		t.Errorf("catalog size = %d, want 7", len(seen))
	}
}

func TestRarity_DisplayName(t *testing.T) {
	for _, r := range AllRarities() {
		if r.DisplayName() == string(r) {
			t.Errorf("rarity %q has no display name", r)
		}
	}
}
