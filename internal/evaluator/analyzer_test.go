package evaluator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// filler returns n neutral word tokens that trigger no marker list.
func filler(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}

func TestLengthAnalyzer_Bands(t *testing.T) {
	tests := []struct {
		words    int
		modifier int
	}{
		{0, -25},
		{119, -25},
		{120, 25},
		{250, 25},
		{251, -5},
	}
	a := &LengthAnalyzer{}
	for _, tt := range tests {
		v := a.Analyze(NewDocument(filler(tt.words), ""))
		if v.Modifier != tt.modifier {
			t.Errorf("Length(%d words) modifier = %d, want %d", tt.words, v.Modifier, tt.modifier)
		}
	}
}

func TestLengthAnalyzer_WeaknessQuotesCount(t *testing.T) {
	v := (&LengthAnalyzer{}).Analyze(NewDocument(filler(42), ""))
	want := "Response (42 words) is underdeveloped. Standard WAT expectations range from 120-250 words."
	if len(v.Weaknesses) != 1 || v.Weaknesses[0] != want {
		t.Errorf("Weaknesses = %q, want [%q]", v.Weaknesses, want)
	}
	if len(v.Actionables) != 1 {
		t.Errorf("len(Actionables) = %d, want 1", len(v.Actionables))
	}
}

func TestTopicKeywords(t *testing.T) {
	tests := []struct {
		title string
		want  []string
	}{
		{"Global Warming", []string{"global", "warming"}},
		{"The Future of Work: Still Human?", []string{"future", "work:", "human?"}},
		{"Is AI Bad", nil},
		{"", nil},
		{"  About   THIS  that  ", nil},
	}
	for _, tt := range tests {
		got := TopicKeywords(tt.title)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("TopicKeywords(%q) mismatch (-want +got):\n%s", tt.title, diff)
		}
	}
}

func TestRelevanceAnalyzer(t *testing.T) {
	a := &RelevanceAnalyzer{}
	tests := []struct {
		name     string
		text     string
		topic    string
		modifier int
		skipped  bool
	}{
		{"full overlap", "global warming is real", "Global Warming", 15, false},
		{"half overlap is enough", "the globalisation debate", "Global Warming", 15, false},
		{"below half", "only warming here", "Global Warming Crisis Today", -20, false},
		{"no keywords skips", "anything at all", "Is AI Bad", 0, true},
		{"empty topic skips", "anything at all", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := a.Analyze(NewDocument(tt.text, tt.topic))
			if v.Modifier != tt.modifier {
				t.Errorf("modifier = %d, want %d", v.Modifier, tt.modifier)
			}
			if v.Skipped != tt.skipped {
				t.Errorf("skipped = %v, want %v", v.Skipped, tt.skipped)
			}
		})
	}
}

func TestKeywordOverlap(t *testing.T) {
	pct, ok := KeywordOverlap([]string{"alpha", "beta", "gamma", "delta"}, "alphabet soup with beta")
	if !ok {
		t.Fatal("expected ok")
	}
	if pct != 50 {
		t.Errorf("overlap = %v, want 50", pct)
	}
	if _, ok := KeywordOverlap(nil, "x"); ok {
		t.Error("expected !ok for no keywords")
	}
}

func TestStructureAnalyzer_Combinations(t *testing.T) {
	a := &StructureAnalyzer{}
	tests := []struct {
		name       string
		text       string
		modifier   int
		weaknesses int
	}{
		{
			name:       "intro and conclusion, short, no transitions",
			text:       "I believe this. In conclusion it holds.",
			modifier:   20 - 10,
			weaknesses: 1,
		},
		{
			name:       "missing both costs twenty once",
			text:       "Plain start. Plain end.",
			modifier:   -20 - 10,
			weaknesses: 3,
		},
		{
			name:       "missing conclusion only",
			text:       "My stance is clear. Nothing more.",
			modifier:   -20 - 10,
			weaknesses: 2,
		},
		{
			name:       "paragraphs and transitions",
			text:       "I believe it.\n\nHowever, moreover it is.\n\nThus, finally done.",
			modifier:   20 + 10 + 10,
			weaknesses: 0,
		},
		{
			name:       "single block over eighty words",
			text:       "Thesis first. " + filler(90) + ". Therefore and so the result.",
			modifier:   20 - 15 - 10,
			weaknesses: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := a.Analyze(NewDocument(tt.text, ""))
			if v.Modifier != tt.modifier {
				t.Errorf("modifier = %d, want %d", v.Modifier, tt.modifier)
			}
			if len(v.Weaknesses) != tt.weaknesses {
				t.Errorf("len(Weaknesses) = %d, want %d: %q", len(v.Weaknesses), tt.weaknesses, v.Weaknesses)
			}
			if len(v.Actionables) != len(v.Weaknesses) {
				t.Errorf("len(Actionables) = %d, want %d", len(v.Actionables), len(v.Weaknesses))
			}
		})
	}
}

func TestCheckStructure_LongTextImpliesIntro(t *testing.T) {
	if CheckStructure(NewDocument(filler(150), "")).HasIntro {
		t.Error("150 words should not imply an intro")
	}
	if !CheckStructure(NewDocument(filler(151), "")).HasIntro {
		t.Error("151 words should imply an intro")
	}
}

func TestEvidenceAnalyzer(t *testing.T) {
	a := &EvidenceAnalyzer{}
	if v := a.Analyze(NewDocument("Prices rose for a simple Reason.", "")); v.Modifier != 0 || len(v.Strengths) != 1 {
		t.Errorf("with marker: modifier %d strengths %d, want 0 and 1", v.Modifier, len(v.Strengths))
	}
	if v := a.Analyze(NewDocument("Prices rose.", "")); v.Modifier != -15 || len(v.Weaknesses) != 1 {
		t.Errorf("without marker: modifier %d weaknesses %d, want -15 and 1", v.Modifier, len(v.Weaknesses))
	}
}

func TestToneAnalyzer(t *testing.T) {
	a := &ToneAnalyzer{}
	tests := []struct {
		text     string
		modifier int
	}{
		{"That was RIDICULOUS.", -20},
		{"A total disaster, honestly.", -20},
		{"They hate it and it is the worst.", -20},
		{"Whatever happens, stay calm.", 0},
		{"Disasters happen.", 0},
	}
	for _, tt := range tests {
		v := a.Analyze(NewDocument(tt.text, ""))
		if v.Modifier != tt.modifier {
			t.Errorf("Tone(%q) modifier = %d, want %d", tt.text, v.Modifier, tt.modifier)
		}
		if len(v.Strengths) != 0 {
			t.Errorf("Tone(%q) produced strengths %q", tt.text, v.Strengths)
		}
	}
}

type fixedAnalyzer struct {
	name string
	v    Verdict
}

func (f *fixedAnalyzer) Name() string              { return f.name }
func (f *fixedAnalyzer) Analyze(*Document) Verdict { return f.v }

func TestRunAnalyzers_SkippedCarriesNothing(t *testing.T) {
	analyzers := []Analyzer{
		&fixedAnalyzer{name: "a", v: Verdict{Modifier: 5, Strengths: []string{"s"}}},
		&fixedAnalyzer{name: "b", v: Verdict{Modifier: -7, Weaknesses: []string{"w"}, Skipped: true}},
	}
	verdicts, breakdown := RunAnalyzers(analyzers, NewDocument("", ""))
	if len(verdicts) != 2 {
		t.Fatalf("len(verdicts) = %d, want 2", len(verdicts))
	}
	if verdicts[1].Modifier != 0 || len(verdicts[1].Weaknesses) != 0 {
		t.Errorf("skipped verdict leaked content: %+v", verdicts[1])
	}
	want := []RubricResult{{Name: "a", Modifier: 5}, {Name: "b", Skipped: true}}
	if diff := cmp.Diff(want, breakdown); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
}
