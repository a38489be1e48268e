package evaluator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDocument_Words(t *testing.T) {
	doc := NewDocument("  Hello, World! Hello_there 42 ", "")
	want := []string{"hello", "world", "hello_there", "42"}
	if diff := cmp.Diff(want, doc.Words); diff != "" {
		t.Errorf("Words mismatch (-want +got):\n%s", diff)
	}
	if got := doc.UniqueWordCount(); got != 4 {
		t.Errorf("UniqueWordCount() = %d, want 4", got)
	}
}

func TestNewDocument_Paragraphs(t *testing.T) {
	text := "\n\nFirst block.\n  \nSecond block\nstill second.\n\n\n\t\nThird.\n\n"
	doc := NewDocument(text, "")
	if got := len(doc.Paragraphs); got != 3 {
		t.Fatalf("len(Paragraphs) = %d, want 3: %q", got, doc.Paragraphs)
	}
}

func TestNewDocument_Sentences(t *testing.T) {
	doc := NewDocument("One. Two!! Three?!  ...", "")
	if got := len(doc.Sentences); got != 3 {
		t.Fatalf("len(Sentences) = %d, want 3: %q", got, doc.Sentences)
	}
	if got := doc.FirstSentence(); got != "one" {
		t.Errorf("FirstSentence() = %q, want %q", got, "one")
	}
	if got := doc.LastSentence(); got != " three" {
		t.Errorf("LastSentence() = %q, want %q", got, " three")
	}
}

func TestNewDocument_Empty(t *testing.T) {
	doc := NewDocument("   \n\n  ", "Global Warming")
	if doc.WordCount() != 0 {
		t.Errorf("WordCount() = %d, want 0", doc.WordCount())
	}
	if len(doc.Paragraphs) != 0 {
		t.Errorf("len(Paragraphs) = %d, want 0", len(doc.Paragraphs))
	}
	if doc.FirstSentence() != "" || doc.LastSentence() != "" {
		t.Errorf("expected no sentences, got %q", doc.Sentences)
	}
}

func TestCountContained_Distinct(t *testing.T) {
	got := countContained("however, however and however thus", transitionWords)
	if got != 2 {
		t.Errorf("countContained = %d, want 2", got)
	}
}
