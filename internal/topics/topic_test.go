package topics

import (
	"testing"
)

func TestBank(t *testing.T) {
	all := All()
	if len(all) != 25 {
		t.Fatalf("len(All()) = %d, want 25", len(all))
	}

	seen := map[string]bool{}
	for _, tp := range all {
		if seen[tp.ID] {
			t.Errorf("duplicate id %q", tp.ID)
		}
		seen[tp.ID] = true
		if _, ok := ParseCategory(string(tp.Category)); !ok {
			t.Errorf("topic %s: bad category %q", tp.ID, tp.Category)
		}
		if _, ok := ParseDifficulty(string(tp.Difficulty)); !ok {
			t.Errorf("topic %s: bad difficulty %q", tp.ID, tp.Difficulty)
		}
	}

	// All returns a copy.
	all[0].Title = "changed"
	if got, _ := Lookup("1"); got.Title == "changed" {
		t.Error("All() exposed the bank")
	}
}

func TestLookup(t *testing.T) {
	got, ok := Lookup("6")
	if !ok {
		t.Fatal("Lookup(6) not found")
	}
	if got.Title != "Social Media: Connecting People or Polarizing Societies?" {
		t.Errorf("title = %q", got.Title)
	}
	if _, ok := Lookup("99"); ok {
		t.Error("Lookup(99) found a topic")
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		category   Category
		difficulty Difficulty
		want       int
	}{
		{"", "", 25},
		{Economics, "", 4},
		{Social, "", 7},
		{Technology, Hard, 2},
		{Politics, Easy, 0},
		{"", Easy, 7},
	}
	for _, tt := range tests {
		got := Filter(All(), tt.category, tt.difficulty)
		if len(got) != tt.want {
			t.Errorf("Filter(%q, %q) = %d topics, want %d", tt.category, tt.difficulty, len(got), tt.want)
		}
		for _, tp := range got {
			if tt.category != "" && tp.Category != tt.category {
				t.Errorf("Filter(%q) returned %q", tt.category, tp.Category)
			}
		}
	}
}

func TestParse(t *testing.T) {
	if c, ok := ParseCategory("technology"); !ok || c != Technology {
		t.Errorf("ParseCategory(technology) = %q, %v", c, ok)
	}
	if _, ok := ParseCategory("sports"); ok {
		t.Error("ParseCategory(sports) accepted")
	}
	if d, ok := ParseDifficulty("HARD"); !ok || d != Hard {
		t.Errorf("ParseDifficulty(HARD) = %q, %v", d, ok)
	}
	if d, ok := ParseDifficulty(""); !ok || d != "" {
		t.Errorf("ParseDifficulty(\"\") = %q, %v", d, ok)
	}
}
