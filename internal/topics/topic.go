// Package topics holds the essay prompt bank and the ways of picking from it.
package topics

import (
	"errors"
	"strings"
)

// ErrNoTopics is returned when a filter, spin or generation yields nothing.
var ErrNoTopics = errors.New("no topics available")

// Category groups topics by subject area.
type Category string

const (
	Economics  Category = "Economics"
	Social     Category = "Social"
	Technology Category = "Technology"
	Ethics     Category = "Ethics"
	Politics   Category = "Politics"
	Abstract   Category = "Abstract"
)

// Categories lists every category in display order.
var Categories = []Category{Economics, Social, Technology, Ethics, Politics, Abstract}

// Difficulty rates how demanding a topic is to argue.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists every difficulty from easiest.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseCategory matches s case-insensitively. Empty input returns "" and true.
func ParseCategory(s string) (Category, bool) {
	if s == "" {
		return "", true
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// ParseDifficulty matches s case-insensitively. Empty input returns "" and true.
func ParseDifficulty(s string) (Difficulty, bool) {
	if s == "" {
		return "", true
	}
	for _, d := range Difficulties {
		if strings.EqualFold(string(d), s) {
			return d, true
		}
	}
	return "", false
}

// Topic is one essay prompt.
type Topic struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Category   Category   `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

var bank = []Topic{
	{"1", "Artificial Intelligence: A Threat to Human Creativity?", Technology, Medium},
	{"2", `Is the Concept of "Job for Life" Dead in the Gig Economy?`, Economics, Easy},
	{"3", "The Ethics of Genetic Engineering in Humans", Ethics, Hard},
	{"4", "Global Warming: Mitigation vs. Adaptation", Social, Medium},
	{"5", "Cryptocurrency: Financial Revolution or Speculative Bubble?", Economics, Hard},
	{"6", "Social Media: Connecting People or Polarizing Societies?", Social, Easy},
	{"7", "Universal Basic Income: Solution to Automation or Incentive for Idleness?", Economics, Hard},
	{"8", "The Role of Soft Skills in a Tech-Driven World", Abstract, Easy},
	{"9", "Privatization of Healthcare: Pros and Cons", Social, Medium},
	{"10", "Should Data Privacy be a Fundamental Human Right?", Technology, Medium},
	{"11", "Sustainable Development: A Myth or a Possibility?", Social, Hard},
	{"12", "Leadership in the Age of Remote Work", Abstract, Easy},
	{"13", "Impact of Regional Conflicts on Global Supply Chains", Politics, Hard},
	{"14", "Corporate Social Responsibility: Genuine Commitment or PR Stunt?", Ethics, Medium},
	{"15", "Education System: Knowledge-based vs. Skill-based", Social, Easy},
	{"16", "Influence of Celebrity Endorsements on Consumer Behavior", Abstract, Medium},
	{"17", "Nuclear Energy: A Necessary Evil for Zero Carbon?", Technology, Hard},
	{"18", "Is Globalization Reversing in the Post-Pandemic Era?", Economics, Medium},
	{"19", "Freedom of Speech vs. Preventing Hate Speech", Politics, Hard},
	{"20", "The Future of Cities: Vertical Growth or Decentralization?", Abstract, Medium},
	{"21", "Work-Life Balance: Personal Responsibility or Organizational Culture?", Abstract, Easy},
	{"22", "Space Exploration: Necessity or Luxury for a Developing Nation?", Technology, Hard},
	{"23", "Women in Leadership: Breaking the Glass Ceiling", Social, Medium},
	{"24", "Mental Health in the Workplace: Still a Taboo?", Social, Easy},
	{"25", "Digital India: Real Empowerment or Digital Divide?", Politics, Medium},
}

// All returns a copy of the built-in bank.
func All() []Topic {
	return append([]Topic(nil), bank...)
}

// Lookup returns the built-in topic with id.
func Lookup(id string) (Topic, bool) {
	for _, t := range bank {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// Filter returns the topics in list matching category and difficulty. An
// empty value matches everything.
func Filter(list []Topic, category Category, difficulty Difficulty) []Topic {
	var out []Topic
	for _, t := range list {
		if category != "" && t.Category != category {
			continue
		}
		if difficulty != "" && t.Difficulty != difficulty {
			continue
		}
		out = append(out, t)
	}
	return out
}

func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
