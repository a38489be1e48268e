package topics

import "math/rand/v2"

// Quote is shown on the home screen.
type Quote struct {
	Text   string
	Author string
}

var quotes = []Quote{
	{"Writing is thinking on paper.", "William Zinsser"},
	{"Easy reading is damn hard writing.", "Nathaniel Hawthorne"},
	{"The scariest moment is always just before you start.", "Stephen King"},
	{"Writing is an exploration. You start from nothing and learn as you go.", "E.L. Doctorow"},
	{"Clear thinking becomes clear writing; one can't exist without the other.", "William Lutz"},
}

// Quotes returns every quote.
func Quotes() []Quote {
	return append([]Quote(nil), quotes...)
}

// RandomQuote picks a quote using r, or the global source when r is nil.
func RandomQuote(r *rand.Rand) Quote {
	if r == nil {
		return quotes[rand.IntN(len(quotes))]
	}
	return quotes[r.IntN(len(quotes))]
}
