package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher names accepted by NewScorer.
const (
	MatcherFuzzy     = "fuzzy"
	MatcherSubstring = "substring"
)

// Scorer rates how well text matches an already normalized query.
// Zero means no match; otherwise higher is better.
type Scorer interface {
	Score(text, query string) int
}

// NewScorer returns the scorer registered under name, or false if none is.
func NewScorer(name string) (Scorer, bool) {
	switch name {
	case MatcherFuzzy:
		return FuzzyScorer{}, true
	case MatcherSubstring:
		return SubstringScorer{}, true
	default:
		return nil, false
	}
}

// fuzzyBaseline lifts fuzzy's signed scores above zero. Its penalties are
// bounded by the text length, so any name shorter than this stays positive.
const fuzzyBaseline = 1 << 20

// FuzzyScorer matches the query as an ordered, possibly scattered
// subsequence of the text. Tighter and earlier matches score higher.
type FuzzyScorer struct{}

// Score implements Scorer.
func (FuzzyScorer) Score(text, query string) int {
	if query == "" {
		return 0
	}

	matches := fuzzy.Find(query, []string{text})
	if len(matches) == 0 {
		return 0
	}
	return max(matches[0].Score+fuzzyBaseline, 1)
}

// SubstringScorer matches when the lowercased text contains the query.
// Every match scores the same, so ranking keeps the collection order.
type SubstringScorer struct{}

// Score implements Scorer.
func (SubstringScorer) Score(text, query string) int {
	if strings.Contains(lower(text), query) {
		return 1
	}
	return 0
}

// NormalizeQuery trims surrounding whitespace and lowercases the query.
func NormalizeQuery(raw string) string {
	return lower(strings.TrimSpace(raw))
}

func lower(s string) string {
	// cases.Caser is stateful, so each call gets its own
	return cases.Lower(language.Und).String(s)
}
