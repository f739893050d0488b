// Package categorize maps free-text material names to one of the catalog
// categories using keyword substring matching with a character-overlap
// fallback.
package categorize

import (
	"strings"

	"ai-processor/internal/catalog"
)

const (
	// UnknownCategory is returned when no keyword matches well enough.
	UnknownCategory = "Unknown"

	ExactConfidence     = 0.95
	SubstringConfidence = 0.85
	UnknownConfidence   = 0.1

	// FuzzyThreshold is the Jaccard score a fuzzy candidate must exceed.
	FuzzyThreshold = 0.3

	// AICategorizedBelow marks results below this confidence as machine-inferred.
	AICategorizedBelow = 0.9
)

// Engine categorizes material names against a fixed category table.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	categories []catalog.Category
}

// NewEngine builds an engine over the given categories, matched in slice order.
func NewEngine(categories []catalog.Category) *Engine {
	return &Engine{categories: categories}
}

// NewDefaultEngine builds an engine over the embedded catalog.
func NewDefaultEngine() *Engine {
	return NewEngine(catalog.Categories())
}

// Categorize returns the display category and confidence for name.
func (e *Engine) Categorize(name string) (string, float64) {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, c := range e.categories {
		for _, kw := range c.Keywords {
			if strings.Contains(name, kw) {
				if name == kw {
					return c.Title, ExactConfidence
				}
				return c.Title, SubstringConfidence
			}
		}
	}

	nameChars := runeSet(name)
	best := 0.0
	bestCategory := UnknownCategory
	for _, c := range e.categories {
		for _, kw := range c.Keywords {
			if !sharesRune(kw, nameChars) {
				continue
			}
			score := jaccard(runeSet(kw), nameChars)
			if score > best && score > FuzzyThreshold {
				best = score
				bestCategory = c.Title
			}
		}
	}
	if bestCategory == UnknownCategory {
		return UnknownCategory, UnknownConfidence
	}
	return bestCategory, best
}

// IsAICategorized reports whether a confidence counts as an inferred category.
func IsAICategorized(confidence float64) bool {
	return confidence < AICategorizedBelow
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

func sharesRune(s string, set map[rune]struct{}) bool {
	for _, r := range s {
		if _, ok := set[r]; ok {
			return true
		}
	}
	return false
}

func jaccard(a, b map[rune]struct{}) float64 {
	inter := 0
	for r := range a {
		if _, ok := b[r]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
