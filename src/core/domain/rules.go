package domain

import (
	"math"
	"strings"
)

// Joke content limits. Titles and bodies are measured in
// whitespace-separated words, not characters.
const (
	MaxTitleWords = 10
	MaxBodyWords  = 100
)

// MergeRating folds an incoming rating into a joke's current rating.
// The first rating replaces the zero default; every later rating is
// averaged with the current value and rounded to one decimal place.
// The incoming value is caller-supplied and deliberately unbounded.
func MergeRating(current, incoming float64) float64 {
	if current == 0 {
		return incoming
	}
	return math.Round((current+incoming)/2*10) / 10
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ValidateTitle checks the joke title against the submission rules.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "title is required")
	}
	if WordCount(title) > MaxTitleWords {
		return NewValidationError("title", "title must be at most 10 words")
	}
	return nil
}

// ValidateBody checks the joke body against the submission and edit rules.
func ValidateBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return NewValidationError("body", "body is required")
	}
	if WordCount(body) > MaxBodyWords {
		return NewValidationError("body", "body must be at most 100 words")
	}
	return nil
}
