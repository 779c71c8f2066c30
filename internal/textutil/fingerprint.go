package textutil

import (
	"math"
	"strings"
)

// Fingerprint represents a character trigram frequency vector.
type Fingerprint struct {
	grams map[string]float64
	norm  float64
}

// NewFingerprint creates a fingerprint from the provided text.
// Returns nil if the text is blank.
func NewFingerprint(text string) *Fingerprint {
	grams := Trigrams(text)
	if len(grams) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(grams))
	for _, gram := range grams {
		counts[gram]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &Fingerprint{
		grams: counts,
		norm:  math.Sqrt(norm),
	}
}

// Trigrams lowercases text, pads it with spaces, and returns every run of
// three consecutive runes.
func Trigrams(text string) []string {
	lowered := strings.ToLower(NormalizeLabel(text))
	if lowered == "" {
		return nil
	}
	runes := []rune(" " + lowered + " ")
	grams := make([]string, 0, len(runes))
	for i := 0; i+3 <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+3]))
	}
	return grams
}
