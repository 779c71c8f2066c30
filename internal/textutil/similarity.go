package textutil

// suggestThreshold is the minimum similarity for a suggestion.
const suggestThreshold = 0.3

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for gram, count := range a.grams {
		if other, ok := b.grams[gram]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// Suggest returns the candidate most similar to name. Earlier candidates win
// ties. It reports false when nothing is similar enough.
func Suggest(name string, candidates []string) (string, bool) {
	target := NewFingerprint(name)
	if target == nil {
		return "", false
	}
	best := ""
	bestScore := 0.0
	for _, candidate := range candidates {
		score := CosineSimilarity(target, NewFingerprint(candidate))
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	if bestScore < suggestThreshold {
		return "", false
	}
	return best, true
}
