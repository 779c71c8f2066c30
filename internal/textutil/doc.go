// Package textutil provides text helpers for label handling.
//
// The primary use cases are:
//   - Normalizing label names so that visually identical names compare equal
//   - Title-casing clip names for display
//   - Suggesting the closest known label when a lookup misses
//
// Suggestions compare character trigram fingerprints with cosine similarity,
// which tolerates the short typos common in hand-written label names.
package textutil
