package main

import "strings"

// normalize uppercases, trims, and deduplicates raw word entries, preserving
// first-seen order. Entries containing anything outside A–Z after
// uppercasing are returned separately so the caller can warn about them.
func normalize(raw []string) (words, rejected []string) {
	seen := make(map[string]bool, len(raw))
	for _, entry := range raw {
		w := strings.ToUpper(strings.TrimSpace(entry))
		if w == "" || seen[w] {
			continue
		}
		if !alphabetic(w) {
			rejected = append(rejected, entry)
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words, rejected
}

func alphabetic(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
