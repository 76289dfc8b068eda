// Package tokenizer normalizes raw text into index terms.
//
// Both indexing and querying run through the same functions, which is
// what keeps their vector spaces comparable: a term extracted here at
// index time is byte-identical to the same term extracted at query time.
package tokenizer

import "strings"

// Tokenize lowercases text and splits it into terms: maximal runs of
// ASCII letters, digits, and underscores. Everything else separates
// terms and is discarded. The function is pure and deterministic.
func Tokenize(text string) []string {
	var terms []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			terms = append(terms, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			current.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			current.WriteRune(r + ('a' - 'A'))
		default:
			flush()
		}
	}
	flush()

	return terms
}

// Frequencies counts occurrences of each term.
func Frequencies(terms []string) map[string]int {
	freqs := make(map[string]int, len(terms))
	for _, term := range terms {
		freqs[term]++
	}
	return freqs
}
