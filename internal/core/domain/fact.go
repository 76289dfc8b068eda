package domain

import (
	"strings"
	"time"
)

// Fact is a remembered key/value pair ("remember city = Lisbon").
type Fact struct {
	// Key is the normalized lookup key.
	Key string

	// Value is the remembered text.
	Value string

	// UpdatedAt is when the fact was last written.
	UpdatedAt time.Time
}

// NormalizeFactKey canonicalises a user-supplied fact key: trimmed,
// lowercased, inner whitespace collapsed to single spaces. Recall and
// forget use the same normalization so "Favourite  Colour" and
// "favourite colour" address the same fact.
func NormalizeFactKey(key string) string {
	return strings.Join(strings.Fields(strings.ToLower(key)), " ")
}
