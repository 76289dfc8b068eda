// Package chunker splits document text into bounded-size retrievable
// units. Paragraphs are the preferred boundary; oversized paragraphs
// fall back to sentence boundaries, and oversized sentences are
// hard-wrapped so no chunk ever exceeds the configured maximum.
package chunker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxChunkSize is the default maximum chunk length in runes.
const DefaultMaxChunkSize = 600

// Chunker splits text into chunks no longer than a configured maximum.
type Chunker struct {
	maxSize int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithMaxChunkSize sets the maximum chunk length in runes.
func WithMaxChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.maxSize = size
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		maxSize: DefaultMaxChunkSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// MaxChunkSize returns the configured maximum chunk length in runes.
func (c *Chunker) MaxChunkSize() int {
	return c.maxSize
}

// Chunk splits text into ordered chunks. Whitespace-only input yields
// zero chunks. No content is dropped: every non-blank piece of the
// input appears in exactly one chunk, in input order.
func (c *Chunker) Chunk(text string) []string {
	paragraphs := splitParagraphs(text)

	chunks := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if utf8.RuneCountInString(paragraph) <= c.maxSize {
			chunks = append(chunks, paragraph)
			continue
		}
		chunks = append(chunks, c.packSentences(splitSentences(paragraph))...)
	}

	return chunks
}

// packSentences greedily joins sentences into chunks up to the size
// limit. A single sentence longer than the limit is hard-wrapped.
func (c *Chunker) packSentences(sentences []string) []string {
	var chunks []string
	var buf string

	flush := func() {
		if buf != "" {
			chunks = append(chunks, buf)
			buf = ""
		}
	}

	for _, sentence := range sentences {
		if utf8.RuneCountInString(sentence) > c.maxSize {
			flush()
			chunks = append(chunks, hardWrap(sentence, c.maxSize)...)
			continue
		}

		switch {
		case buf == "":
			buf = sentence
		case utf8.RuneCountInString(buf)+1+utf8.RuneCountInString(sentence) <= c.maxSize:
			buf = buf + " " + sentence
		default:
			flush()
			buf = sentence
		}
	}
	flush()

	return chunks
}

// splitParagraphs splits text on blank lines. Each paragraph is
// trimmed; blank paragraphs are dropped. Inner single newlines are
// preserved so a short multi-line paragraph stays one chunk.
func splitParagraphs(text string) []string {
	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		p := strings.TrimSpace(strings.Join(current, "\n"))
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, strings.TrimRight(line, "\r"))
	}
	flush()

	return paragraphs
}

// splitSentences splits a paragraph at sentence terminators (., !, ?)
// followed by whitespace or end of input.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if !isTerminator(r) {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	// Don't forget the trailing sentence.
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// hardWrap cuts a string into pieces of at most max runes.
func hardWrap(s string, max int) []string {
	runes := []rune(s)
	pieces := make([]string, 0, (len(runes)+max-1)/max)

	for start := 0; start < len(runes); start += max {
		end := start + max
		if end > len(runes) {
			end = len(runes)
		}
		piece := strings.TrimSpace(string(runes[start:end]))
		if piece != "" {
			pieces = append(pieces, piece)
		}
	}

	return pieces
}
