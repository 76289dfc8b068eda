package plaintext

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".txt", ".log"}
}

// Normalise converts raw bytes to indexable text. Newlines are
// normalised to \n and control characters other than newline and tab
// are dropped. The title is the first non-empty line, falling back to
// the file name.
func (n *Normaliser) Normalise(_ context.Context, name string, data []byte) (*driven.NormaliseResult, error) {
	text := normaliseNewlines(string(data))
	text = stripControl(text)

	title := firstLine(text)
	if title == "" {
		title = titleFromName(name)
	}

	return &driven.NormaliseResult{
		Title: title,
		Text:  text,
	}, nil
}

// normaliseNewlines converts CRLF and bare CR line endings to LF.
func normaliseNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// stripControl removes control characters that would pollute the index,
// keeping newlines and tabs.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// firstLine returns the first non-empty line, trimmed.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// titleFromName derives a human-readable title from a file name.
func titleFromName(name string) string {
	base := filepath.Base(name)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return base
}
