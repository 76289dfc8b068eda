package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestSupportedExtensions(t *testing.T) {
	exts := New().SupportedExtensions()

	require.NotEmpty(t, exts)
	assert.Contains(t, exts, ".txt")
	assert.Contains(t, exts, ".log")
}

func TestNormalise_Success(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	result, err := normaliser.Normalise(ctx, "notes.txt", []byte("Shopping list\n\nmilk and eggs"))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Shopping list", result.Title)
	assert.Equal(t, "Shopping list\n\nmilk and eggs", result.Text)
}

func TestNormalise_NewlineNormalisation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "crlf",
			input: "line one\r\nline two",
			want:  "line one\nline two",
		},
		{
			name:  "bare cr",
			input: "line one\rline two",
			want:  "line one\nline two",
		},
		{
			name:  "mixed",
			input: "a\r\nb\rc\nd",
			want:  "a\nb\nc\nd",
		},
	}

	normaliser := New()
	ctx := context.Background()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := normaliser.Normalise(ctx, "file.txt", []byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.Text)
		})
	}
}

func TestNormalise_StripsControlCharacters(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	result, err := normaliser.Normalise(ctx, "file.txt", []byte("ab\x00c\x07d\tkeep\nnext"))
	require.NoError(t, err)
	assert.Equal(t, "abcd\tkeep\nnext", result.Text)
}

func TestNormalise_TitleFallsBackToFileName(t *testing.T) {
	tests := []struct {
		name      string
		fileName  string
		wantTitle string
	}{
		{
			name:      "simple",
			fileName:  "/path/to/document.txt",
			wantTitle: "document",
		},
		{
			name:      "underscores to spaces",
			fileName:  "meeting_notes_q3.txt",
			wantTitle: "meeting notes q3",
		},
		{
			name:      "dashes to spaces",
			fileName:  "server-setup.log",
			wantTitle: "server setup",
		},
	}

	normaliser := New()
	ctx := context.Background()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := normaliser.Normalise(ctx, tc.fileName, []byte("   \n\t\n"))
			require.NoError(t, err)
			assert.Equal(t, tc.wantTitle, result.Title)
		})
	}
}

func TestNormalise_EmptyContent(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	result, err := normaliser.Normalise(ctx, "empty.txt", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Text)
	assert.Equal(t, "empty", result.Title)
}

func TestNormalise_UnicodeContent(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	content := "こんにちは世界\nПривет мир\n🚀 rockets"
	result, err := normaliser.Normalise(ctx, "unicode.txt", []byte(content))
	require.NoError(t, err)
	assert.Equal(t, content, result.Text)
	assert.Equal(t, "こんにちは世界", result.Title)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)
}
