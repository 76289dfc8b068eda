package markdown

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
	assert.Contains(t, exts, ".md")
	assert.Contains(t, exts, ".markdown")
}

func TestNormalise_StripsFormatting(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	input := `# Getting Started

Install the tool with **bold confidence** and _quiet care_.

## Usage

- load a file
- ask a question

[docs](https://example.com/docs) explain the rest.
`

	result, err := normaliser.Normalise(ctx, "readme.md", []byte(input))
	require.NoError(t, err)

	assert.Equal(t, "Getting Started", result.Title)
	assert.Contains(t, result.Text, "Install the tool with bold confidence and quiet care.")
	assert.Contains(t, result.Text, "load a file")
	assert.Contains(t, result.Text, "ask a question")
	assert.Contains(t, result.Text, "docs explain the rest.")
	assert.NotContains(t, result.Text, "**")
	assert.NotContains(t, result.Text, "## ")
	assert.NotContains(t, result.Text, "https://example.com/docs")
	assert.NotContains(t, result.Text, "[docs]")
}

func TestNormalise_BlocksSeparatedByBlankLines(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	input := "# Title\n\nFirst paragraph.\n\nSecond paragraph."
	result, err := normaliser.Normalise(ctx, "doc.md", []byte(input))
	require.NoError(t, err)

	assert.Equal(t, "Title\n\nFirst paragraph.\n\nSecond paragraph.", result.Text)
}

func TestNormalise_CodeBlockContentKept(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	input := "Some intro.\n\n```go\nfmt.Println(\"hello\")\n```\n\nClosing words."
	result, err := normaliser.Normalise(ctx, "snippet.md", []byte(input))
	require.NoError(t, err)

	assert.Contains(t, result.Text, `fmt.Println("hello")`)
	assert.NotContains(t, result.Text, "```")
}

func TestNormalise_SoftLineBreaksStayInParagraph(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	input := "line one\nline two"
	result, err := normaliser.Normalise(ctx, "doc.md", []byte(input))
	require.NoError(t, err)

	assert.Equal(t, "line one\nline two", result.Text)
}

func TestNormalise_TableCells(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	input := "| tool | purpose |\n| --- | --- |\n| parley | local search |\n"
	result, err := normaliser.Normalise(ctx, "table.md", []byte(input))
	require.NoError(t, err)

	assert.Contains(t, result.Text, "parley")
	assert.Contains(t, result.Text, "local search")
	assert.NotContains(t, result.Text, "|")
	assert.NotContains(t, result.Text, "---")
}

func TestNormalise_Title(t *testing.T) {
	tests := []struct {
		name      string
		fileName  string
		input     string
		wantTitle string
	}{
		{
			name:      "first h1 wins",
			fileName:  "doc.md",
			input:     "intro text\n\n# Real Title\n\n# Second Heading",
			wantTitle: "Real Title",
		},
		{
			name:      "setext heading",
			fileName:  "doc.md",
			input:     "Underlined Title\n====\n\nbody",
			wantTitle: "Underlined Title",
		},
		{
			name:      "no h1 falls back to file name",
			fileName:  "release_notes.md",
			input:     "## Only a subheading\n\nbody",
			wantTitle: "release notes",
		},
		{
			name:      "empty document",
			fileName:  "weekly-review.md",
			input:     "",
			wantTitle: "weekly review",
		},
	}

	normaliser := New()
	ctx := context.Background()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := normaliser.Normalise(ctx, tc.fileName, []byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.wantTitle, result.Title)
		})
	}
}

func TestNormalise_CRLFInput(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	result, err := normaliser.Normalise(ctx, "doc.md", []byte("# Title\r\n\r\nWindows paragraph.\r\n"))
	require.NoError(t, err)

	assert.Equal(t, "Title", result.Title)
	assert.Contains(t, result.Text, "Windows paragraph.")
	assert.NotContains(t, result.Text, "\r")
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)
}
