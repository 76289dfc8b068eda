package markdown

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Markdown documents. It parses the source with
// goldmark and extracts the plain text, so formatting markers never
// reach the index.
type Normaliser struct {
	md goldmark.Markdown
}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

// Normalise parses the markdown and walks the AST, collecting text
// content block by block. Blocks are separated by blank lines so the
// document's structure survives into chunking. The title is the first
// level-one heading, falling back to the file name.
func (n *Normaliser) Normalise(_ context.Context, name string, data []byte) (*driven.NormaliseResult, error) {
	source := []byte(normaliseNewlines(string(data)))
	root := n.md.Parser().Parse(gmtext.NewReader(source))

	ex := &extractor{src: source}
	if err := ast.Walk(root, ex.walk); err != nil {
		return nil, fmt.Errorf("walking markdown ast: %w", err)
	}

	title := ex.title
	if title == "" {
		title = titleFromName(name)
	}

	return &driven.NormaliseResult{
		Title: title,
		Text:  strings.TrimSpace(ex.buf.String()),
	}, nil
}

// extractor accumulates plain text while walking the parsed tree.
type extractor struct {
	src      []byte
	buf      strings.Builder
	title    string
	sawTitle bool

	// inTitle marks that buf content from titleMark onward belongs to
	// the first level-one heading.
	inTitle   bool
	titleMark int
}

func (e *extractor) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		if entering {
			if node.Level == 1 && !e.sawTitle {
				e.titleMark = e.buf.Len()
				e.inTitle = true
			}
		} else {
			if e.inTitle {
				e.title = strings.TrimSpace(e.buf.String()[e.titleMark:])
				e.inTitle = false
				e.sawTitle = true
			}
			e.breakBlock()
		}
	case *ast.Paragraph, *ast.TextBlock:
		if !entering {
			e.breakBlock()
		}
	case *ast.FencedCodeBlock:
		if entering {
			e.writeLines(node.Lines())
		} else {
			e.breakBlock()
		}
	case *ast.CodeBlock:
		if entering {
			e.writeLines(node.Lines())
		} else {
			e.breakBlock()
		}
	case *east.TableCell:
		if !entering {
			e.breakBlock()
		}
	case *ast.Text:
		if entering {
			e.buf.Write(node.Segment.Value(e.src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				e.buf.WriteByte('\n')
			}
		}
	case *ast.String:
		if entering {
			e.buf.Write(node.Value)
		}
	}
	return ast.WalkContinue, nil
}

// breakBlock terminates the current block with a blank line.
func (e *extractor) breakBlock() {
	s := e.buf.String()
	if s == "" || strings.HasSuffix(s, "\n\n") {
		return
	}
	if strings.HasSuffix(s, "\n") {
		e.buf.WriteByte('\n')
		return
	}
	e.buf.WriteString("\n\n")
}

// writeLines copies raw block lines (code block content) into the buffer.
func (e *extractor) writeLines(lines *gmtext.Segments) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		e.buf.Write(seg.Value(e.src))
	}
}

// normaliseNewlines converts CRLF and bare CR line endings to LF.
func normaliseNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
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
