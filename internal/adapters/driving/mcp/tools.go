package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to rank the loaded documents against"`
	TopK     int    `json:"top_k,omitempty" jsonschema:"maximum number of answers to return (default from settings)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answers []AnswerOutput `json:"answers"`
	Count   int            `json:"count"`
}

// AnswerOutput represents a single ranked answer.
type AnswerOutput struct {
	DocumentID string  `json:"document_id"`
	Ordinal    int     `json:"ordinal"`
	Score      float64 `json:"score"`
	Snippet    string  `json:"snippet"`
}

// LoadDocumentInput is the input schema for the load_document tool.
type LoadDocumentInput struct {
	Path string `json:"path" jsonschema:"path of the file to load, absolute or relative to the docs directory"`
}

// LoadDocumentOutput is the output schema for the load_document tool.
type LoadDocumentOutput struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title,omitempty"`
	ChunkCount int    `json:"chunk_count"`
}

// ListDocumentsInput is the input schema for the list_documents tool.
type ListDocumentsInput struct{}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput represents one loaded document.
type DocumentOutput struct {
	ID         string `json:"id"`
	ChunkCount int    `json:"chunk_count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Rank the loaded documents against a question and return the best matching snippets",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_document",
		Description: "Load a text, markdown, or log file into the document index",
	}, s.handleLoadDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the currently loaded documents",
	}, s.handleListDocuments)
}

// handleAsk handles the ask tool invocation. A top_k of zero picks up
// the configured default.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answers, err := s.ports.Query.Ask(ctx, input.Question, input.TopK)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answers: make([]AnswerOutput, len(answers)),
		Count:   len(answers),
	}
	for i, a := range answers {
		output.Answers[i] = AnswerOutput{
			DocumentID: a.DocumentID,
			Ordinal:    a.Ordinal,
			Score:      a.Score,
			Snippet:    a.Snippet,
		}
	}

	return nil, output, nil
}

// handleLoadDocument handles the load_document tool invocation.
func (s *Server) handleLoadDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LoadDocumentInput,
) (*mcp.CallToolResult, LoadDocumentOutput, error) {
	report, err := s.ports.Index.LoadFile(ctx, input.Path)
	if err != nil {
		return nil, LoadDocumentOutput{}, err
	}

	return nil, LoadDocumentOutput{
		DocumentID: report.DocumentID,
		Title:      report.Title,
		ChunkCount: report.ChunkCount,
	}, nil
}

// handleListDocuments handles the list_documents tool invocation.
func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	docs, err := s.ports.Index.List(ctx)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentOutput, len(docs)),
		Count:     len(docs),
	}
	for i, d := range docs {
		output.Documents[i] = DocumentOutput{
			ID:         d.ID,
			ChunkCount: d.ChunkCount,
		}
	}

	return nil, output, nil
}
