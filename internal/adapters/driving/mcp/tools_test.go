package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
)

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ranked answers", func(t *testing.T) {
		query := &mockQueryService{
			answers: []domain.Answer{
				{DocumentID: "notes.md", Ordinal: 2, Score: 0.91, Snippet: "the relevant passage"},
			},
		}
		server, err := NewServer(&Ports{Index: &mockIndexService{}, Query: query})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "what passage", TopK: 5})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Answers, 1)
		assert.Equal(t, "notes.md", output.Answers[0].DocumentID)
		assert.Equal(t, 2, output.Answers[0].Ordinal)
		assert.Equal(t, 0.91, output.Answers[0].Score)
		assert.Equal(t, "the relevant passage", output.Answers[0].Snippet)
		assert.Equal(t, 5, query.lastTopK)
	})

	t.Run("zero top_k passes through for the configured default", func(t *testing.T) {
		query := &mockQueryService{}
		server, err := NewServer(&Ports{Index: &mockIndexService{}, Query: query})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "anything"})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Zero(t, query.lastTopK)
	})

	t.Run("returns error on query failure", func(t *testing.T) {
		query := &mockQueryService{err: errors.New("engine offline")}
		server, err := NewServer(&Ports{Index: &mockIndexService{}, Query: query})
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "anything"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "engine offline")
	})
}

func TestServer_handleLoadDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("loads and reports the file", func(t *testing.T) {
		index := &mockIndexService{
			report: &driving.LoadReport{
				DocumentID: "guide.md",
				Title:      "Getting Started",
				ChunkCount: 4,
			},
		}
		server, err := NewServer(&Ports{Index: index, Query: &mockQueryService{}})
		require.NoError(t, err)

		_, output, err := server.handleLoadDocument(ctx, nil, LoadDocumentInput{Path: "guide.md"})

		require.NoError(t, err)
		assert.Equal(t, "guide.md", output.DocumentID)
		assert.Equal(t, "Getting Started", output.Title)
		assert.Equal(t, 4, output.ChunkCount)
		assert.Equal(t, []string{"guide.md"}, index.loadedPaths)
	})

	t.Run("returns error on load failure", func(t *testing.T) {
		index := &mockIndexService{err: domain.ErrUnsupportedType}
		server, err := NewServer(&Ports{Index: index, Query: &mockQueryService{}})
		require.NoError(t, err)

		_, _, err = server.handleLoadDocument(ctx, nil, LoadDocumentInput{Path: "movie.mp4"})

		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	})
}

func TestServer_handleListDocuments(t *testing.T) {
	ctx := context.Background()

	index := &mockIndexService{
		docs: []domain.DocumentInfo{
			{ID: "guide.md", ChunkCount: 4},
			{ID: "notes.txt", ChunkCount: 1},
		},
	}
	server, err := NewServer(&Ports{Index: index, Query: &mockQueryService{}})
	require.NoError(t, err)

	_, output, err := server.handleListDocuments(ctx, nil, ListDocumentsInput{})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	require.Len(t, output.Documents, 2)
	assert.Equal(t, "guide.md", output.Documents[0].ID)
	assert.Equal(t, 4, output.Documents[0].ChunkCount)
}
