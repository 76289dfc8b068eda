package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
	"github.com/parley-labs/parley-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService answers free-text questions against the loaded documents.
type QueryService struct {
	engine   driven.DocumentIndex
	settings driving.SettingsService
}

// NewQueryService creates a new query service.
func NewQueryService(engine driven.DocumentIndex, settings driving.SettingsService) *QueryService {
	return &QueryService{
		engine:   engine,
		settings: settings,
	}
}

// Ask ranks the loaded chunks against the question and returns at most
// topK answers with display-ready snippets. topK < 1 selects the
// configured default.
func (s *QueryService) Ask(ctx context.Context, question string, topK int) ([]domain.Answer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return []domain.Answer{}, nil
	}

	cfg, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	if topK < 1 {
		topK = cfg.Query.TopK
	}

	logger.Section("Query")
	logger.Debug("Question: %q, topK: %d, corpus: %d chunks", question, topK, s.engine.Len())

	results, err := s.engine.Query(question, topK)
	if err != nil {
		return nil, err
	}

	answers := make([]domain.Answer, 0, len(results))
	for _, r := range results {
		answers = append(answers, domain.Answer{
			DocumentID: r.DocumentID,
			Ordinal:    r.Ordinal,
			Score:      r.Score,
			Snippet:    snippet(r.Text, cfg.Query.SnippetLength),
		})
	}
	return answers, nil
}

// snippet flattens chunk text to a single line and truncates it to at
// most max runes, cutting at a word boundary and appending an ellipsis.
func snippet(text string, max int) string {
	flat := strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(flat) <= max {
		return flat
	}

	runes := []rune(flat)
	cut := max - 1
	// Back up to the last space so the snippet does not end mid-word,
	// unless that would discard more than half of it.
	for i := cut; i > max/2; i-- {
		if runes[i] == ' ' {
			cut = i
			break
		}
	}
	return strings.TrimRight(string(runes[:cut]), " ") + "…"
}
