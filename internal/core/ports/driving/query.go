package driving

import (
	"context"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

// QueryService answers free-text questions against the loaded documents.
type QueryService interface {
	// Ask ranks the loaded chunks against the question and returns at
	// most topK answers with display-ready snippets. topK < 1 selects
	// the configured default. No matches yields an empty slice, not
	// an error.
	Ask(ctx context.Context, question string, topK int) ([]domain.Answer, error)
}
