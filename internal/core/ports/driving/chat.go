package driving

import (
	"context"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

// ChatService handles conversational turns: it classifies each line
// into an intent, dispatches to the matching service, and phrases the
// reply. It also records the exchange to the transcript when one is
// configured.
type ChatService interface {
	// StartSession begins a transcript session and returns the
	// greeting line to display.
	StartSession(ctx context.Context) (string, error)

	// Handle processes one chat line and returns the reply.
	// The reply's Intent reports what was matched; IntentBye means
	// the caller should end the session.
	Handle(ctx context.Context, line string) (*domain.ChatReply, error)

	// EndSession closes the transcript session.
	EndSession(ctx context.Context) error
}
