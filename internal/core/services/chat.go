package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
	"github.com/parley-labs/parley-cli/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// greeting opens every chat session.
const greeting = "Hi! Ask me about your docs, or say 'help'."

// jokes is a fixed rotation; each joke request advances one step.
var jokes = []string{
	"Why do programmers prefer dark mode? Because light attracts bugs.",
	"There are 10 kinds of people: those who understand binary and those who don't.",
	"I told my computer I needed a break, and it said 'No problem, I'll go to sleep.'",
}

// thanksReplies are picked at random when the user says thanks.
var thanksReplies = []string{
	"Anytime!",
	"You got it.",
	"Happy to help.",
}

// intentRule pairs a line pattern with its handler. Rules are tried in
// order; the first match wins.
type intentRule struct {
	intent  domain.Intent
	pattern *regexp.Regexp
	handle  func(ctx context.Context, groups []string) (string, error)
}

// ChatService classifies chat lines into intents and dispatches them
// to the document, fact, and todo services.
type ChatService struct {
	index driving.IndexService
	query driving.QueryService
	facts driving.FactService
	todos driving.TodoService

	// transcript is nil when transcript writing is disabled.
	transcript driven.TranscriptWriter

	// now and pick are swappable for tests.
	now  func() time.Time
	pick func(n int) int

	rules   []intentRule
	jokeIdx int
}

// ChatOption configures a ChatService.
type ChatOption func(*ChatService)

// WithTranscript records every session turn through the given writer.
func WithTranscript(w driven.TranscriptWriter) ChatOption {
	return func(s *ChatService) {
		s.transcript = w
	}
}

// WithChatClock overrides the time source for time and date replies.
func WithChatClock(now func() time.Time) ChatOption {
	return func(s *ChatService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithChatPicker overrides the random picker used for canned replies.
func WithChatPicker(pick func(n int) int) ChatOption {
	return func(s *ChatService) {
		if pick != nil {
			s.pick = pick
		}
	}
}

// NewChatService creates a new chat service.
func NewChatService(
	index driving.IndexService,
	query driving.QueryService,
	facts driving.FactService,
	todos driving.TodoService,
	opts ...ChatOption,
) *ChatService {
	s := &ChatService{
		index: index,
		query: query,
		facts: facts,
		todos: todos,
		now:   time.Now,
		pick:  rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rules = s.buildRules()
	return s
}

// buildRules assembles the intent table. Document commands come first
// so "ask what is ..." routes to retrieval, not fact recall.
func (s *ChatService) buildRules() []intentRule {
	return []intentRule{
		{domain.IntentLoadFolder, regexp.MustCompile(`(?i)^load\s+folder\s+(.+)$`), s.handleLoadFolder},
		{domain.IntentLoadFile, regexp.MustCompile(`(?i)^load\s+(.+)$`), s.handleLoadFile},
		{domain.IntentAsk, regexp.MustCompile(`(?i)^ask\s+(.+)$`), s.handleAsk},
		{domain.IntentListDocs, regexp.MustCompile(`(?i)^(?:list|show)\s+docs$`), s.handleListDocs},
		{domain.IntentClearDocs, regexp.MustCompile(`(?i)^clear\s+docs$`), s.handleClearDocs},

		{domain.IntentRemember, regexp.MustCompile(`(?i)^remember\s+(?:that\s+)?([\w\s-]{1,60}?)\s+(?:is|=)\s+(.+)$`), s.handleRemember},
		{domain.IntentRecall, regexp.MustCompile(`(?i)^(?:what\s+is|what's)\s+([\w\s-]{1,60})\??$`), s.handleRecall},
		{domain.IntentRecall, regexp.MustCompile(`(?i)^recall\s+(.+)$`), s.handleRecall},
		{domain.IntentForget, regexp.MustCompile(`(?i)^forget\s+(.+)$`), s.handleForget},
		{domain.IntentListFacts, regexp.MustCompile(`(?i)^(?:list|show)\s+facts$`), s.handleListFacts},

		{domain.IntentListTodos, regexp.MustCompile(`(?i)^(?:list|show)\s+(?:todos?|tasks?)$`), s.handleListTodos},
		{domain.IntentDoneTodo, regexp.MustCompile(`(?i)^(?:done|complete)\s+(\d+)$`), s.handleDoneTodo},
		{domain.IntentClearTodos, regexp.MustCompile(`(?i)^clear\s+(?:todos?|tasks?)$`), s.handleClearTodos},
		{domain.IntentAddTodo, regexp.MustCompile(`(?i)^(?:add|todo)\s+(.+)$`), s.handleAddTodo},

		{domain.IntentGreet, regexp.MustCompile(`(?i)^(?:hi|hello|hey)\b.*$`), s.handleGreet},
		{domain.IntentThanks, regexp.MustCompile(`(?i)^(?:thanks|thank\s+you).*$`), s.handleThanks},
		{domain.IntentBye, regexp.MustCompile(`(?i)^(?:bye|exit|quit)$`), s.handleBye},
		{domain.IntentTime, regexp.MustCompile(`(?i)^(?:time|what\s+time\s+is\s+it)\??$`), s.handleTime},
		{domain.IntentDate, regexp.MustCompile(`(?i)^(?:date|what(?:'s|\s+is)\s+the\s+date)\??$`), s.handleDate},
		{domain.IntentEcho, regexp.MustCompile(`(?i)^echo\s+(.+)$`), s.handleEcho},
		{domain.IntentJoke, regexp.MustCompile(`(?i)^joke$`), s.handleJoke},
		{domain.IntentHelp, regexp.MustCompile(`(?i)^help$`), s.handleHelp},
	}
}

// StartSession begins a transcript session and returns the greeting.
func (s *ChatService) StartSession(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sessionID := uuid.NewString()
	logger.Debug("Chat session %s starting", sessionID)

	if s.transcript != nil {
		if err := s.transcript.Begin(sessionID); err != nil {
			logger.Warn("Transcript unavailable: %v", err)
			s.transcript = nil
		} else {
			s.record(domain.SpeakerBot, greeting)
		}
	}
	return greeting, nil
}

// Handle processes one chat line and returns the reply.
func (s *ChatService) Handle(ctx context.Context, line string) (*domain.ChatReply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(line)
	if text == "" {
		return &domain.ChatReply{Intent: domain.IntentEcho, Text: "Say something."}, nil
	}

	s.record(domain.SpeakerUser, text)

	reply := s.dispatch(ctx, text)
	s.record(domain.SpeakerBot, reply.Text)
	return reply, nil
}

// EndSession closes the transcript session.
func (s *ChatService) EndSession(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.transcript == nil {
		return nil
	}
	return s.transcript.Close()
}

// dispatch finds the first matching rule and runs its handler.
func (s *ChatService) dispatch(ctx context.Context, text string) *domain.ChatReply {
	for _, rule := range s.rules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		logger.Debug("Intent %s matched", rule.intent)

		reply, err := rule.handle(ctx, m[1:])
		if err != nil {
			return &domain.ChatReply{
				Intent: rule.intent,
				Text:   fmt.Sprintf("Oops, that blew up: %v", err),
			}
		}
		return &domain.ChatReply{Intent: rule.intent, Text: reply}
	}
	return &domain.ChatReply{Intent: domain.IntentEcho, Text: "You said: " + text}
}

// record appends one line to the transcript, if one is active.
func (s *ChatService) record(speaker, text string) {
	if s.transcript == nil {
		return
	}
	if err := s.transcript.Append(speaker, text); err != nil {
		logger.Warn("Transcript write failed: %v", err)
	}
}

// Document intents.

func (s *ChatService) handleLoadFile(ctx context.Context, groups []string) (string, error) {
	report, err := s.index.LoadFile(ctx, strings.Trim(groups[0], `"`))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnsupportedType) ||
			errors.Is(err, domain.ErrInvalidInput) {
			return "File not found or unsupported. Use .txt/.md/.log", nil
		}
		return "", err
	}
	return fmt.Sprintf("Loaded %s with %d chunks. Ask with: ask <question>",
		report.DocumentID, report.ChunkCount), nil
}

func (s *ChatService) handleLoadFolder(ctx context.Context, groups []string) (string, error) {
	reports, err := s.index.LoadFolder(ctx, strings.Trim(groups[0], `"`))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			return "Folder not found.", nil
		}
		return "", err
	}
	if len(reports) == 0 {
		return "No .txt/.md/.log files found in that folder.", nil
	}

	chunks := 0
	for _, r := range reports {
		chunks += r.ChunkCount
	}
	return fmt.Sprintf("Indexed %d files, %d chunks. Ask with: ask <question>",
		len(reports), chunks), nil
}

func (s *ChatService) handleAsk(ctx context.Context, groups []string) (string, error) {
	question := strings.TrimSpace(groups[0])
	answers, err := s.query.Ask(ctx, question, 0)
	if err != nil {
		return "", err
	}
	if len(answers) == 0 {
		return "No matches in the loaded docs. Try 'load <file>' first or rephrase.", nil
	}

	lines := []string{"Top matches for: " + question}
	for _, a := range answers {
		lines = append(lines, fmt.Sprintf("- [%s] (%.3f) %s", a.DocumentID, a.Score, a.Snippet))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *ChatService) handleListDocs(ctx context.Context, _ []string) (string, error) {
	docs, err := s.index.List(ctx)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "No docs loaded. Use: load <file> or load folder <path>", nil
	}

	lines := []string{"Docs:"}
	for i, d := range docs {
		lines = append(lines, fmt.Sprintf("  %2d. %s  (%d chunks)", i+1, d.ID, d.ChunkCount))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *ChatService) handleClearDocs(ctx context.Context, _ []string) (string, error) {
	if err := s.index.Clear(ctx); err != nil {
		return "", err
	}
	return "Cleared all docs.", nil
}

// Fact intents.

func (s *ChatService) handleRemember(ctx context.Context, groups []string) (string, error) {
	fact, err := s.facts.Remember(ctx, groups[0], groups[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Got it. I'll remember %q = %q.", fact.Key, fact.Value), nil
}

func (s *ChatService) handleRecall(ctx context.Context, groups []string) (string, error) {
	key := domain.NormalizeFactKey(groups[0])
	fact, err := s.facts.Recall(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Sprintf("I don't have anything saved for %q yet.", key), nil
		}
		return "", err
	}
	return fmt.Sprintf("You told me %q = %q.", fact.Key, fact.Value), nil
}

func (s *ChatService) handleForget(ctx context.Context, groups []string) (string, error) {
	key := domain.NormalizeFactKey(groups[0])
	if err := s.facts.Forget(ctx, key); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Sprintf("I don't have anything saved for %q yet.", key), nil
		}
		return "", err
	}
	return fmt.Sprintf("Forgot %q.", key), nil
}

func (s *ChatService) handleListFacts(ctx context.Context, _ []string) (string, error) {
	keys, err := s.facts.Keys(ctx)
	if err != nil {
		return "", err
	}
	if len(keys) == 0 {
		return "No facts saved. Use: remember X is Y", nil
	}

	lines := []string{"Facts:"}
	for _, k := range keys {
		lines = append(lines, "  - "+k)
	}
	return strings.Join(lines, "\n"), nil
}

// Todo intents.

func (s *ChatService) handleAddTodo(ctx context.Context, groups []string) (string, error) {
	todo, err := s.todos.Add(ctx, groups[0])
	if err != nil {
		return "", err
	}
	list, err := s.todos.List(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Added to-do #%d: %s", len(list), todo.Text), nil
}

func (s *ChatService) handleListTodos(ctx context.Context, _ []string) (string, error) {
	todos, err := s.todos.List(ctx)
	if err != nil {
		return "", err
	}
	if len(todos) == 0 {
		return "No to-dos yet. Add one with: add <task>", nil
	}

	lines := []string{"To-dos:"}
	for i, t := range todos {
		mark := "[ ]"
		if t.Done {
			mark = "[x]"
		}
		lines = append(lines, fmt.Sprintf("  %2d. %s %s", i+1, mark, t.Text))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *ChatService) handleDoneTodo(ctx context.Context, groups []string) (string, error) {
	position, err := strconv.Atoi(groups[0])
	if err != nil {
		return "No such todo.", nil
	}
	if _, err := s.todos.Done(ctx, position); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "No such todo.", nil
		}
		return "", err
	}
	return fmt.Sprintf("Marked to-do #%d as done.", position), nil
}

func (s *ChatService) handleClearTodos(ctx context.Context, _ []string) (string, error) {
	if _, err := s.todos.Clear(ctx); err != nil {
		return "", err
	}
	return "Cleared all to-dos.", nil
}

// Small talk and utilities.

func (s *ChatService) handleGreet(_ context.Context, _ []string) (string, error) {
	return greeting, nil
}

func (s *ChatService) handleThanks(_ context.Context, _ []string) (string, error) {
	return thanksReplies[s.pick(len(thanksReplies))], nil
}

func (s *ChatService) handleBye(_ context.Context, _ []string) (string, error) {
	return "Bye! (your facts and to-dos are saved in ~/.parley)", nil
}

func (s *ChatService) handleTime(_ context.Context, _ []string) (string, error) {
	return s.now().Format("15:04:05"), nil
}

func (s *ChatService) handleDate(_ context.Context, _ []string) (string, error) {
	return s.now().Format("2006-01-02"), nil
}

func (s *ChatService) handleEcho(_ context.Context, groups []string) (string, error) {
	return groups[0], nil
}

func (s *ChatService) handleJoke(_ context.Context, _ []string) (string, error) {
	joke := jokes[s.jokeIdx%len(jokes)]
	s.jokeIdx++
	return joke, nil
}

func (s *ChatService) handleHelp(_ context.Context, _ []string) (string, error) {
	return strings.Join([]string{
		"Commands:",
		"  load <file>            - add a .txt/.md/.log file to the index",
		"  load folder <path>     - add every supported file in a folder",
		"  list docs              - show loaded documents",
		"  clear docs             - drop the whole index",
		"  ask <question>         - search the loaded documents",
		"",
		"  remember X is Y        - save a fact",
		"  what's X?              - recall a fact",
		"  forget X               - drop a fact",
		"  list facts             - show saved fact keys",
		"  add <task>             - add a to-do",
		"  list todos             - show to-dos",
		"  done <n>               - mark a to-do done",
		"  clear todos            - remove all to-dos",
		"",
		"  time | date            - current time / date",
		"  echo <text>            - repeat back",
		"  joke                   - tell a joke",
		"  help                   - this menu",
		"  bye | exit | quit      - end the session",
	}, "\n"), nil
}
