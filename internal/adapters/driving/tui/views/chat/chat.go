// Package chat provides the conversational view, the TUI's default.
package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/components/input"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/keymap"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/messages"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/styles"
	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
)

// line is one entry in the conversation history.
type line struct {
	speaker string
	text    string
}

// View renders the chat conversation with an always-focused prompt.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	input   *input.PromptInput
	history viewport.Model

	chatService driving.ChatService
	ctx         context.Context

	lines    []line
	thinking bool
	width    int
	height   int
	ready    bool
	err      error
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, km *keymap.KeyMap, chatService driving.ChatService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		input:       input.NewPromptInput(s, "Ask about your docs, or say 'help'"),
		history:     viewport.New(80, 18),
		chatService: chatService,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init opens the chat session and starts the cursor blink.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.startSession())
}

// startSession opens the transcript session and fetches the greeting.
func (v *View) startSession() tea.Cmd {
	return func() tea.Msg {
		greeting, err := v.chatService.StartSession(v.ctx)
		return messages.SessionStarted{Greeting: greeting, Err: err}
	}
}

// send dispatches one chat line to the service.
func (v *View) send(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := v.chatService.Handle(v.ctx, text)
		return messages.ReplyReceived{Reply: reply, Err: err}
	}
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, v.keymap.Submit) {
			return v, v.submit()
		}

	case messages.SessionStarted:
		if msg.Err != nil {
			v.err = msg.Err
			v.appendLine(domain.SpeakerBot, "Could not start the session: "+msg.Err.Error())
			return v, nil
		}
		v.appendLine(domain.SpeakerBot, msg.Greeting)
		return v, nil

	case messages.ReplyReceived:
		v.thinking = false
		if msg.Err != nil {
			v.err = msg.Err
			v.appendLine(domain.SpeakerBot, "Something went wrong: "+msg.Err.Error())
			return v, nil
		}
		v.appendLine(domain.SpeakerBot, msg.Reply.Text)
		if msg.Reply.Intent.EndsSession() {
			return v, func() tea.Msg { return messages.Quit{} }
		}
		return v, nil
	}

	var cmds []tea.Cmd

	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	var historyCmd tea.Cmd
	v.history, historyCmd = v.history.Update(msg)
	if historyCmd != nil {
		cmds = append(cmds, historyCmd)
	}

	return v, tea.Batch(cmds...)
}

// submit sends the current prompt line, if any.
func (v *View) submit() tea.Cmd {
	if v.thinking {
		return nil
	}

	text := strings.TrimSpace(v.input.Value())
	if text == "" {
		return nil
	}

	v.appendLine(domain.SpeakerUser, text)
	v.input.Reset()
	v.thinking = true
	v.refreshHistory()
	return v.send(text)
}

// appendLine records one exchange line and scrolls to it.
func (v *View) appendLine(speaker, text string) {
	v.lines = append(v.lines, line{speaker: speaker, text: text})
	v.refreshHistory()
}

// refreshHistory re-renders the viewport content and pins it to the bottom.
func (v *View) refreshHistory() {
	rendered := make([]string, 0, len(v.lines)+1)
	for _, l := range v.lines {
		label := v.styles.BotLabel.Render(l.speaker)
		if l.speaker == domain.SpeakerUser {
			label = v.styles.UserLabel.Render(l.speaker)
		}
		rendered = append(rendered, label+"  "+v.styles.Normal.Render(l.text))
	}
	if v.thinking {
		rendered = append(rendered, v.styles.Muted.Render("parley is thinking..."))
	}

	v.history.SetContent(strings.Join(rendered, "\n\n"))
	v.history.GotoBottom()
}

// View renders the chat view.
func (v *View) View() string {
	if !v.ready {
		return v.styles.Muted.Render("Initialising...")
	}

	title := v.styles.Title.Render("parley")
	hints := make([]string, 0, 5)
	for _, binding := range v.keymap.ShortHelp() {
		h := binding.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	hint := v.styles.Help.Render(strings.Join(hints, " | "))

	return strings.Join([]string{
		title,
		v.history.View(),
		v.input.View(),
		hint,
	}, "\n")
}

// SetDimensions resizes the view and its components.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	v.input.SetWidth(width)
	v.history.Width = width

	historyHeight := height - 6
	if historyHeight < 3 {
		historyHeight = 3
	}
	v.history.Height = historyHeight
	v.refreshHistory()
}

// Lines returns the conversation so far as "speaker: text" strings.
func (v *View) Lines() []string {
	out := make([]string, 0, len(v.lines))
	for _, l := range v.lines {
		out = append(out, l.speaker+": "+l.text)
	}
	return out
}

// Thinking reports whether a reply is pending.
func (v *View) Thinking() bool {
	return v.thinking
}

// Ready reports whether the view has received its dimensions.
func (v *View) Ready() bool {
	return v.ready
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}
