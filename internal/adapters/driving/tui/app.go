package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/keymap"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/messages"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/styles"
	chatview "github.com/parley-labs/parley-cli/internal/adapters/driving/tui/views/chat"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/views/documents"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/views/find"
	helpview "github.com/parley-labs/parley-cli/internal/adapters/driving/tui/views/help"
)

// App is the root Bubbletea model. It owns the active view and routes
// messages to it.
type App struct {
	ports *Ports
	ctx   context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	chatView *chatview.View
	findView *find.View
	docsView *documents.View
	helpView *helpview.View

	currentView messages.ViewType
	width       int
	height      int
	ready       bool
	err         error
}

// NewApp creates the application model. The ports must carry a chat,
// index, and query service.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("%w: ports are nil", ErrInvalidPorts)
	}
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		chatView:    chatview.NewView(s, km, ports.Chat),
		findView:    find.NewView(s, km, ports.Query),
		docsView:    documents.NewView(s, km, ports.Index),
		helpView:    helpview.NewView(s, km),
		currentView: messages.ViewChat,
		width:       80,
		height:      24,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chatView.WithContext(ctx)
	a.findView.WithContext(ctx)
	a.docsView.WithContext(ctx)
	return a
}

// Init starts the chat session.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("parley"),
		a.chatView.Init(),
	)
}

// Update routes messages to the active view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Every view tracks its own dimensions.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.chatView, cmd = a.chatView.Update(msg)
		cmds = append(cmds, cmd)
		a.findView, cmd = a.findView.Update(msg)
		cmds = append(cmds, cmd)
		a.docsView, cmd = a.docsView.Update(msg)
		cmds = append(cmds, cmd)
		a.helpView, cmd = a.helpView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.Quit:
		a.endSession()
		return a, tea.Quit

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil
	}

	return a.forward(msg)
}

// handleKeyMsg applies global bindings before forwarding to the view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keymap.Quit) {
		a.endSession()
		return a, tea.Quit
	}

	if a.currentView == messages.ViewChat {
		switch {
		case key.Matches(msg, a.keymap.Find):
			a.currentView = messages.ViewFind
			return a, nil
		case key.Matches(msg, a.keymap.Docs):
			a.currentView = messages.ViewDocuments
			return a, a.docsView.Refresh()
		case key.Matches(msg, a.keymap.Help):
			a.currentView = messages.ViewHelp
			return a, nil
		}
	} else if key.Matches(msg, a.keymap.Back) {
		a.err = nil
		a.currentView = messages.ViewChat
		return a, nil
	}

	return a.forward(msg)
}

// forward delivers a message to the active view.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewFind:
		a.findView, cmd = a.findView.Update(msg)
	case messages.ViewDocuments:
		a.docsView, cmd = a.docsView.Update(msg)
	case messages.ViewHelp:
		a.helpView, cmd = a.helpView.Update(msg)
	}
	return a, cmd
}

// endSession closes the transcript session. Errors here only matter to
// the log, and the screen is about to be torn down.
func (a *App) endSession() {
	_ = a.ports.Chat.EndSession(a.ctx)
}

// View renders the active view.
func (a *App) View() string {
	if !a.ready {
		return a.styles.Muted.Render("Initialising...")
	}

	var content string
	switch a.currentView {
	case messages.ViewChat:
		content = a.chatView.View()
	case messages.ViewFind:
		content = a.findView.View()
	case messages.ViewDocuments:
		content = a.docsView.View()
	case messages.ViewHelp:
		content = a.helpView.View()
	}

	if a.err != nil {
		return a.styles.Error.Render("Error: "+a.err.Error()) + "\n" + content
	}
	return content
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready reports whether the first window size has arrived.
func (a *App) Ready() bool {
	return a.ready
}

// Err returns the last surfaced error, if any.
func (a *App) Err() error {
	return a.err
}
