package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/messages"
)

func newTestApp(t *testing.T) (*App, *mockChatService) {
	t.Helper()

	ports := testPorts()
	chat := ports.Chat.(*mockChatService)

	app, err := NewApp(ports)
	require.NoError(t, err)
	return app, chat
}

// resize delivers the first window size so views render for real.
func resize(app *App) tea.Model {
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return model
}

func TestNewApp_NilPorts(t *testing.T) {
	app, err := NewApp(nil)

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrInvalidPorts)
}

func TestNewApp_MissingChatService(t *testing.T) {
	ports := testPorts()
	ports.Chat = nil

	_, err := NewApp(ports)

	assert.ErrorIs(t, err, ErrMissingChatService)
}

func TestNewApp_StartsInChatView(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, messages.ViewChat, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestApp_WindowSizeSetsReady(t *testing.T) {
	app, _ := newTestApp(t)

	resize(app)

	assert.True(t, app.Ready())
}

func TestApp_SwitchesViews(t *testing.T) {
	app, _ := newTestApp(t)
	resize(app)

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	assert.Equal(t, messages.ViewFind, app.CurrentView())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewChat, app.CurrentView())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Equal(t, messages.ViewDocuments, app.CurrentView())
	assert.NotNil(t, cmd, "switching to documents should trigger a refresh")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
}

func TestApp_QuitKeyEndsSession(t *testing.T) {
	app, chat := newTestApp(t)
	resize(app)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, chat.ended)
}

func TestApp_QuitMessageEndsSession(t *testing.T) {
	app, chat := newTestApp(t)
	resize(app)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, chat.ended)
}

func TestApp_SurfacesErrors(t *testing.T) {
	app, _ := newTestApp(t)
	resize(app)

	app.Update(messages.ErrorOccurred{Err: errors.New("disk on fire")})

	require.Error(t, app.Err())
	assert.Contains(t, app.View(), "disk on fire")
}

func TestApp_BackClearsError(t *testing.T) {
	app, _ := newTestApp(t)
	resize(app)

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.NoError(t, app.Err())
	assert.Equal(t, messages.ViewChat, app.CurrentView())
}

func TestApp_InitReturnsCommand(t *testing.T) {
	app, _ := newTestApp(t)

	assert.NotNil(t, app.Init())
}
