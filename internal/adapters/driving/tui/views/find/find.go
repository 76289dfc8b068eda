// Package find provides the direct document search view.
package find

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/components/input"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/components/list"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/components/status"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/keymap"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/messages"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/styles"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
)

// View ranks a typed question against the loaded documents and shows
// the matches in a navigable list.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.PromptInput
	list      *list.AnswerList
	statusbar *status.Bar

	queryService driving.QueryService
	ctx          context.Context

	width      int
	height     int
	ready      bool
	focusInput bool
	err        error
}

// NewView creates a new find view.
func NewView(s *styles.Styles, km *keymap.KeyMap, queryService driving.QueryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:       s,
		keymap:       km,
		input:        input.NewPromptInput(s, "What are you looking for?"),
		list:         list.NewAnswerList(s),
		statusbar:    status.NewBar(s, km),
		queryService: queryService,
		ctx:          context.Background(),
		width:        80,
		height:       24,
		focusInput:   true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the find view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AnswersReceived:
		v.handleAnswers(msg)
		return v, nil
	}

	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	return v, inputCmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Enter in input mode submits the question.
	if key.Matches(msg, v.keymap.Submit) && v.focusInput {
		question := strings.TrimSpace(v.input.Value())
		if question == "" {
			return v, nil
		}
		v.statusbar.SetState(status.StateSearching)
		v.focusInput = false
		v.input.Blur()
		return v, v.performAsk(question)
	}

	// Input mode: all other keys go to the input.
	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Results mode: navigation plus starting a new question.
	switch {
	case key.Matches(msg, v.keymap.Up):
		v.list.MoveUp()
		return v, nil
	case key.Matches(msg, v.keymap.Down):
		v.list.MoveDown()
		return v, nil
	}

	if msg.String() == "n" {
		v.focusInput = true
		v.input.Reset()
		v.statusbar.Clear()
		return v, v.input.Focus()
	}

	return v, nil
}

// performAsk runs the ranked query with the configured default depth.
func (v *View) performAsk(question string) tea.Cmd {
	return func() tea.Msg {
		answers, err := v.queryService.Ask(v.ctx, question, 0)
		return messages.AnswersReceived{Question: question, Answers: answers, Err: err}
	}
}

// handleAnswers applies a completed query to the list and status bar.
func (v *View) handleAnswers(msg messages.AnswersReceived) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.list.SetAnswers(msg.Answers)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMatchCount(len(msg.Answers))
}

// View renders the find view.
func (v *View) View() string {
	if !v.ready {
		return v.styles.Muted.Render("Initialising...")
	}

	title := v.styles.Title.Render("Find in docs")
	newHint := ""
	if !v.focusInput {
		newHint = v.styles.Help.Render("n: new question")
	}

	sections := []string{
		title,
		v.input.View(),
		"",
		v.list.View(),
	}
	if newHint != "" {
		sections = append(sections, newHint)
	}
	sections = append(sections, v.statusbar.View())

	return strings.Join(sections, "\n")
}

// SetDimensions resizes the view and its components.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)

	listHeight := height - 8
	if listHeight < 4 {
		listHeight = 4
	}
	v.list.SetDimensions(width, listHeight)
}

// Matches returns the current answer list, for inspection.
func (v *View) Matches() *list.AnswerList {
	return v.list
}

// FocusedOnInput reports whether typing goes to the question input.
func (v *View) FocusedOnInput() bool {
	return v.focusInput
}

// Ready reports whether the view has received its dimensions.
func (v *View) Ready() bool {
	return v.ready
}

// Err returns the last query error, if any.
func (v *View) Err() error {
	return v.err
}
