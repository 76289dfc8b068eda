// Package status provides the status bar for the TUI.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/keymap"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/styles"
)

// State represents the current view state for display.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateResults   State = "results"
	StateError     State = "error"
)

// Bar displays view status on the left and keybinding hints on the right.
type Bar struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	state      State
	message    string
	matchCount int
	width      int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (b *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages. The bar is passive and is driven
// through its Set methods.
func (b *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	return b, nil
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (b *Bar) renderLeft() string {
	switch b.state {
	case StateSearching:
		return b.styles.Muted.Render("Searching...")
	case StateError:
		if b.message != "" {
			return b.styles.Error.Render("Error: " + b.message)
		}
		return b.styles.Error.Render("Error")
	case StateResults:
		if b.matchCount == 0 {
			return b.styles.Muted.Render("No matches")
		}
		return b.styles.Normal.Render(fmt.Sprintf("%d matches", b.matchCount))
	case StateReady:
	}
	return b.styles.Muted.Render("Type a question and press enter")
}

func (b *Bar) renderRight() string {
	bindings := b.keymap.ListHelp()

	hints := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetMessage sets a custom message shown in the error state.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetMatchCount sets the match count shown in the results state.
func (b *Bar) SetMatchCount(count int) {
	b.matchCount = count
}

// MatchCount returns the current match count.
func (b *Bar) MatchCount() int {
	return b.matchCount
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear resets the status bar to its default state.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.matchCount = 0
}
