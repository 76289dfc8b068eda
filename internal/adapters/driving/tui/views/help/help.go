// Package help provides the static help view.
package help

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/keymap"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/styles"
)

// chatCommands lists what the assistant understands, shown alongside
// the keybindings.
var chatCommands = []string{
	"load <file>            index one file (.txt/.md/.log)",
	"load folder <path>     index every supported file in a folder",
	"ask <question>         rank the loaded docs against a question",
	"list docs / clear docs manage the loaded set",
	"remember X is Y        save a fact",
	"what is X / forget X   recall or delete a fact",
	"add <task>             add a to-do",
	"list todos / done N    manage to-dos",
	"time, date, joke       small talk",
	"bye                    end the session",
}

// View renders keybindings and chat commands.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	width  int
	height int
	ready  bool
}

// NewView creates a new help view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
	}
	return v, nil
}

// View renders the help view.
func (v *View) View() string {
	sections := []string{
		v.styles.Title.Render("Help"),
		"",
		v.styles.Subtitle.Render("Chat commands"),
	}
	for _, c := range chatCommands {
		sections = append(sections, v.styles.Normal.Render("  "+c))
	}

	sections = append(sections, "", v.styles.Subtitle.Render("Keys"))
	for _, group := range v.keymap.FullHelp() {
		parts := make([]string, 0, len(group))
		for _, binding := range group {
			h := binding.Help()
			parts = append(parts, fmt.Sprintf("%-10s %s", h.Key, h.Desc))
		}
		sections = append(sections, v.styles.Normal.Render("  "+strings.Join(parts, "    ")))
	}

	sections = append(sections, "", v.styles.Help.Render("esc: back to chat"))

	return strings.Join(sections, "\n")
}

// SetDimensions resizes the view.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Ready reports whether the view has received its dimensions.
func (v *View) Ready() bool {
	return v.ready
}
