// Package documents provides the loaded documents view.
package documents

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/keymap"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/messages"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/styles"
	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
)

// View lists the loaded documents and lets the user unload them.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	indexService driving.IndexService
	ctx          context.Context

	docs     []domain.DocumentInfo
	selected int
	width    int
	height   int
	ready    bool
	err      error
}

// NewView creates a new documents view.
func NewView(s *styles.Styles, km *keymap.KeyMap, indexService driving.IndexService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:       s,
		keymap:       km,
		indexService: indexService,
		ctx:          context.Background(),
		width:        80,
		height:       24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init triggers the first refresh.
func (v *View) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh reloads the document list from the index.
func (v *View) Refresh() tea.Cmd {
	return func() tea.Msg {
		docs, err := v.indexService.List(v.ctx)
		return messages.DocumentsLoaded{Documents: docs, Err: err}
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DocumentsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.docs = msg.Documents
		if v.selected >= len(v.docs) {
			v.selected = len(v.docs) - 1
		}
		if v.selected < 0 {
			v.selected = 0
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes navigation and unload keys.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
		return v, nil
	case key.Matches(msg, v.keymap.Down):
		if v.selected < len(v.docs)-1 {
			v.selected++
		}
		return v, nil
	}

	switch msg.String() {
	case "r":
		return v, v.Refresh()
	case "x":
		return v, v.unloadSelected()
	}

	return v, nil
}

// unloadSelected removes the selected document and reloads the list.
func (v *View) unloadSelected() tea.Cmd {
	if len(v.docs) == 0 {
		return nil
	}
	id := v.docs[v.selected].ID

	return func() tea.Msg {
		if err := v.indexService.Unload(v.ctx, id); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		docs, err := v.indexService.List(v.ctx)
		return messages.DocumentsLoaded{Documents: docs, Err: err}
	}
}

// View renders the documents view.
func (v *View) View() string {
	if !v.ready {
		return v.styles.Muted.Render("Initialising...")
	}

	title := v.styles.Title.Render(fmt.Sprintf("Loaded documents (%d)", len(v.docs)))
	hint := v.styles.Help.Render("↑/↓: move | x: unload | r: refresh | esc: back to chat")

	if v.err != nil {
		return strings.Join([]string{
			title,
			"",
			v.styles.Error.Render("Error: " + v.err.Error()),
			"",
			hint,
		}, "\n")
	}

	if len(v.docs) == 0 {
		return strings.Join([]string{
			title,
			"",
			v.styles.Muted.Render("No docs loaded. Load files with: parley load <path>"),
			"",
			hint,
		}, "\n")
	}

	rows := make([]string, 0, len(v.docs)+4)
	rows = append(rows, title, "")
	for i, doc := range v.docs {
		row := fmt.Sprintf("  %2d. %s  (%d chunks)", i+1, doc.ID, doc.ChunkCount)
		if i == v.selected {
			rows = append(rows, v.styles.Selected.Render(">"+row[1:]))
		} else {
			rows = append(rows, v.styles.Normal.Render(row))
		}
	}
	rows = append(rows, "", hint)

	return strings.Join(rows, "\n")
}

// SetDimensions resizes the view.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Documents returns the currently listed documents.
func (v *View) Documents() []domain.DocumentInfo {
	return v.docs
}

// Selected returns the selected index.
func (v *View) Selected() int {
	return v.selected
}

// Ready reports whether the view has received its dimensions.
func (v *View) Ready() bool {
	return v.ready
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}
