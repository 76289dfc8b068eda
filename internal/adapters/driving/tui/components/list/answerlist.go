// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui/styles"
	"github.com/parley-labs/parley-cli/internal/core/domain"
)

// AnswerList displays ranked answers in a navigable list.
type AnswerList struct {
	answers  []domain.Answer
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewAnswerList creates a new answer list component.
func NewAnswerList(s *styles.Styles) *AnswerList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &AnswerList{
		answers:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the answer list.
func (a *AnswerList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (a *AnswerList) Update(msg tea.Msg) (*AnswerList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			a.MoveUp()
		case tea.KeyDown:
			a.MoveDown()
		default:
		}
		switch msg.String() {
		case "k":
			a.MoveUp()
		case "j":
			a.MoveDown()
		}
	}
	return a, nil
}

// View renders the answer list.
func (a *AnswerList) View() string {
	if len(a.answers) == 0 {
		return a.styles.Muted.Render("No matches")
	}

	lines := make([]string, 0, len(a.answers)*2+2)

	header := a.styles.Subtitle.Render(fmt.Sprintf("Matches (%d)", len(a.answers)))
	lines = append(lines, header, "")

	// Each answer takes two lines, header takes two.
	visibleCount := (a.height - 2) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if a.selected >= visibleCount {
		start = a.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(a.answers) {
		end = len(a.answers)
	}

	for i := start; i < end; i++ {
		lines = append(lines, a.renderAnswer(i, &a.answers[i]))
	}

	return strings.Join(lines, "\n")
}

// renderAnswer formats a single answer with its snippet.
func (a *AnswerList) renderAnswer(index int, answer *domain.Answer) string {
	indicator := "  "
	if index == a.selected {
		indicator = "> "
	}

	title := fmt.Sprintf("%s [%s #%d]", indicator, answer.DocumentID, answer.Ordinal+1)
	score := fmt.Sprintf("%.3f", answer.Score)

	var titleLine string
	if index == a.selected {
		titleLine = a.styles.Selected.Render(title + "  " + score)
	} else {
		titleLine = a.styles.Normal.Render(title+"  ") + a.styles.Muted.Render(score)
	}

	snippet := answer.Snippet
	maxSnippetLen := a.width - 6
	if maxSnippetLen < 20 {
		maxSnippetLen = 20
	}
	if len(snippet) > maxSnippetLen {
		snippet = snippet[:maxSnippetLen-3] + "..."
	}

	return titleLine + "\n" + a.styles.Muted.Render("    "+snippet)
}

// SetAnswers replaces the list contents and resets the selection.
func (a *AnswerList) SetAnswers(answers []domain.Answer) {
	a.answers = answers
	a.selected = 0
}

// Answers returns the current answers.
func (a *AnswerList) Answers() []domain.Answer {
	return a.answers
}

// Selected returns the index of the selected answer.
func (a *AnswerList) Selected() int {
	return a.selected
}

// SelectedAnswer returns the currently selected answer, or nil if none.
func (a *AnswerList) SelectedAnswer() *domain.Answer {
	if len(a.answers) == 0 || a.selected < 0 || a.selected >= len(a.answers) {
		return nil
	}
	return &a.answers[a.selected]
}

// MoveUp moves selection up.
func (a *AnswerList) MoveUp() {
	if a.selected > 0 {
		a.selected--
	}
}

// MoveDown moves selection down.
func (a *AnswerList) MoveDown() {
	if a.selected < len(a.answers)-1 {
		a.selected++
	}
}

// SetDimensions sets the component dimensions.
func (a *AnswerList) SetDimensions(width, height int) {
	a.width = width
	a.height = height
}

// Count returns the number of answers.
func (a *AnswerList) Count() int {
	return len(a.answers)
}

// IsEmpty returns whether the list is empty.
func (a *AnswerList) IsEmpty() bool {
	return len(a.answers) == 0
}
