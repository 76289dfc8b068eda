package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

func sampleAnswers() []domain.Answer {
	return []domain.Answer{
		{DocumentID: "notes.md", Ordinal: 0, Score: 0.812, Snippet: "alpha beta gamma"},
		{DocumentID: "guide.txt", Ordinal: 2, Score: 0.455, Snippet: "delta epsilon"},
	}
}

func TestAnswerList_Empty(t *testing.T) {
	l := NewAnswerList(nil)

	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.SelectedAnswer())
	assert.Contains(t, l.View(), "No matches")
}

func TestAnswerList_SetAnswersResetsSelection(t *testing.T) {
	l := NewAnswerList(nil)
	l.SetAnswers(sampleAnswers())
	l.MoveDown()
	require.Equal(t, 1, l.Selected())

	l.SetAnswers(sampleAnswers())

	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, 2, l.Count())
}

func TestAnswerList_Navigation(t *testing.T) {
	l := NewAnswerList(nil)
	l.SetAnswers(sampleAnswers())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected(), "cannot move above the first answer")

	l.MoveDown()
	assert.Equal(t, 1, l.Selected())

	l.MoveDown()
	assert.Equal(t, 1, l.Selected(), "cannot move below the last answer")
}

func TestAnswerList_SelectedAnswer(t *testing.T) {
	l := NewAnswerList(nil)
	l.SetAnswers(sampleAnswers())
	l.MoveDown()

	got := l.SelectedAnswer()

	require.NotNil(t, got)
	assert.Equal(t, "guide.txt", got.DocumentID)
}

func TestAnswerList_View(t *testing.T) {
	l := NewAnswerList(nil)
	l.SetDimensions(100, 20)
	l.SetAnswers(sampleAnswers())

	out := l.View()

	assert.Contains(t, out, "Matches (2)")
	assert.Contains(t, out, "[notes.md #1]")
	assert.Contains(t, out, "alpha beta gamma")
	assert.Contains(t, out, "0.812")
}

func TestAnswerList_ViewTruncatesLongSnippets(t *testing.T) {
	l := NewAnswerList(nil)
	l.SetDimensions(40, 20)

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	l.SetAnswers([]domain.Answer{
		{DocumentID: "big.txt", Snippet: string(long)},
	})

	assert.Contains(t, l.View(), "...")
}
