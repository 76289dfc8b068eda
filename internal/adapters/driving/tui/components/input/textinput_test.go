package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromptInput(t *testing.T) {
	p := NewPromptInput(nil, "Say something")

	require.NotNil(t, p)
	assert.Empty(t, p.Value())
	assert.True(t, p.Focused())
}

func TestPromptInput_SetValueAndReset(t *testing.T) {
	p := NewPromptInput(nil, "")

	p.SetValue("load notes.md")
	assert.Equal(t, "load notes.md", p.Value())

	p.Reset()
	assert.Empty(t, p.Value())
}

func TestPromptInput_FocusBlur(t *testing.T) {
	p := NewPromptInput(nil, "")

	p.Blur()
	assert.False(t, p.Focused())

	p.Focus()
	assert.True(t, p.Focused())
}

func TestPromptInput_SetWidthClampsMinimum(t *testing.T) {
	p := NewPromptInput(nil, "")

	p.SetWidth(10)
	assert.Equal(t, 10, p.Width())

	p.SetWidth(120)
	assert.Equal(t, 120, p.Width())
}

func TestPromptInput_Init(t *testing.T) {
	p := NewPromptInput(nil, "")

	assert.NotNil(t, p.Init())
}
