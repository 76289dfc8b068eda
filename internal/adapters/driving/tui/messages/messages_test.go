package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewChat, "chat"},
		{ViewFind, "find"},
		{ViewDocuments, "documents"},
		{ViewHelp, "help"},
		{ViewType(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.view.String())
	}
}

func TestViewChat_IsDefault(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewChat, v)
}
