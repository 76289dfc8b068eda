package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-labs/parley-cli/internal/adapters/driven/storage/memory"
	"github.com/parley-labs/parley-cli/internal/core/domain"
)

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, 600, settings.Index.MaxChunkSize)
	assert.Equal(t, 3, settings.Query.TopK)
	assert.Equal(t, 240, settings.Query.SnippetLength)
	assert.Equal(t, domain.StorageSQLite, settings.Storage.Backend)
	assert.True(t, settings.Transcript.Enabled)
	assert.Equal(t, []string{".txt", ".md", ".log"}, settings.Load.Extensions)
	assert.Equal(t, 2*time.Second, settings.Watch.Debounce)
}

func TestSettingsService_SaveAndGet(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	settings := domain.DefaultAppSettings()
	settings.Query.TopK = 5
	settings.Storage.Backend = domain.StorageMemory
	settings.Transcript.Enabled = false
	settings.Watch.Debounce = 5 * time.Second

	require.NoError(t, svc.Save(&settings))

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, got.Query.TopK)
	assert.Equal(t, domain.StorageMemory, got.Storage.Backend)
	assert.False(t, got.Transcript.Enabled)
	assert.Equal(t, 5*time.Second, got.Watch.Debounce)
}

func TestSettingsService_SaveRejectsInvalid(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	settings := domain.DefaultAppSettings()
	settings.Query.TopK = 0

	err := svc.Save(&settings)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_Set(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{
			name: "top_k", key: "query.top_k", value: "7",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, 7, s.Query.TopK)
			},
		},
		{
			name: "max_chunk_size", key: "index.max_chunk_size", value: "400",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, 400, s.Index.MaxChunkSize)
			},
		},
		{
			name: "backend", key: "storage.backend", value: "memory",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, domain.StorageMemory, s.Storage.Backend)
			},
		},
		{
			name: "transcript", key: "transcript.enabled", value: "false",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.False(t, s.Transcript.Enabled)
			},
		},
		{
			name: "extensions", key: "load.extensions", value: "txt, md, rst",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, []string{".txt", ".md", ".rst"}, s.Load.Extensions)
			},
		},
		{
			name: "debounce", key: "watch.debounce", value: "500ms",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, 500*time.Millisecond, s.Watch.Debounce)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, svc.Set(tt.key, tt.value))
			settings, err := svc.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_SetInvalid(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, svc.Set("query.top_k", "many"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set("watch.debounce", "soon"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set("no.such.key", "x"), domain.ErrInvalidInput)

	// Values that parse but fail validation are rejected too.
	assert.ErrorIs(t, svc.Set("query.top_k", "0"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set("storage.backend", "postgres"), domain.ErrInvalidInput)
}

func TestSettingsService_Reset(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, svc.Set("query.top_k", "9"))
	require.NoError(t, svc.Reset())

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, settings.Query.TopK)
}
