package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyIndexMaxChunkSize  = "index.max_chunk_size"
	keyQueryTopK          = "query.top_k"
	keyQuerySnippetLength = "query.snippet_length"
	keyStorageBackend     = "storage.backend"
	keyStorageDataDir     = "storage.data_dir"
	keyTranscriptEnabled  = "transcript.enabled"
	keyTranscriptDir      = "transcript.dir"
	keyLoadExtensions     = "load.extensions"
	keyLoadMaxFileSize    = "load.max_file_size"
	keyWatchDebounce      = "watch.debounce"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, falling back to defaults
// for anything unset.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Index: domain.IndexSettings{
			MaxChunkSize: s.getInt(keyIndexMaxChunkSize, defaults.Index.MaxChunkSize),
		},
		Query: domain.QuerySettings{
			TopK:          s.getInt(keyQueryTopK, defaults.Query.TopK),
			SnippetLength: s.getInt(keyQuerySnippetLength, defaults.Query.SnippetLength),
		},
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			DataDir: s.configStore.GetString(keyStorageDataDir), // no default, empty means ~/.parley
		},
		Transcript: domain.TranscriptSettings{
			Enabled: s.getBool(keyTranscriptEnabled, defaults.Transcript.Enabled),
			Dir:     s.configStore.GetString(keyTranscriptDir),
		},
		Load: domain.LoadSettings{
			Extensions:  s.getStringSlice(keyLoadExtensions, defaults.Load.Extensions),
			MaxFileSize: int64(s.getInt(keyLoadMaxFileSize, int(defaults.Load.MaxFileSize))),
		},
		Watch: domain.WatchSettings{
			Debounce: s.getDuration(keyWatchDebounce, defaults.Watch.Debounce),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := map[string]any{
		keyIndexMaxChunkSize:  settings.Index.MaxChunkSize,
		keyQueryTopK:          settings.Query.TopK,
		keyQuerySnippetLength: settings.Query.SnippetLength,
		keyStorageBackend:     settings.Storage.Backend.String(),
		keyTranscriptEnabled:  settings.Transcript.Enabled,
		keyLoadExtensions:     settings.Load.Extensions,
		keyLoadMaxFileSize:    int(settings.Load.MaxFileSize),
		keyWatchDebounce:      settings.Watch.Debounce.String(),
	}
	if settings.Storage.DataDir != "" {
		values[keyStorageDataDir] = settings.Storage.DataDir
	}
	if settings.Transcript.Dir != "" {
		values[keyTranscriptDir] = settings.Transcript.Dir
	}

	for key, value := range values {
		if err := s.configStore.Set(key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// Set updates a single dot-notation key from its string representation.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyIndexMaxChunkSize:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer: %w", key, domain.ErrInvalidInput)
		}
		settings.Index.MaxChunkSize = n
	case keyQueryTopK:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer: %w", key, domain.ErrInvalidInput)
		}
		settings.Query.TopK = n
	case keyQuerySnippetLength:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer: %w", key, domain.ErrInvalidInput)
		}
		settings.Query.SnippetLength = n
	case keyStorageBackend:
		settings.Storage.Backend = domain.StorageBackend(value)
	case keyStorageDataDir:
		settings.Storage.DataDir = value
	case keyTranscriptEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false: %w", key, domain.ErrInvalidInput)
		}
		settings.Transcript.Enabled = b
	case keyTranscriptDir:
		settings.Transcript.Dir = value
	case keyLoadExtensions:
		settings.Load.Extensions = splitExtensions(value)
	case keyLoadMaxFileSize:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s expects an integer: %w", key, domain.ErrInvalidInput)
		}
		settings.Load.MaxFileSize = n
	case keyWatchDebounce:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s expects a duration like 2s: %w", key, domain.ErrInvalidInput)
		}
		settings.Watch.Debounce = d
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	return s.Save(settings)
}

// Reset restores and persists the default settings.
func (s *SettingsService) Reset() error {
	defaults := domain.DefaultAppSettings()
	return s.Save(&defaults)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	val := s.configStore.GetString(keyStorageBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.StorageBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

// splitExtensions parses a comma or space separated extension list.
func splitExtensions(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' '
	})
	exts := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if !strings.HasPrefix(f, ".") {
			f = "." + f
		}
		exts = append(exts, f)
	}
	return exts
}
