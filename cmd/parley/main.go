// Command parley is a local document Q&A assistant: it indexes plain
// text files with TF-IDF and answers ranked free-text questions over
// them, alongside a small persistent memory for facts and to-dos.
package main

import (
	"fmt"
	"os"

	"github.com/parley-labs/parley-cli/internal/adapters/driven/config/file"
	"github.com/parley-labs/parley-cli/internal/adapters/driven/storage/memory"
	"github.com/parley-labs/parley-cli/internal/adapters/driven/storage/sqlite"
	"github.com/parley-labs/parley-cli/internal/adapters/driven/transcript"
	"github.com/parley-labs/parley-cli/internal/adapters/driving/cli"
	"github.com/parley-labs/parley-cli/internal/chunker"
	"github.com/parley-labs/parley-cli/internal/connectors/filesystem"
	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
	"github.com/parley-labs/parley-cli/internal/core/services"
	"github.com/parley-labs/parley-cli/internal/index"
	"github.com/parley-labs/parley-cli/internal/logger"
	"github.com/parley-labs/parley-cli/internal/normalisers/markdown"
	"github.com/parley-labs/parley-cli/internal/normalisers/plaintext"
)

func main() {
	// Services are built after flag parsing so --config-dir is honoured.
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services.
func buildServices(configDir string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config store: %w", err)
	}

	settings := services.NewSettingsService(configStore)
	cfg, err := settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	engine := index.New(
		index.WithChunker(chunker.New(chunker.WithMaxChunkSize(cfg.Index.MaxChunkSize))),
	)

	factStore, todoStore, err := openStores(cfg)
	if err != nil {
		return nil, err
	}

	connector := filesystem.New(
		filesystem.WithExtensions(cfg.Load.Extensions),
		filesystem.WithMaxFileSize(cfg.Load.MaxFileSize),
	)

	indexSvc := services.NewIndexService(
		engine,
		filesystem.NewResolver(""),
		connector,
		[]driven.Normaliser{plaintext.New(), markdown.New()},
	)
	querySvc := services.NewQueryService(engine, settings)
	factSvc := services.NewFactService(factStore)
	todoSvc := services.NewTodoService(todoStore)

	var chatOpts []services.ChatOption
	if cfg.Transcript.Enabled {
		writer, err := transcript.NewWriter(cfg.Transcript.Dir)
		if err != nil {
			logger.Warn("Transcripts disabled: %v", err)
		} else {
			chatOpts = append(chatOpts, services.WithTranscript(writer))
		}
	}
	chatSvc := services.NewChatService(indexSvc, querySvc, factSvc, todoSvc, chatOpts...)

	return &cli.Services{
		Index:    indexSvc,
		Query:    querySvc,
		Facts:    factSvc,
		Todos:    todoSvc,
		Chat:     chatSvc,
		Settings: settings,
		Watcher:  connector,
	}, nil
}

// openStores selects the fact and todo persistence backend.
func openStores(cfg *domain.AppSettings) (driven.FactStore, driven.TodoStore, error) {
	if cfg.Storage.Backend == domain.StorageMemory {
		return memory.NewFactStore(), memory.NewTodoStore(), nil
	}

	store, err := sqlite.NewStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
	}
	return store.FactStore(), store.TodoStore(), nil
}
