package cli

import (
	"bytes"
	"testing"

	"github.com/parley-labs/parley-cli/internal/adapters/driven/storage/memory"
	"github.com/parley-labs/parley-cli/internal/connectors/filesystem"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
	"github.com/parley-labs/parley-cli/internal/core/services"
	"github.com/parley-labs/parley-cli/internal/index"
	"github.com/parley-labs/parley-cli/internal/normalisers/markdown"
	"github.com/parley-labs/parley-cli/internal/normalisers/plaintext"
)

// setupTestServices wires memory-backed services into the command tree
// and restores the previous wiring when the test ends.
func setupTestServices(t *testing.T) {
	t.Helper()

	old := &Services{
		Index:    indexService,
		Query:    queryService,
		Facts:    factService,
		Todos:    todoService,
		Chat:     chatService,
		Settings: settingsService,
		Watcher:  watchConnector,
	}
	t.Cleanup(func() { SetServices(old) })

	engine := index.New()
	settings := services.NewSettingsService(memory.NewConfigStore())
	indexSvc := services.NewIndexService(
		engine,
		filesystem.NewResolver(""),
		filesystem.New(),
		[]driven.Normaliser{plaintext.New(), markdown.New()},
	)
	querySvc := services.NewQueryService(engine, settings)
	factSvc := services.NewFactService(memory.NewFactStore())
	todoSvc := services.NewTodoService(memory.NewTodoStore())
	chatSvc := services.NewChatService(indexSvc, querySvc, factSvc, todoSvc)

	SetServices(&Services{
		Index:    indexSvc,
		Query:    querySvc,
		Facts:    factSvc,
		Todos:    todoSvc,
		Chat:     chatSvc,
		Settings: settings,
		Watcher:  filesystem.New(),
	})
}

// executeCommand runs the root command with args and captures output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
