// Package cli wires the cobra command tree that drives parley from a
// terminal. Commands talk to the core through the driving ports; the
// concrete services are injected by main before Execute runs.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/parley-labs/parley-cli/internal/connectors/filesystem"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
	"github.com/parley-labs/parley-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// Services bundles everything the CLI commands need.
type Services struct {
	Index    driving.IndexService
	Query    driving.QueryService
	Facts    driving.FactService
	Todos    driving.TodoService
	Chat     driving.ChatService
	Settings driving.SettingsService

	// Watcher feeds the watch command. Optional.
	Watcher *filesystem.Connector
}

var (
	indexService    driving.IndexService
	queryService    driving.QueryService
	factService     driving.FactService
	todoService     driving.TodoService
	chatService     driving.ChatService
	settingsService driving.SettingsService
	watchConnector  *filesystem.Connector
)

// serviceFactory builds the services once the persistent flags are
// parsed, so --config-dir is honoured.
var serviceFactory func(configDir string) (*Services, error)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Local document Q&A assistant",
	Long: `Parley answers questions about your local documents.

Load .txt, .md, or .log files into an in-memory TF-IDF index and ask
free-text questions against them. Parley also remembers facts, keeps a
todo list, and chats over an interactive terminal UI or the Model
Context Protocol.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if serviceFactory == nil {
			return nil
		}
		services, err := serviceFactory(configDir)
		if err != nil {
			return err
		}
		SetServices(services)
		serviceFactory = nil
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.parley)")
}

// SetServiceFactory defers service construction until flags are parsed.
func SetServiceFactory(f func(configDir string) (*Services, error)) {
	serviceFactory = f
}

// SetServices injects the driving services the commands call.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	indexService = s.Index
	queryService = s.Query
	factService = s.Facts
	todoService = s.Todos
	chatService = s.Chat
	settingsService = s.Settings
	watchConnector = s.Watcher
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// errNotConfigured reports a command run before its service was injected.
var errNotConfigured = errors.New("service not configured")
