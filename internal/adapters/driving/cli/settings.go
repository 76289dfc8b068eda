package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change parley's settings.

Settings are stored as TOML in the config directory and addressed by
dot-notation keys, for example:

  parley settings set query.top_k 5
  parley settings set storage.backend memory
  parley settings set load.extensions ".txt,.md,.rst"`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	s, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	cmd.Println("Settings:")
	cmd.Printf("  index.max_chunk_size   %d\n", s.Index.MaxChunkSize)
	cmd.Printf("  query.top_k            %d\n", s.Query.TopK)
	cmd.Printf("  query.snippet_length   %d\n", s.Query.SnippetLength)
	cmd.Printf("  storage.backend        %s\n", s.Storage.Backend)
	if s.Storage.DataDir != "" {
		cmd.Printf("  storage.data_dir       %s\n", s.Storage.DataDir)
	}
	cmd.Printf("  transcript.enabled     %t\n", s.Transcript.Enabled)
	if s.Transcript.Dir != "" {
		cmd.Printf("  transcript.dir         %s\n", s.Transcript.Dir)
	}
	cmd.Printf("  load.extensions        %s\n", strings.Join(s.Load.Extensions, ", "))
	cmd.Printf("  load.max_file_size     %d\n", s.Load.MaxFileSize)
	cmd.Printf("  watch.debounce         %s\n", s.Watch.Debounce)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("setting %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("resetting settings: %w", err)
	}
	cmd.Println("Settings restored to defaults.")
	return nil
}
