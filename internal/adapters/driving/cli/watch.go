package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/parley-labs/parley-cli/internal/connectors/filesystem"
	"github.com/parley-labs/parley-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a folder and keep its documents indexed",
	Long: `Loads every supported file in the folder, then watches it for
created or modified files and reloads them as they change. Reloads are
debounced (watch.debounce, default 2s). Stop with ctrl-c.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return fmt.Errorf("index: %w", errNotConfigured)
	}
	if watchConnector == nil {
		return fmt.Errorf("watcher: %w", errNotConfigured)
	}
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	ctx := cmd.Context()
	dir := args[0]

	reports, err := indexService.LoadFolder(ctx, dir)
	if err != nil {
		return fmt.Errorf("initial load of %s: %w", dir, err)
	}
	chunks := 0
	for _, r := range reports {
		chunks += r.ChunkCount
	}
	cmd.Printf("Indexed %d files, %d chunks. Watching %s...\n", len(reports), chunks, dir)

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	events, err := watchConnector.Watch(ctx, dir)
	if err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	// One reload pass per debounce interval. Events arriving while
	// the interval runs down are collected and deduped by path, so a
	// burst of writes to one file reloads it once.
	limiter := rate.NewLimiter(rate.Every(settings.Watch.Debounce), 1)

	for event := range events {
		pending := collectPending(ctx, events, event, limiter.Reserve().Delay())
		if ctx.Err() != nil {
			return nil
		}

		paths := make([]string, 0, len(pending))
		for path := range pending {
			paths = append(paths, path)
		}
		sort.Strings(paths)

		for _, path := range paths {
			report, err := indexService.LoadFile(ctx, path)
			if err != nil {
				logger.Warn("Reload of %s failed: %v", pending[path].Name, err)
				continue
			}
			cmd.Printf("Reloaded %s (%d chunks)\n", report.DocumentID, report.ChunkCount)
		}
	}
	return nil
}

// collectPending gathers events that arrive within the wait window,
// keyed by path. Collection ends when the window elapses, the channel
// closes, or ctx is cancelled; whatever was gathered is returned.
func collectPending(ctx context.Context, events <-chan filesystem.Event, first filesystem.Event, wait time.Duration) map[string]filesystem.Event {
	pending := map[string]filesystem.Event{first.Path: first}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return pending
			}
			pending[ev.Path] = ev
		case <-timer.C:
			return pending
		case <-ctx.Done():
			return pending
		}
	}
}
