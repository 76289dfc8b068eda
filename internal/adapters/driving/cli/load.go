package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
)

var loadExts []string

var loadCmd = &cobra.Command{
	Use:   "load [path...]",
	Short: "Load documents into the index",
	Long: `Loads files into the in-memory index. A directory argument loads
every supported file directly inside it; reloading a file replaces its
previous chunks.

Bare file names are resolved against the working directory, the
configured documents directory, and ./docs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringSliceVar(&loadExts, "ext", nil,
		"only load files with these extensions (default: configured set)")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return fmt.Errorf("index: %w", errNotConfigured)
	}

	var reports []driving.LoadReport
	for _, arg := range args {
		loaded, err := loadPath(cmd, arg)
		if err != nil {
			return err
		}
		reports = append(reports, loaded...)
	}

	if len(reports) == 0 {
		cmd.Println("Nothing loaded.")
		return nil
	}

	chunks := 0
	for _, r := range reports {
		cmd.Printf("Loaded %s (%d chunks)\n", r.DocumentID, r.ChunkCount)
		chunks += r.ChunkCount
	}
	cmd.Printf("Indexed %d files, %d chunks. Ask with: parley ask \"<question>\"\n",
		len(reports), chunks)
	return nil
}

// loadPath loads one argument, which may name a file or a directory.
func loadPath(cmd *cobra.Command, arg string) ([]driving.LoadReport, error) {
	info, err := os.Stat(arg)
	isDir := err == nil && info.IsDir()

	if isDir && len(loadExts) == 0 {
		reports, err := indexService.LoadFolder(cmd.Context(), arg)
		if err != nil {
			return nil, fmt.Errorf("loading folder %s: %w", arg, err)
		}
		return reports, nil
	}

	if isDir {
		// With --ext the folder walk happens here so only matching
		// files are ever read.
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading folder %s: %w", arg, err)
		}
		var reports []driving.LoadReport
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || strings.HasPrefix(name, ".") || !extWanted(name) {
				continue
			}
			report, err := indexService.LoadFile(cmd.Context(), filepath.Join(arg, name))
			if err != nil {
				return nil, fmt.Errorf("loading %s: %w", name, err)
			}
			reports = append(reports, *report)
		}
		return reports, nil
	}

	if !extWanted(arg) {
		cmd.Printf("Skipping %s (extension filtered)\n", arg)
		return nil, nil
	}
	report, err := indexService.LoadFile(cmd.Context(), arg)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", arg, err)
	}
	return []driving.LoadReport{*report}, nil
}

// extWanted applies the --ext filter to a file name.
func extWanted(path string) bool {
	if len(loadExts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range loadExts {
		want = strings.ToLower(want)
		if !strings.HasPrefix(want, ".") {
			want = "." + want
		}
		if ext == want {
			return true
		}
	}
	return false
}
