package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage loaded documents",
	Long:  `List, unload, or clear the documents currently held in the index.`,
	RunE:  runDocsList,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded documents",
	RunE:  runDocsList,
}

var docsUnloadCmd = &cobra.Command{
	Use:   "unload [document-id]",
	Short: "Remove one document from the index",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsUnload,
}

var docsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all documents from the index",
	RunE:  runDocsClear,
}

func init() {
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsUnloadCmd)
	docsCmd.AddCommand(docsClearCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return fmt.Errorf("index: %w", errNotConfigured)
	}

	docs, err := indexService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}
	if len(docs) == 0 {
		cmd.Println("No docs loaded. Use: parley load <file>")
		return nil
	}

	cmd.Println("Docs:")
	for i, d := range docs {
		cmd.Printf("  %2d. %s  (%d chunks)\n", i+1, d.ID, d.ChunkCount)
	}
	return nil
}

func runDocsUnload(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return fmt.Errorf("index: %w", errNotConfigured)
	}

	if err := indexService.Unload(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("unloading %s: %w", args[0], err)
	}
	cmd.Printf("Unloaded %s\n", args[0])
	return nil
}

func runDocsClear(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return fmt.Errorf("index: %w", errNotConfigured)
	}

	if err := indexService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}
	cmd.Println("Cleared all docs.")
	return nil
}
