package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

var factCmd = &cobra.Command{
	Use:   "fact",
	Short: "Manage remembered facts",
	Long:  `Store, recall, search, and delete key/value facts ("city = Lisbon").`,
}

var factSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Remember a fact",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFactSet,
}

var factGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Recall a fact",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFactGet,
}

var factSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search facts by key or value",
	Args:  cobra.ExactArgs(1),
	RunE:  runFactSearch,
}

var factForgetCmd = &cobra.Command{
	Use:   "forget [key]",
	Short: "Delete a fact",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFactForget,
}

var factListCmd = &cobra.Command{
	Use:   "list",
	Short: "List fact keys, most recently updated first",
	RunE:  runFactList,
}

func init() {
	factCmd.AddCommand(factSetCmd)
	factCmd.AddCommand(factGetCmd)
	factCmd.AddCommand(factSearchCmd)
	factCmd.AddCommand(factForgetCmd)
	factCmd.AddCommand(factListCmd)
	rootCmd.AddCommand(factCmd)
}

func runFactSet(cmd *cobra.Command, args []string) error {
	if factService == nil {
		return fmt.Errorf("facts: %w", errNotConfigured)
	}

	fact, err := factService.Remember(cmd.Context(), args[0], strings.Join(args[1:], " "))
	if err != nil {
		return fmt.Errorf("remembering fact: %w", err)
	}
	cmd.Printf("Got it. I'll remember %q = %q.\n", fact.Key, fact.Value)
	return nil
}

func runFactGet(cmd *cobra.Command, args []string) error {
	if factService == nil {
		return fmt.Errorf("facts: %w", errNotConfigured)
	}

	key := strings.Join(args, " ")
	fact, err := factService.Recall(cmd.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("Nothing saved for %q yet.\n", domain.NormalizeFactKey(key))
			return nil
		}
		return fmt.Errorf("recalling fact: %w", err)
	}
	cmd.Printf("%s = %s\n", fact.Key, fact.Value)
	return nil
}

func runFactSearch(cmd *cobra.Command, args []string) error {
	if factService == nil {
		return fmt.Errorf("facts: %w", errNotConfigured)
	}

	facts, err := factService.Search(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("searching facts: %w", err)
	}
	if len(facts) == 0 {
		cmd.Println("No matching facts.")
		return nil
	}
	for _, f := range facts {
		cmd.Printf("%s = %s\n", f.Key, f.Value)
	}
	return nil
}

func runFactForget(cmd *cobra.Command, args []string) error {
	if factService == nil {
		return fmt.Errorf("facts: %w", errNotConfigured)
	}

	key := strings.Join(args, " ")
	if err := factService.Forget(cmd.Context(), key); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("Nothing saved for %q yet.\n", domain.NormalizeFactKey(key))
			return nil
		}
		return fmt.Errorf("forgetting fact: %w", err)
	}
	cmd.Printf("Forgot %q.\n", domain.NormalizeFactKey(key))
	return nil
}

func runFactList(cmd *cobra.Command, _ []string) error {
	if factService == nil {
		return fmt.Errorf("facts: %w", errNotConfigured)
	}

	keys, err := factService.Keys(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing facts: %w", err)
	}
	if len(keys) == 0 {
		cmd.Println("No facts saved. Use: parley fact set <key> <value>")
		return nil
	}
	for _, k := range keys {
		cmd.Println(k)
	}
	return nil
}
