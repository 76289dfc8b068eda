package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

var (
	askTop  int
	askJSON bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the loaded documents",
	Long: `Ranks every indexed chunk against the question using TF-IDF cosine
similarity and prints the best matching snippets with their scores.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTop, "top", "n", 0, "maximum number of answers (0 = configured default)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output answers as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return fmt.Errorf("query: %w", errNotConfigured)
	}

	answers, err := queryService.Ask(cmd.Context(), args[0], askTop)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAnswersJSON(cmd, answers)
	}
	return outputAnswersTable(cmd, args[0], answers)
}

func outputAnswersJSON(cmd *cobra.Command, answers []domain.Answer) error {
	data, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnswersTable(cmd *cobra.Command, question string, answers []domain.Answer) error {
	if len(answers) == 0 {
		cmd.Println("No matches in the loaded docs. Try 'parley load <file>' first or rephrase.")
		return nil
	}

	cmd.Printf("Top matches for: %s\n", question)
	for _, a := range answers {
		cmd.Printf("- [%s] (%.3f) %s\n", a.DocumentID, a.Score, a.Snippet)
	}
	return nil
}
