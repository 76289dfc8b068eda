package cli

import (
	"bufio"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/parley-labs/parley-cli/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with parley interactively",
	Long: `Start an interactive chat session.

On a terminal this launches the full-screen UI; when input is piped it
falls back to a plain line-based loop. Type 'help' inside the session to
see what parley understands, and 'bye' to leave.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return fmt.Errorf("chat: %w", errNotConfigured)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return runChatTUI(cmd)
	}
	return runChatREPL(cmd)
}

func runChatTUI(cmd *cobra.Command) error {
	// Panic recovery keeps a TUI crash from eating the stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Chat:  chatService,
		Index: indexService,
		Query: queryService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// runChatREPL is the line-based fallback for piped input.
func runChatREPL(cmd *cobra.Command) error {
	ctx := cmd.Context()

	greeting, err := chatService.StartSession(ctx)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	defer func() {
		_ = chatService.EndSession(ctx)
	}()

	cmd.Println(greeting)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("> ")
		if !scanner.Scan() {
			break
		}

		reply, err := chatService.Handle(ctx, scanner.Text())
		if err != nil {
			return fmt.Errorf("chat turn failed: %w", err)
		}
		cmd.Println(reply.Text)

		if reply.Intent.EndsSession() {
			break
		}
	}
	return scanner.Err()
}
