package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage the todo list",
	RunE:  runTodoList,
}

var todoAddCmd = &cobra.Command{
	Use:   "add [task]",
	Short: "Add a todo entry",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTodoAdd,
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List todo entries",
	RunE:  runTodoList,
}

var todoDoneCmd = &cobra.Command{
	Use:   "done [n]",
	Short: "Mark the n-th todo as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoDone,
}

var todoClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all todo entries",
	RunE:  runTodoClear,
}

func init() {
	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoClearCmd)
	rootCmd.AddCommand(todoCmd)
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	if todoService == nil {
		return fmt.Errorf("todos: %w", errNotConfigured)
	}

	todo, err := todoService.Add(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("adding todo: %w", err)
	}

	todos, err := todoService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing todos: %w", err)
	}
	cmd.Printf("Added to-do #%d: %s\n", len(todos), todo.Text)
	return nil
}

func runTodoList(cmd *cobra.Command, _ []string) error {
	if todoService == nil {
		return fmt.Errorf("todos: %w", errNotConfigured)
	}

	todos, err := todoService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing todos: %w", err)
	}
	if len(todos) == 0 {
		cmd.Println("No to-dos yet. Add one with: parley todo add <task>")
		return nil
	}

	cmd.Println("To-dos:")
	for i, t := range todos {
		mark := "[ ]"
		if t.Done {
			mark = "[x]"
		}
		cmd.Printf("  %2d. %s %s\n", i+1, mark, t.Text)
	}
	return nil
}

func runTodoDone(cmd *cobra.Command, args []string) error {
	if todoService == nil {
		return fmt.Errorf("todos: %w", errNotConfigured)
	}

	position, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("position must be a number: %w", domain.ErrInvalidInput)
	}

	todo, err := todoService.Done(cmd.Context(), position)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Println("No such todo.")
			return nil
		}
		return fmt.Errorf("completing todo: %w", err)
	}
	cmd.Printf("Marked to-do #%d as done: %s\n", position, todo.Text)
	return nil
}

func runTodoClear(cmd *cobra.Command, _ []string) error {
	if todoService == nil {
		return fmt.Errorf("todos: %w", errNotConfigured)
	}

	removed, err := todoService.Clear(cmd.Context())
	if err != nil {
		return fmt.Errorf("clearing todos: %w", err)
	}
	cmd.Printf("Cleared %d to-dos.\n", removed)
	return nil
}
