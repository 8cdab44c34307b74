package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.1.0"

// Exit codes.
const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitUsageError = 2
)

var rootCmd = &cobra.Command{
	Use:   "gitdiff [repo-path]",
	Short: "Show diffs for all changed files in a git repository",
	Long: "Gitdiff enumerates staged, unstaged, and untracked changes in a git working\n" +
		"tree and prints a unified diff per file, as human-readable text or as JSON\n" +
		"with each diff split into hunk blocks.",
	Args: cobra.MaximumNArgs(1),
	RunE: runDiff,
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print gitdiff version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "gitdiff version %s\n", version)
	},
}
