package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tugapse/gitdiff/internal/config"
	"github.com/tugapse/gitdiff/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [repo-path]",
	Short: "Re-run the diff report whenever the working tree changes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		repo := "."
		if len(args) > 0 {
			repo = args[0]
		}
		repoPath, err := filepath.Abs(repo)
		if err != nil {
			return err
		}

		if code := runPipeline(repoPath, cfg); code != ExitSuccess {
			exitCode = code
			return nil
		}

		w, err := watcher.New(repoPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: starting watcher: %v\n", err)
			exitCode = ExitError
			return nil
		}
		defer w.Close()
		w.Start()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		for {
			select {
			case <-w.Changes:
				runPipeline(repoPath, cfg)
			case err := <-w.Errors:
				fmt.Fprintf(os.Stderr, "Warning: watcher: %v\n", err)
			case <-sig:
				return nil
			}
		}
	},
}

func init() {
	addDiffFlags(watchCmd)
}
