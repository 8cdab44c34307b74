package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tugapse/gitdiff/internal/collect"
	"github.com/tugapse/gitdiff/internal/config"
	"github.com/tugapse/gitdiff/internal/diag"
	"github.com/tugapse/gitdiff/internal/gitcmd"
	"github.com/tugapse/gitdiff/internal/output"
	"github.com/tugapse/gitdiff/internal/status"
)

// Shared diff flags
var (
	flagVerbose        bool
	flagJSON           bool
	flagExtensions     []string
	flagIgnoreBinaries bool
	flagFileName       string
	flagFormat         string
	flagColor          bool
	flagOut            string
)

func addDiffFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output for detailed logging")
	cmd.Flags().BoolVarP(&flagJSON, "json", "j", false, "Output the diffs in JSON format")
	cmd.Flags().StringSliceVarP(&flagExtensions, "extensions", "e", nil, "Filter diffs by file extension (e.g. .py,.js); repeatable")
	cmd.Flags().BoolVarP(&flagIgnoreBinaries, "ignore-binaries", "b", false, "Do not display diffs for binary files")
	cmd.Flags().StringVarP(&flagFileName, "file", "f", "", "Only show diffs for files with this exact name")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	cmd.Flags().BoolVar(&flagColor, "color", false, "Syntax-highlight text output")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagJSON {
		m["format"] = "json"
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagColor {
		m["color"] = "true"
	}
	if len(flagExtensions) > 0 {
		m["extensions"] = strings.Join(flagExtensions, ",")
	}
	if flagIgnoreBinaries {
		m["ignoreBinaries"] = "true"
	}
	return m
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	repo := "."
	if len(args) > 0 {
		repo = args[0]
	}
	if code := runPipeline(repo, cfg); code != ExitSuccess {
		exitCode = code
	}
	return nil
}

// runPipeline gathers and renders diffs for repo, returning a process exit
// code. Per-file fetch failures are absorbed with a warning; environment
// errors (missing path, not a repository, status failure) are fatal.
func runPipeline(repo string, cfg config.Config) int {
	log := diag.New(flagVerbose, cfg.Format == "json")

	repoPath, err := filepath.Abs(repo)
	if err != nil {
		log.Errorf("resolving repository path %q: %v", repo, err)
		return ExitError
	}
	if _, err := os.Stat(repoPath); err != nil {
		log.Errorf("repository path %q not found", repoPath)
		return ExitError
	}
	if !gitcmd.IsRepo(repoPath) {
		log.Errorf("%q is not a git repository (missing .git)", repoPath)
		return ExitError
	}

	log.Infof("--- Analyzing differences in repository: %s ---", repoPath)

	run := gitcmd.New(repoPath, log)
	report, ok := run.Run("status", "--porcelain")
	if !ok {
		log.Errorf("failed to get git status")
		return ExitError
	}

	changes := status.Parse(report, log)
	collector := collect.New(run, log, collect.Options{
		Extensions:   cfg.Extensions,
		FileName:     flagFileName,
		SkipBinaries: cfg.IgnoreBinaries,
	})
	diffs := collector.Collect(changes)

	if err := output.WriteDiffs(diffs, cfg.Format, flagOut, cfg.Color); err != nil {
		log.Errorf("writing output: %v", err)
		return ExitError
	}

	log.Infof("--- Diff analysis completed for %s ---", repoPath)
	return ExitSuccess
}

func init() {
	addDiffFlags(rootCmd)
}
