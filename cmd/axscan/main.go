package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/provide-io/axscan/internal/identity"
	"github.com/provide-io/axscan/internal/report"
	"github.com/provide-io/axscan/pkg/logging"
	"github.com/provide-io/axscan/pkg/scan"
)

const version = "0.1.0"

var (
	userSpec     string
	groupSpec    string
	allAccess    bool
	jsonOutput   bool
	showProgress bool
	logLevel     string
	rootCmd      *cobra.Command
	versionFlag  bool
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "axscan [flags] <path> [<path>...]",
		Short: "Map what an identity can reach on the filesystem",
		Long: `Walk one or more directory trees and report the objects a given
identity (uid plus group list) can abuse: setuid/setgid executables it can
run, objects it can write, and in extended mode objects it can merely read
or execute.`,
		Args: cobra.MinimumNArgs(1),
		Run:  runScan,
	}

	rootCmd.Flags().StringVarP(&userSpec, "user", "u", "", "User name or id to evaluate access as (default: invoking user)")
	rootCmd.Flags().StringVarP(&groupSpec, "groups", "g", "", "Comma-separated extra group names or ids")
	rootCmd.Flags().BoolVarP(&allAccess, "all", "a", false, "Also record readable and only-executable objects")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	rootCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a spinner while scanning")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion()
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("axscan %s\n", version)
	fmt.Printf("Built: %s\n", getBuildTimestamp())
}

func runScan(cmd *cobra.Command, args []string) {
	if versionFlag {
		printVersion()
		return
	}

	level := logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	logger := logging.NewLogger("axscan", level, os.Stderr)

	resolved, err := identity.Resolve(userSpec, groupSpec, logger)
	if err != nil {
		logger.Error("unable to resolve identity", "error", err)
		os.Exit(1)
	}

	cfg := scan.WalkerConfig{
		Logger:   logger.Named("walker"),
		Extended: allAccess,
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("scanning"),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionShowCount(),
		)
		cfg.OnDirectory = func(string) {
			_ = bar.Add(1)
		}
	}

	walker := scan.NewWalker(resolved.Identity, cfg)
	result := scan.NewResult()

	// A root that cannot be canonicalized is skipped, the remaining roots
	// still scan, and the process exits non-zero.
	rootFailed := false
	for _, root := range args {
		canonical, err := canonicalize(root)
		if err != nil {
			logger.Error("unable to resolve root path, skipping",
				"path", root, "error", err)
			rootFailed = true
			continue
		}
		logger.Info("scanning", "root", canonical)
		walker.Scan(canonical, result)
	}

	if bar != nil {
		_ = bar.Clear()
	}

	reporter := report.New(os.Stdout)
	if jsonOutput {
		if err := reporter.PrintJSON(resolved.Identity, resolved.Username, result, allAccess); err != nil {
			logger.Error("unable to emit report", "error", err)
			os.Exit(1)
		}
	} else {
		reporter.PrintIdentity(resolved.Identity, resolved.Username)
		reporter.PrintResult(result, allAccess)
	}

	if rootFailed {
		os.Exit(1)
	}
}

// canonicalize turns a caller-supplied root into an absolute path with
// symlinks and relative components resolved.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
