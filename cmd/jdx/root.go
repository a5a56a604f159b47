// Command jdx is a one-shot, non-interactive CLI driver over the query
// engine: decode a document, then parse/evaluate,
// infer a schema, or rank completions against it, exactly the three
// operations an embedding TUI would call interactively.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eladbash/jdx/internal/config"
	"github.com/eladbash/jdx/internal/logx"
)

var (
	flagFormat        string
	flagMaxSamples    int
	flagMaxCandidates int
	flagCacheSize     int
	flagLogJSON       bool
)

var rootCmd = &cobra.Command{
	Use:           "jdx",
	Short:         "Query, inspect, and autocomplete structured documents",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func setupLogging() {
	handlerOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if flagLogJSON {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	logx.SetLogger(slog.New(handler))
}

// loadConfig layers built-in defaults, config file, JDX_* env vars, and
// flags already parsed onto rootCmd's flag set (internal/config.Load).
func loadConfig() (*config.Config, error) {
	return config.Load(rootCmd.PersistentFlags())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "document format: json|yaml|toml|csv|ndjson (default json)")
	rootCmd.PersistentFlags().IntVar(&flagMaxSamples, "max-samples", 0, "max array elements sampled when inferring a schema")
	rootCmd.PersistentFlags().IntVar(&flagMaxCandidates, "max-candidates", 0, "max completion candidates returned")
	rootCmd.PersistentFlags().IntVar(&flagCacheSize, "cache", 0, "query cache size, 0 disables caching")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "emit structured logs as JSON instead of text")

	rootCmd.AddCommand(queryCmd, schemaCmd, completeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jdx:", err)
		os.Exit(1)
	}
}
