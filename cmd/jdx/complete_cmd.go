package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eladbash/jdx/internal/logx"
	"github.com/eladbash/jdx/pkg/completion"
)

var completeCmd = &cobra.Command{
	Use:   "complete <file> <query> <cursor>",
	Short: "Decode a document and print ranked completion candidates for a partial query",
	Args:  cobra.ExactArgs(3),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root, err := decodeFile(args[0], cfg.Format)
	if err != nil {
		return err
	}

	cursor, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("cursor must be an integer byte offset: %w", err)
	}

	engine := completion.New(completion.WithMaxCandidates(cfg.MaxCandidates))
	candidates, ghost := engine.Complete(args[1], cursor, root)
	logx.L().Info("ranked completions", "query", args[1], "cursor", cursor, "candidates", len(candidates))

	for _, c := range candidates {
		fmt.Fprintf(os.Stdout, "%s\t%s\t%d\n", c.Text, c.Kind, c.Score)
	}
	if ghost != "" {
		fmt.Fprintln(os.Stdout, "ghost:", ghost)
	}
	return nil
}
