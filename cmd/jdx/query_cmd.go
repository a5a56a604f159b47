package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eladbash/jdx/internal/logx"
	"github.com/eladbash/jdx/pkg/cache"
	"github.com/eladbash/jdx/pkg/codec"
	"github.com/eladbash/jdx/pkg/evaluator"
)

var queryCmd = &cobra.Command{
	Use:   "query <file> <query>",
	Short: "Decode a document, evaluate a query against it, and print the result",
	Args:  cobra.ExactArgs(2),
	RunE:  runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root, err := decodeFile(args[0], cfg.Format)
	if err != nil {
		return err
	}
	logx.L().Info("decoded document", "file", args[0])

	q, parseErr := cache.New(cfg.CacheSize).Parse(args[1])
	if parseErr != nil {
		return fmt.Errorf("parsing query: %s (at byte %d)", parseErr.Message, parseErr.Offset)
	}

	eval := evaluator.New()
	result, evalErr := eval.Evaluate(context.Background(), q, root)
	if evalErr != nil {
		logx.L().Error("query evaluation failed", "query", args[1], "error", evalErr.Message)
		return fmt.Errorf("evaluating query: %s", evalErr.Message)
	}

	out, err := codec.Encode(result, codec.JSON, true)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
