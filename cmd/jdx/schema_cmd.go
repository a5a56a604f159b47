package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eladbash/jdx/internal/logx"
	"github.com/eladbash/jdx/pkg/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <file>",
	Short: "Decode a document and print its inferred schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root, err := decodeFile(args[0], cfg.Format)
	if err != nil {
		return err
	}

	s := schema.Infer(root, cfg.MaxSamples)
	logx.L().Info("inferred schema", "file", args[0], "maxSamples", cfg.MaxSamples)
	fmt.Fprintln(os.Stdout, schema.Render(s))
	return nil
}
