package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mvp-joe/osstatus-generator/internal/extraction"
	"github.com/mvp-joe/osstatus-generator/internal/generator"
)

// recordsCmd prints the extracted statuses without rendering them.
var recordsCmd = &cobra.Command{
	Use:   "records [path]",
	Short: "Print the statuses extracted from a header as YAML",
	Long: `Records runs extraction and filtering only and prints one YAML entry per
status with its name, code, description (null when the declaration had no
comment) and source line. Useful for checking what a header yields before
generating code from it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func init() {
	rootCmd.AddCommand(recordsCmd)
}

func runRecords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	gen, err := generator.New(cfg, generator.WithLogger(logger))
	if err != nil {
		return err
	}

	path := inputPath(args, cfg)
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	statuses, err := gen.Extract(cmd.Context(), source)
	if err != nil {
		return err
	}

	return writeRecords(cmd.OutOrStdout(), statuses)
}

func writeRecords(w io.Writer, statuses []extraction.Status) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(statuses); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return enc.Close()
}
