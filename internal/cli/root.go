package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/osstatus-generator/internal/config"
	"github.com/mvp-joe/osstatus-generator/internal/parsers"
	"github.com/mvp-joe/osstatus-generator/internal/render"
)

var (
	cfgFile   string
	verbose   bool
	watchFlag bool
	checkFile string

	logger = slog.Default()
)

// rootCmd generates the status file when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "osstatus-generator [path]",
	Short: "Generate an OSStatus error type from SecBase.h",
	Long: `osstatus-generator reads the status code declarations of a C header
(errSecSuccess = 0, /* No error. */) and generates a source file that models
them as a closed set of named values with code lookups and descriptions.

The header path defaults to the SecBase.h shipped with Xcode.

Examples:
  # Print the Go file for the installed SecBase.h
  osstatus-generator

  # Generate a Swift enum from a local copy
  osstatus-generator ./SecBase.h --target swift -o OSStatusError.swift

  # Fail when a committed file no longer matches the header
  osstatus-generator ./SecBase.h --check osstatus/osstatus_gen.go

  # Regenerate whenever the header changes
  osstatus-generator ./SecBase.h -o osstatus/osstatus_gen.go --watch
`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setupLogging,
	RunE:              runGenerate,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}

func init() {
	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .osstatus/config.yml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Config overrides, bound through config.FlagKeys
	flags.String("parser", parsers.KindPattern, fmt.Sprintf("header parser (%s)", joinNames(parsers.Kinds())))
	flags.String("source-name", render.DefaultSourceName, "header name quoted in generated descriptions")
	flags.StringSlice("include", nil, "only keep statuses matching these globs")
	flags.StringSlice("exclude", nil, "drop statuses matching these globs")

	rootCmd.Flags().String("target", "go", fmt.Sprintf("output language (%s)", joinNames(render.Targets())))
	rootCmd.Flags().String("package", render.DefaultPackage, "package of the generated Go file")
	rootCmd.Flags().String("type-name", render.DefaultTypeName, "name of the generated type")
	rootCmd.Flags().String("raw-type", render.DefaultRawType, fmt.Sprintf("integer type of raw codes (%s)", joinNames(config.RawTypes)))
	rootCmd.Flags().String("fallback", render.DefaultFallbackDescription, "description for statuses without a comment")
	rootCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "regenerate --output whenever the header changes")
	rootCmd.Flags().StringVar(&checkFile, "check", "", "compare with an existing generated file and fail if it is stale")
}

// setupLogging routes diagnostics to stderr, Debug with --verbose and Warn otherwise.
func setupLogging(cmd *cobra.Command, args []string) error {
	logger = newLogger(cmd.ErrOrStderr(), verbose)
	return nil
}
