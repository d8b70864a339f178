package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/osstatus-generator/internal/config"
	"github.com/mvp-joe/osstatus-generator/internal/generator"
	"github.com/mvp-joe/osstatus-generator/internal/watcher"
)

// loadConfig resolves configuration for cmd: flags, then OSSTATUS_* env,
// then the config file, then defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := []config.LoaderOption{config.WithFlags(cmd.Flags())}
	if cfgFile != "" {
		opts = append(opts, config.WithConfigFile(cfgFile))
	}
	return config.LoadConfig(opts...)
}

// inputPath is the positional argument when given, else the configured header.
func inputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Input.Path
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if watchFlag && checkFile != "" {
		return errors.New("--watch and --check cannot be used together")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if watchFlag && cfg.Output.Path == "" {
		return errors.New("--watch requires --output")
	}

	gen, err := generator.New(cfg, generator.WithLogger(logger))
	if err != nil {
		return err
	}

	path := inputPath(args, cfg)
	ctx := cmd.Context()

	out, err := generateFile(ctx, gen, path)
	if err != nil {
		return err
	}

	if checkFile != "" {
		return checkGenerated(cmd.OutOrStdout(), out, checkFile)
	}

	if err := writeOutput(cmd.OutOrStdout(), cfg.Output.Path, out); err != nil {
		return err
	}

	if watchFlag {
		return watchHeader(ctx, gen, path, cfg.Output.Path)
	}
	return nil
}

// generateFile reads the header at path and returns the generated file,
// newline terminated.
func generateFile(ctx context.Context, gen *generator.Generator, path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read header: %w", err)
	}
	logger.Debug("read header", "path", path, "bytes", len(source))

	out, err := gen.Generate(ctx, source)
	if err != nil {
		return "", err
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// writeOutput writes out to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path, out string) error {
	if path == "" {
		_, err := io.WriteString(stdout, out)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("wrote generated file", "path", path)
	return nil
}

// watchHeader regenerates output each time the header changes until ctx is
// cancelled. Failed regenerations are logged and the previous file is kept.
func watchHeader(ctx context.Context, gen *generator.Generator, path, output string) error {
	fw, err := watcher.NewFileWatcher(path, watcher.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to watch header: %w", err)
	}
	defer fw.Stop()

	regenerate := func(changed string) {
		out, err := generateFile(ctx, gen, changed)
		if err != nil {
			logger.Error("regeneration failed", "path", changed, "error", err)
			return
		}
		if err := writeOutput(io.Discard, output, out); err != nil {
			logger.Error("regeneration failed", "path", output, "error", err)
			return
		}
		fmt.Fprintf(os.Stderr, "Regenerated %s\n", output)
	}

	if err := fw.Start(ctx, regenerate); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)\n", path)
	<-ctx.Done()
	return nil
}
