package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/mvp-joe/osstatus-generator/internal/render"
)

// ErrStale is returned when a checked file differs from freshly generated output.
var ErrStale = errors.New("generated file is out of date")

// checkGenerated compares generated with the file at path, ignoring the
// generation date. On mismatch the unified diff goes to w.
func checkGenerated(w io.Writer, generated, path string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read checked file: %w", err)
	}

	diff, err := staleDiff(string(existing), generated, path)
	if err != nil {
		return err
	}
	if diff == "" {
		logger.Debug("generated file is up to date", "path", path)
		return nil
	}

	if _, err := io.WriteString(w, diff); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", ErrStale, path)
}

// staleDiff returns the unified diff from existing to generated with both
// timestamps masked, or "" when they match.
func staleDiff(existing, generated, path string) (string, error) {
	a := render.MaskTimestamp(existing)
	b := render.MaskTimestamp(generated)
	if a == b {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: path,
		ToFile:   "generated",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to diff %s: %w", path, err)
	}
	return diff, nil
}
