// Package parsers extracts status code declarations from C header text.
package parsers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvp-joe/osstatus-generator/internal/extraction"
)

const (
	// KindPattern scans the text line by line for the `name = code, /* desc */`
	// idiom. It does not care about the surrounding C structure.
	KindPattern = "regex"

	// KindTreeSitter parses the header with tree-sitter-c and reads the
	// enumerators of every enum body.
	KindTreeSitter = "treesitter"
)

// Parser extracts the ordered status declarations from a header.
type Parser interface {
	Parse(ctx context.Context, source []byte) ([]extraction.Status, error)
}

// Kinds lists the parser kinds accepted by New.
func Kinds() []string {
	return []string{KindPattern, KindTreeSitter}
}

// New returns the parser registered under kind.
func New(kind string) (Parser, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindPattern, "":
		return NewPatternParser(), nil
	case KindTreeSitter:
		return NewCParser(), nil
	default:
		return nil, fmt.Errorf("unknown parser %q (expected one of %s)", kind, strings.Join(Kinds(), ", "))
	}
}
