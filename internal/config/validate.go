package config

import (
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/mvp-joe/osstatus-generator/internal/parsers"
	"github.com/mvp-joe/osstatus-generator/internal/render"
)

var (
	// ErrInvalidTarget indicates an unsupported render target
	ErrInvalidTarget = errors.New("invalid output target")

	// ErrInvalidParser indicates an unsupported header parser
	ErrInvalidParser = errors.New("invalid input parser")

	// ErrInvalidIdentifier indicates a package or type name that is not a valid identifier
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidRawType indicates an unsupported raw integer type
	ErrInvalidRawType = errors.New("invalid raw type")

	// ErrInvalidPattern indicates a filter glob that does not compile
	ErrInvalidPattern = errors.New("invalid filter pattern")
)

// RawTypes lists the integer types a generated file may carry codes in.
var RawTypes = []string{"int32", "int64", "int"}

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateInput(&cfg.Input); err != nil {
		errs = append(errs, err)
	}

	if err := validateOutput(&cfg.Output); err != nil {
		errs = append(errs, err)
	}

	if err := validateFilter(&cfg.Filter); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateInput(cfg *InputConfig) error {
	parser := strings.ToLower(strings.TrimSpace(cfg.Parser))
	if !slices.Contains(parsers.Kinds(), parser) {
		return fmt.Errorf("%w: must be one of %s, got '%s'", ErrInvalidParser, strings.Join(parsers.Kinds(), ", "), cfg.Parser)
	}
	return nil
}

func validateOutput(cfg *OutputConfig) error {
	var errs []error

	target := strings.ToLower(strings.TrimSpace(cfg.Target))
	if !slices.Contains(render.Targets(), target) {
		errs = append(errs, fmt.Errorf("%w: must be one of %s, got '%s'", ErrInvalidTarget, strings.Join(render.Targets(), ", "), cfg.Target))
	}

	if !token.IsIdentifier(cfg.Package) {
		errs = append(errs, fmt.Errorf("%w: package '%s'", ErrInvalidIdentifier, cfg.Package))
	}

	if !token.IsIdentifier(cfg.TypeName) {
		errs = append(errs, fmt.Errorf("%w: type_name '%s'", ErrInvalidIdentifier, cfg.TypeName))
	}

	if !slices.Contains(RawTypes, cfg.RawType) {
		errs = append(errs, fmt.Errorf("%w: must be one of %s, got '%s'", ErrInvalidRawType, strings.Join(RawTypes, ", "), cfg.RawType))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateFilter(cfg *FilterConfig) error {
	var errs []error

	for _, pattern := range append(slices.Clone(cfg.Include), cfg.Exclude...) {
		if _, err := glob.Compile(pattern); err != nil {
			errs = append(errs, fmt.Errorf("%w: '%s': %v", ErrInvalidPattern, pattern, err))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
// Every wrapped error stays reachable through errors.Is.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	return &validationError{errs: errs}
}

type validationError struct {
	errs []error
}

func (e *validationError) Error() string {
	msgs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

func (e *validationError) Unwrap() []error {
	return e.errs
}
