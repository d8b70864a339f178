// Package generator runs the extraction, filtering and rendering stages
// configured by a config.Config.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/mvp-joe/osstatus-generator/internal/config"
	"github.com/mvp-joe/osstatus-generator/internal/extraction"
	"github.com/mvp-joe/osstatus-generator/internal/filter"
	"github.com/mvp-joe/osstatus-generator/internal/parsers"
	"github.com/mvp-joe/osstatus-generator/internal/render"
)

// Generator turns header text into a generated source file.
type Generator struct {
	parser   parsers.Parser
	filter   *filter.NameFilter
	renderer render.Renderer
	logger   *slog.Logger

	goTypeName string // set when rendering Go, for identifier collision checks
}

// Option customises a Generator.
type Option func(*options)

type options struct {
	logger *slog.Logger
	now    func() time.Time
}

// WithLogger sets the logger used for stage diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the clock that stamps generated files.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New builds a generator from cfg. cfg must already be validated; New still
// reports an unknown parser, target or bad pattern as an error.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	parser, err := parsers.New(cfg.Input.Parser)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	nameFilter, err := filter.New(cfg.Filter.Include, cfg.Filter.Exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter: %w", err)
	}

	renderOpts := cfg.RenderOptions()
	renderOpts.Now = o.now
	renderer, err := render.New(cfg.Output.Target, renderOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g := &Generator{
		parser:   parser,
		filter:   nameFilter,
		renderer: renderer,
		logger:   o.logger,
	}
	if strings.EqualFold(strings.TrimSpace(cfg.Output.Target), "go") {
		g.goTypeName = renderOpts.TypeName
		if g.goTypeName == "" {
			g.goTypeName = render.DefaultTypeName
		}
	}
	return g, nil
}

// Extract parses source and applies the name filter.
func (g *Generator) Extract(ctx context.Context, source []byte) ([]extraction.Status, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	statuses, err := g.parser.Parse(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to extract statuses: %w", err)
	}
	g.logger.Debug("extracted statuses", "count", len(statuses))

	if !g.filter.Empty() {
		statuses = g.filter.Apply(statuses)
		g.logger.Debug("filtered statuses", "count", len(statuses))
	}

	g.reportDuplicates(statuses)
	return statuses, nil
}

// Generate extracts statuses from source and renders them.
func (g *Generator) Generate(ctx context.Context, source []byte) (string, error) {
	statuses, err := g.Extract(ctx, source)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := g.renderer.Render(statuses)
	if err != nil {
		return "", fmt.Errorf("failed to render statuses: %w", err)
	}
	g.logger.Debug("rendered output", "bytes", len(out))

	return out, nil
}

// reportDuplicates warns about repeated names and codes. They are kept as is:
// a repeated code resolves to its first variant, a repeated name is emitted
// twice.
func (g *Generator) reportDuplicates(statuses []extraction.Status) {
	g.reportCollisions(statuses)

	report := extraction.Duplicates(statuses)
	if report.Empty() {
		return
	}

	for _, name := range slices.Sorted(maps.Keys(report.Names)) {
		g.logger.Warn("duplicate status name", "name", name, "lines", report.Names[name])
	}
	for _, code := range report.SortedCodes() {
		g.logger.Warn("duplicate status code, first declaration wins",
			"code", code, "names", strings.Join(report.Codes[code], ", "))
	}
}

// reportCollisions warns about distinct statuses whose Go identifiers clash
// with each other or with the generated type, constructor or constants. The
// generated file will not compile until the header or type name changes.
func (g *Generator) reportCollisions(statuses []extraction.Status) {
	if g.goTypeName == "" {
		return
	}

	collisions := render.GoIdentifierCollisions(statuses, g.goTypeName)
	for _, ident := range slices.Sorted(maps.Keys(collisions)) {
		g.logger.Warn("generated identifier declared more than once",
			"identifier", ident, "declared_by", strings.Join(collisions[ident], ", "))
	}
}
