package render

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/mvp-joe/osstatus-generator/internal/extraction"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var goTemplate = template.Must(template.New("go.tmpl").Funcs(template.FuncMap{
	"quote":   strconv.Quote,
	"comment": lineComment,
}).ParseFS(templateFS, "templates/go.tmpl"))

type goRenderer struct {
	opts Options
}

func newGoRenderer(opts Options) Renderer {
	return &goRenderer{opts: opts}
}

type goFile struct {
	Date               string
	SourceName         string
	Package            string
	TypeName           string
	KindType           string
	UnknownKind        string
	RawType            string
	UnknownDescription string // fmt format with one %d
	UnknownDebug       string // fmt format with one %d
	Variants           []variant
	Lookups            []variant
}

// Render executes the Go template and gofmts the result.
func (r *goRenderer) Render(statuses []extraction.Status) (string, error) {
	all, lookups := variants(statuses, r.opts)
	source := escapeFormat(r.opts.SourceName)
	names := newGoNames(r.opts.TypeName)

	data := goFile{
		Date:               r.opts.Now().Format(dateLayout),
		SourceName:         singleLine(r.opts.SourceName),
		Package:            r.opts.Package,
		TypeName:           r.opts.TypeName,
		KindType:           names.kindType,
		UnknownKind:        names.unknownKind,
		RawType:            r.opts.RawType,
		UnknownDescription: fmt.Sprintf("The code, %%d, is an unknown OSStatus to %s", source),
		UnknownDebug:       fmt.Sprintf("Unknown OSStatus to %s <%s.unknown: %%d>", source, escapeFormat(r.opts.TypeName)),
		Variants:           all,
		Lookups:            lookups,
	}

	var buf bytes.Buffer
	if err := goTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute go template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to format generated go source: %w", err)
	}

	return string(formatted), nil
}

// lineComment renders a description as a single // comment line.
func lineComment(desc string) string {
	desc = singleLine(desc)
	if desc == "" {
		return "//"
	}
	return "// " + desc
}

func escapeFormat(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
