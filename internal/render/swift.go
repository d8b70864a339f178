package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/mvp-joe/osstatus-generator/internal/extraction"
)

var swiftTemplate = template.Must(template.New("swift.tmpl").ParseFS(templateFS, "templates/swift.tmpl"))

var swiftEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

type swiftRenderer struct {
	opts Options
}

func newSwiftRenderer(opts Options) Renderer {
	return &swiftRenderer{opts: opts}
}

// swiftFile holds pre-joined switch bodies. Each non-empty body ends with a
// newline so the template can append the closing case directly.
type swiftFile struct {
	Date             string
	TypeName         string
	SourceName       string
	SwiftSourceName  string
	Cases            string
	InitStatus       string
	RawValue         string
	Description      string
	DebugDescription string
}

// Render produces an OSStatusError.swift style enum.
func (r *swiftRenderer) Render(statuses []extraction.Status) (string, error) {
	all, lookups := variants(statuses, r.opts)

	var cases, initStatus, rawValue, description, debug strings.Builder
	for _, v := range all {
		fmt.Fprintf(&cases, "    /// %s\n    case %s\n\n", singleLine(v.Description), v.Name)
		fmt.Fprintf(&rawValue, "        case .%s:\n            return %d\n", v.Name, v.Code)
		fmt.Fprintf(&description, "        case .%s:\n            return \"%s\"\n", v.Name, swiftEscaper.Replace(singleLine(v.Description)))
		fmt.Fprintf(&debug, "        case .%s:\n            return \"%s\"\n", v.Name, swiftEscaper.Replace(singleLine(v.Debug)))
	}
	for _, v := range lookups {
		fmt.Fprintf(&initStatus, "        case %d:\n            self = .%s\n", v.Code, v.Name)
	}

	data := swiftFile{
		Date:             r.opts.Now().Format(dateLayout),
		TypeName:         r.opts.TypeName,
		SourceName:       singleLine(r.opts.SourceName),
		SwiftSourceName:  swiftEscaper.Replace(singleLine(r.opts.SourceName)),
		Cases:            cases.String(),
		InitStatus:       initStatus.String(),
		RawValue:         rawValue.String(),
		Description:      description.String(),
		DebugDescription: debug.String(),
	}

	var buf bytes.Buffer
	if err := swiftTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute swift template: %w", err)
	}

	return buf.String(), nil
}
