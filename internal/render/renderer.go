// Package render turns extracted statuses into a generated source file.
//
// Every target emits the same contract: one variant per status, a code to
// variant lookup that falls back to an unknown variant carrying the raw code,
// a variant to code lookup, and plain and debug descriptions. Output is a pure
// function of its input except for the generation date, which appears once on
// one header comment line (see MaskTimestamp).
package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mvp-joe/osstatus-generator/internal/extraction"
)

const (
	// DefaultFallbackDescription is used for statuses declared without a comment.
	DefaultFallbackDescription = "No comment provided in SecBase.h"

	DefaultSourceName = "SecBase.h"
	DefaultPackage    = "osstatus"
	DefaultTypeName   = "OSStatusError"
	DefaultRawType    = "int32"

	dateLayout = "2006-01-02"
)

// Renderer renders statuses into a complete source file. An error means the
// renderer itself is broken; any status sequence, including an empty one,
// renders successfully.
type Renderer interface {
	Render(statuses []extraction.Status) (string, error)
}

// Options configures a renderer. Zero fields take the package defaults.
type Options struct {
	Package             string
	TypeName            string
	RawType             string
	SourceName          string
	FallbackDescription string
	Now                 func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.TypeName == "" {
		o.TypeName = DefaultTypeName
	}
	if o.RawType == "" {
		o.RawType = DefaultRawType
	}
	if o.SourceName == "" {
		o.SourceName = DefaultSourceName
	}
	if o.FallbackDescription == "" {
		o.FallbackDescription = DefaultFallbackDescription
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

var targets = map[string]func(Options) Renderer{
	"go":    newGoRenderer,
	"swift": newSwiftRenderer,
}

// Targets lists the registered target names in sorted order.
func Targets() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the renderer registered for target.
func New(target string, opts Options) (Renderer, error) {
	factory, ok := targets[strings.ToLower(strings.TrimSpace(target))]
	if !ok {
		return nil, fmt.Errorf("unknown render target %q (expected one of %s)", target, strings.Join(Targets(), ", "))
	}
	return factory(opts.withDefaults()), nil
}

// variant is one status resolved for a template.
type variant struct {
	Name        string // name as declared in the header
	Ident       string // exported Go identifier
	Kind        string // unexported kind constant
	Code        int64
	Description string // own description, else the fallback
	Debug       string // description with type, name and code
}

// variants resolves statuses in order. lookups holds the first variant for
// each distinct code, which is what a code to variant switch may list.
func variants(statuses []extraction.Status, opts Options) (all []variant, lookups []variant) {
	all = make([]variant, 0, len(statuses))
	seen := make(map[int64]bool, len(statuses))

	for _, s := range statuses {
		ident := ExportedName(s.Name)
		desc := s.DescriptionOr(opts.FallbackDescription)
		v := variant{
			Name:        s.Name,
			Ident:       ident,
			Kind:        "kind" + ident,
			Code:        s.Code,
			Description: desc,
			Debug:       fmt.Sprintf("%s <%s.%s: %d>", desc, opts.TypeName, s.Name, s.Code),
		}
		all = append(all, v)
		if !seen[s.Code] {
			seen[s.Code] = true
			lookups = append(lookups, v)
		}
	}

	return all, lookups
}

// singleLine collapses runs of whitespace, newlines included, to one space.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
