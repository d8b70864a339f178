package parsers

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/mvp-joe/osstatus-generator/internal/extraction"
)

// statusPattern matches one declaration per line:
//
//	errSecSuccess                            = 0,       /* No error. */
//
// Groups: 1 name, 2 code, 3 comment interior (optional).
var statusPattern = regexp.MustCompile(
	`(?m)^[ \t]*([A-Za-z_][A-Za-z0-9_]*)[ \t]*=[ \t]*(-?[0-9]+)[ \t]*,(?:[ \t]*/\*([^\n]*?)\*/)?`,
)

// patternParser adapts Extract to the Parser interface.
type patternParser struct{}

// NewPatternParser creates the line pattern parser.
func NewPatternParser() Parser {
	return patternParser{}
}

// Parse extracts statuses from source.
func (patternParser) Parse(ctx context.Context, source []byte) ([]extraction.Status, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Extract(string(source)), nil
}

// Extract returns every status declaration in text, in the order found.
// Text that does not fit the idiom is ignored, so the result may be empty.
func Extract(text string) []extraction.Status {
	matches := statusPattern.FindAllStringSubmatchIndex(text, -1)
	statuses := make([]extraction.Status, 0, len(matches))

	line, scanned := 1, 0
	for _, m := range matches {
		nameStart, nameEnd := m[2], m[3]
		codeStart, codeEnd := m[4], m[5]

		line += strings.Count(text[scanned:nameStart], "\n")
		scanned = nameStart

		code, err := strconv.ParseInt(text[codeStart:codeEnd], 10, 64)
		if err != nil {
			// Out of int64 range; not a literal this idiom accepts.
			continue
		}

		status := extraction.Status{
			Name: text[nameStart:nameEnd],
			Code: code,
			Line: line,
		}
		if m[6] >= 0 {
			status.Description = extraction.StringPtr(strings.TrimSpace(text[m[6]:m[7]]))
		}
		statuses = append(statuses, status)
	}

	return statuses
}
