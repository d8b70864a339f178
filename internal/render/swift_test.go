package render

import (
	"strings"
	"testing"
	"time"

	"github.com/mvp-joe/osstatus-generator/internal/extraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Swift renderer:
// - Canonical input yields enum cases, init(status:) and rawValue switches
// - Fallback description is used for statuses without a comment
// - Empty sequence still declares the unknown case and closes every switch
// - Duplicate codes only appear once in init(status:)
// - Quotes and backslashes in descriptions are escaped
// - Timestamp masking makes renders comparable

func renderSwift(t *testing.T, statuses []extraction.Status, opts Options) string {
	t.Helper()

	if opts.Now == nil {
		opts.Now = fixedClock
	}
	r, err := New("swift", opts)
	require.NoError(t, err)

	out, err := r.Render(statuses)
	require.NoError(t, err)
	return out
}

func TestSwiftRenderer_CanonicalExample(t *testing.T) {
	t.Parallel()

	out := renderSwift(t, canonicalStatuses(), Options{})

	assert.Contains(t, out, "// Created by osstatus-generator on 2026-10-16.\n")
	assert.Contains(t, out, "enum OSStatusError {\n    /// No error.\n    case errSecSuccess\n\n")
	assert.Contains(t, out, "        case 0:\n            self = .errSecSuccess\n")
	assert.Contains(t, out, "        case -4:\n            self = .errSecUnimplemented\n")
	assert.Contains(t, out, "        case .errSecUnimplemented:\n            return -4\n")
	assert.Contains(t, out, "            return \"No error. <OSStatusError.errSecSuccess: 0>\"\n")
	assert.Contains(t, out, `return "The code, \(rawValue), is an unknown OSStatus to SecBase.h"`)
}

func TestSwiftRenderer_FallbackDescription(t *testing.T) {
	t.Parallel()

	out := renderSwift(t, []extraction.Status{{Name: "errSecInternalComponent", Code: -2070}}, Options{})

	assert.Contains(t, out, "    /// No comment provided in SecBase.h\n    case errSecInternalComponent\n")
	assert.Contains(t, out, "return \"No comment provided in SecBase.h\"\n")
}

func TestSwiftRenderer_EmptySequence(t *testing.T) {
	t.Parallel()

	out := renderSwift(t, nil, Options{})

	assert.Contains(t, out, "    case unknown(OSStatus)\n")
	assert.Contains(t, out, "        switch status {\n        default:\n            self = .unknown(status)\n        }\n")
	assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"))
	assert.NotContains(t, out, "case .err")
}

func TestSwiftRenderer_DuplicateCodes(t *testing.T) {
	t.Parallel()

	statuses := []extraction.Status{
		{Name: "errSecFirst", Code: 5},
		{Name: "errSecSecond", Code: 5},
	}
	out := renderSwift(t, statuses, Options{})

	assert.Equal(t, 1, strings.Count(out, "        case 5:\n"))
	assert.Contains(t, out, "        case 5:\n            self = .errSecFirst\n")
	assert.Contains(t, out, "        case .errSecSecond:\n            return 5\n")
}

func TestSwiftRenderer_EscapesDescriptions(t *testing.T) {
	t.Parallel()

	statuses := []extraction.Status{
		{Name: "errSecQuote", Code: 1, Description: extraction.StringPtr(`Say "hi" \(x)`)},
	}
	out := renderSwift(t, statuses, Options{})

	assert.Contains(t, out, `return "Say \"hi\" \\(x)"`)
}

func TestSwiftRenderer_MaskTimestamp(t *testing.T) {
	t.Parallel()

	first := renderSwift(t, canonicalStatuses(), Options{})
	second := renderSwift(t, canonicalStatuses(), Options{Now: func() time.Time {
		return time.Date(2020, 5, 5, 0, 0, 0, 0, time.UTC)
	}})

	assert.NotEqual(t, first, second)
	assert.Equal(t, MaskTimestamp(first), MaskTimestamp(second))
}
