// Package filter selects statuses by name with glob patterns.
package filter

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/mvp-joe/osstatus-generator/internal/extraction"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// NameFilter keeps statuses whose name matches an include pattern and no
// exclude pattern. With no include patterns every name is included.
type NameFilter struct {
	include []compiledPattern
	exclude []compiledPattern
}

// New compiles include and exclude patterns (gobwas/glob syntax, e.g. "errSec*").
func New(include, exclude []string) (*NameFilter, error) {
	f := &NameFilter{}

	for _, pattern := range include {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		f.include = append(f.include, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		f.exclude = append(f.exclude, compiledPattern{pattern: pattern, glob: g})
	}

	return f, nil
}

// Empty reports whether the filter lets every name through.
func (f *NameFilter) Empty() bool {
	return f == nil || (len(f.include) == 0 && len(f.exclude) == 0)
}

// Match reports whether name passes the filter.
func (f *NameFilter) Match(name string) bool {
	if f.Empty() {
		return true
	}
	if matchesAnyPattern(name, f.exclude) {
		return false
	}
	return len(f.include) == 0 || matchesAnyPattern(name, f.include)
}

// Apply returns the statuses that pass the filter, in their original order.
func (f *NameFilter) Apply(statuses []extraction.Status) []extraction.Status {
	if f.Empty() {
		return statuses
	}

	kept := make([]extraction.Status, 0, len(statuses))
	for _, s := range statuses {
		if f.Match(s.Name) {
			kept = append(kept, s)
		}
	}
	return kept
}

// matchesAnyPattern checks if a name matches any of the given patterns.
func matchesAnyPattern(name string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(name) {
			return true
		}
	}
	return false
}
