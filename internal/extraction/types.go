package extraction

import "sort"

// Status is one status code declaration extracted from a header.
type Status struct {
	Name        string  `yaml:"name"`
	Code        int64   `yaml:"code"`
	Description *string `yaml:"description"` // nil when the declaration had no trailing comment
	Line        int     `yaml:"line"`        // 1-based line of Name in the source
}

// DescriptionOr returns the description, or fallback when none was declared.
func (s Status) DescriptionOr(fallback string) string {
	if s.Description == nil {
		return fallback
	}
	return *s.Description
}

// HasDescription reports whether the declaration carried a trailing comment.
func (s Status) HasDescription() bool {
	return s.Description != nil
}

// DuplicateReport lists names and codes that occur more than once.
type DuplicateReport struct {
	Names map[string][]int // name -> source lines
	Codes map[int64][]string
}

// Empty reports whether no duplicates were found.
func (r DuplicateReport) Empty() bool {
	return len(r.Names) == 0 && len(r.Codes) == 0
}

// SortedCodes returns the duplicated codes in ascending order.
func (r DuplicateReport) SortedCodes() []int64 {
	codes := make([]int64, 0, len(r.Codes))
	for code := range r.Codes {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Duplicates scans statuses for repeated names and codes. Statuses are not
// modified; repeated entries still produce their own variants downstream.
func Duplicates(statuses []Status) DuplicateReport {
	names := make(map[string][]int)
	codes := make(map[int64][]string)
	for _, s := range statuses {
		names[s.Name] = append(names[s.Name], s.Line)
		codes[s.Code] = append(codes[s.Code], s.Name)
	}

	report := DuplicateReport{
		Names: make(map[string][]int),
		Codes: make(map[int64][]string),
	}
	for name, lines := range names {
		if len(lines) > 1 {
			report.Names[name] = lines
		}
	}
	for code, owners := range codes {
		if len(owners) > 1 {
			report.Codes[code] = owners
		}
	}
	return report
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
