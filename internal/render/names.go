package render

import (
	"unicode"
	"unicode/utf8"

	"github.com/mvp-joe/osstatus-generator/internal/extraction"
)

// ExportedName maps a C identifier to an exported Go identifier:
// errSecSuccess becomes ErrSecSuccess. Names that cannot be exported by
// upper-casing their first letter get an X prefix.
func ExportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	switch {
	case r == utf8.RuneError:
		return "X" + name
	case unicode.IsUpper(r):
		return name
	case unicode.IsLower(r):
		return string(unicode.ToUpper(r)) + name[size:]
	default:
		return "X" + name
	}
}

// unexport lower-cases the leading upper-case run of name, keeping the
// letter that starts the next word: OSStatusError becomes osStatusError.
func unexport(name string) string {
	runes := []rune(name)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}

	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// goNames are the package-level identifiers the Go target declares besides
// the per-status variables and kind constants.
type goNames struct {
	typeName    string
	kindType    string
	unknownKind string
	constructor string
}

func newGoNames(typeName string) goNames {
	names := goNames{
		typeName:    typeName,
		kindType:    unexport(typeName) + "Kind",
		unknownKind: "unknownKind",
		constructor: "New" + typeName,
	}
	// A type named Unknown would otherwise declare unknownKind twice.
	if names.unknownKind == names.kindType {
		names.unknownKind = names.kindType + "Unknown"
	}
	return names
}

// GoIdentifierCollisions reports package-level identifiers that the Go target
// would declare more than once for statuses and typeName, mapped to what
// declares them. Repeats of one exact name are left to
// extraction.Duplicates and are not reported here.
func GoIdentifierCollisions(statuses []extraction.Status, typeName string) map[string][]string {
	if typeName == "" {
		typeName = DefaultTypeName
	}
	names := newGoNames(typeName)

	owners := map[string][]string{
		names.typeName:    {"type " + names.typeName},
		names.kindType:    {"kind type " + names.kindType},
		names.unknownKind: {"unknown kind constant"},
		names.constructor: {"constructor " + names.constructor},
		"fmt":             {"fmt import"},
	}

	seen := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true

		ident := ExportedName(s.Name)
		owners[ident] = append(owners[ident], s.Name)
		owners["kind"+ident] = append(owners["kind"+ident], s.Name)
	}

	collisions := make(map[string][]string)
	for ident, declaredBy := range owners {
		if len(declaredBy) > 1 {
			collisions[ident] = declaredBy
		}
	}
	return collisions
}
