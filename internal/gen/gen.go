// Package gen renders validated enum definitions into Go source.
//
// For each definition it emits one package-level variable built with
// enum.MustOf plus one string constant per label, so call sites can use
// either the enum value or the raw label:
//
//	var Direction = enum.MustOf(
//		DirectionNorth,
//		...
//	)
//
//	const DirectionNorth = "NORTH"
//
// Output is deterministic: definition order and label order are
// preserved exactly as declared.
package gen

import (
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/enumset/internal/enumdef"
)

// enumImport is the import path of the runtime enum package referenced
// by generated code.
const enumImport = "github.com/roach88/enumset/enum"

var titleCaser = cases.Title(language.Und)

// Generate renders f as a gofmt-formatted Go source file.
//
// Callers are expected to run enumdef.Validate first; Generate still
// fails (rather than emitting broken code) on labels that produce no
// usable identifier or produce colliding ones.
func Generate(f *enumdef.File) ([]byte, error) {
	var b strings.Builder

	b.WriteString("// Code generated by enumgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n", f.Package)
	// A zero-enum file must stay compilable: the import is only legal
	// when at least one MustOf call uses it.
	if len(f.Enums) > 0 {
		fmt.Fprintf(&b, "\nimport %q\n", enumImport)
	}

	// Const names must be unique across the whole file, not just within
	// one enum.
	usedIdents := make(map[string]string)

	for _, def := range f.Enums {
		idents := make([]string, len(def.Labels))
		for i, label := range def.Labels {
			ident, err := constName(def.Name, label)
			if err != nil {
				return nil, err
			}
			if prev, ok := usedIdents[ident]; ok {
				return nil, fmt.Errorf("gen: labels %q and %q both map to identifier %s", prev, label, ident)
			}
			usedIdents[ident] = label
			idents[i] = ident
		}

		b.WriteString("\n")
		if def.Doc != "" {
			fmt.Fprintf(&b, "// %s: %s\n", def.Name, def.Doc)
		} else {
			fmt.Fprintf(&b, "// %s is an immutable ordered set of %d labels.\n", def.Name, len(def.Labels))
		}
		fmt.Fprintf(&b, "var %s = enum.MustOf(\n", def.Name)
		for _, ident := range idents {
			fmt.Fprintf(&b, "\t%s,\n", ident)
		}
		b.WriteString(")\n")

		for i, ident := range idents {
			fmt.Fprintf(&b, "\n// %s is the %q label of %s.\nconst %s = %q\n", ident, def.Labels[i], def.Name, ident, def.Labels[i])
		}
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("gen: formatting generated source: %w", err)
	}
	return src, nil
}

// constName derives the exported constant identifier for a label, e.g.
// ("Direction", "NORTH_EAST") -> "DirectionNorthEast".
func constName(enumName, label string) (string, error) {
	words := splitWords(label)
	if len(words) == 0 {
		return "", fmt.Errorf("gen: label %q of %s yields no identifier characters", label, enumName)
	}
	var b strings.Builder
	b.WriteString(enumName)
	for _, w := range words {
		b.WriteString(titleCaser.String(w))
	}
	return b.String(), nil
}

// splitWords breaks a label into words on separators ("-", "_", spaces,
// anything that is not a letter or digit) and on lower-to-upper case
// boundaries, so "halfOpen" splits the same way "half_open" does. Only
// letters and digits survive into the words.
func splitWords(label string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range label {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if unicode.IsUpper(r) && len(cur) > 0 && unicode.IsLower(cur[len(cur)-1]) {
				flush()
			}
			cur = append(cur, r)
		default:
			flush()
		}
	}
	flush()
	return words
}
