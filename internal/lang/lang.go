// Package lang handles target-language selection for package operations.
package lang

import "strings"

// Descriptor identifies one target language of a project.
type Descriptor struct {
	Code string
}

// Assignee returns the nominal package assignee label for the language,
// e.g. "fi-FI translator".
func (d Descriptor) Assignee() string {
	return d.Code + " translator"
}

// SplitCodes splits a language filter string into individual locale codes.
// Any run of spaces, semicolons or commas counts as one separator; empty
// fields are dropped.
func SplitCodes(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ';' || r == ','
	})
}

// Resolve returns the languages to process: the parsed filter when it names
// at least one code, otherwise every configured target language in the
// project's reported order.
func Resolve(filter string, projectLanguages []string) []Descriptor {
	codes := SplitCodes(filter)
	if len(codes) == 0 {
		codes = projectLanguages
	}

	out := make([]Descriptor, len(codes))
	for i, c := range codes {
		out[i] = Descriptor{Code: c}
	}
	return out
}
