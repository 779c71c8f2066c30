package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel trims surrounding whitespace and converts the name to
// Unicode NFC so composed and decomposed spellings resolve to the same label.
func NormalizeLabel(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// TitleCase formats a clip name for headings. Dashes and underscores become
// spaces. Empty input yields "Untitled".
func TitleCase(name string) string {
	name = strings.TrimSpace(strings.NewReplacer("-", " ", "_", " ").Replace(name))
	if name == "" {
		return "Untitled"
	}
	return cases.Title(language.Und).String(strings.Join(strings.Fields(name), " "))
}
