package model

import "strings"

// Language selects the locale of the WikiArt catalog page.
//
// The language only changes the listing URL and the suffix of the
// titles and links files. Titles may stay untranslated on the site.
type Language int

const (
	// English uses the /en/ catalog and the "_en" file suffix.
	English Language = iota

	// French uses the /fr/ catalog and the "_fr" file suffix.
	French
)

// ParseLanguage converts user input to a Language.
//
// Accepted values (case-insensitive):
//   - "english", "en"
//   - "français", "francais", "french", "fr"
//
// Anything else falls back to English.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "français", "francais", "french", "fr":
		return French
	default:
		return English
	}
}

// Path returns the URL path segment of the language ("en" or "fr").
func (l Language) Path() string {
	if l == French {
		return "fr"
	}
	return "en"
}

// Suffix returns the output filename suffix, including the underscore.
func (l Language) Suffix() string {
	return "_" + l.Path()
}

// String returns the name used in prompts and config files.
func (l Language) String() string {
	if l == French {
		return "français"
	}
	return "english"
}
