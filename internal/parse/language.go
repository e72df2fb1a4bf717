package parse

import (
	"strings"

	"github.com/atomicstack/keyword-editor/internal/logging/events"
	"golang.org/x/text/language"
)

// DefaultLanguage is used whenever a requested language is unknown.
const DefaultLanguage = "en"

// supported mirrors the language switch of the stopwords package; any other
// code would pass through CleanString untouched.
var supported = map[string]bool{
	"ar": true, "bg": true, "cs": true, "da": true, "de": true, "el": true,
	"en": true, "es": true, "fa": true, "fi": true, "fr": true, "hu": true,
	"id": true, "it": true, "ja": true, "km": true, "lv": true, "nl": true,
	"no": true, "pl": true, "pt": true, "ro": true, "ru": true, "sk": true,
	"sv": true, "th": true, "tr": true,
}

// aliases maps written standards onto the list that covers them.
var aliases = map[string]string{
	"nb": "no",
	"nn": "no",
}

// baseOf returns the aliased base language of code, or "" when it does not
// parse.
func baseOf(code string) string {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	resolved := base.String()
	if alias, ok := aliases[resolved]; ok {
		return alias
	}
	return resolved
}

// ResolveLanguage reduces a BCP 47 or ISO 639-1 code to a supported base
// language, falling back to DefaultLanguage.
func ResolveLanguage(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultLanguage
	}
	resolved := baseOf(code)
	if !supported[resolved] {
		events.Parse.LanguageFallback(code, DefaultLanguage)
		return DefaultLanguage
	}
	return resolved
}

// Supported reports whether code resolves to a language with its own list.
func Supported(code string) bool {
	return supported[baseOf(code)]
}
