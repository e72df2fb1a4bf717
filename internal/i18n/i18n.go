// Package i18n provides the translated strings shown by the editor.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Translator renders key with vars substituted for their ":name"
// placeholders.
type Translator func(key string, vars map[string]string) string

// LanguageProvider returns the active content language code.
type LanguageProvider func() string

// StaticLanguage returns a provider that always reports code.
func StaticLanguage(code string) LanguageProvider {
	return func() string { return code }
}

// Keys of the built-in English catalog.
const (
	KeyExtractFromText = "extractFromText"
	KeySplitOnComma    = "splitOnComma"
	KeyRemoveKeyword   = "removeKeyword"
	KeyNoTargetField   = "noTargetField"
	KeyNoSourceField   = "noSourceField"
	KeyKeywords        = "keywords"
	KeyNoKeywords      = "noKeywords"
	KeyUnknownCommand  = "unknownCommand"
	KeySaved           = "saved"
	KeyNothingToParse  = "nothingToParse"
)

// English is the default catalog.
var English = map[string]string{
	KeyExtractFromText: "Extract keywords from :field",
	KeySplitOnComma:    "Add keywords from :field",
	KeyRemoveKeyword:   "Remove keyword",
	KeyNoTargetField:   "Keyword field :field could not be found.",
	KeyNoSourceField:   "Source field :field could not be found.",
	KeyKeywords:        "Keywords",
	KeyNoKeywords:      "No keywords yet.",
	KeyUnknownCommand:  "Unknown command :command for :field.",
	KeySaved:           "Saved to :path",
	KeyNothingToParse:  ":field is empty.",
}

// Catalog holds per-language string tables with English as the fallback.
type Catalog struct {
	tables  map[language.Tag]map[string]string
	matcher language.Matcher
	tags    []language.Tag
}

// NewCatalog returns a catalog seeded with English.
func NewCatalog() *Catalog {
	c := &Catalog{tables: map[language.Tag]map[string]string{}}
	c.Add(language.English, English)
	return c
}

// Add registers or extends the table for tag.
func (c *Catalog) Add(tag language.Tag, table map[string]string) {
	existing, ok := c.tables[tag]
	if !ok {
		existing = map[string]string{}
		c.tables[tag] = existing
		c.tags = append(c.tags, tag)
		c.matcher = language.NewMatcher(c.tags)
	}
	for k, v := range table {
		existing[k] = v
	}
}

// Translator returns a translator for the language reported by lang.
func (c *Catalog) Translator(lang LanguageProvider) Translator {
	return func(key string, vars map[string]string) string {
		code := ""
		if lang != nil {
			code = lang()
		}
		return c.Lookup(code, key, vars)
	}
}

// Lookup renders key for code. Unknown keys render as a visible marker.
func (c *Catalog) Lookup(code, key string, vars map[string]string) string {
	tag := c.match(code)
	text, ok := c.tables[tag][key]
	if !ok {
		text, ok = c.tables[language.English][key]
	}
	if !ok {
		return "[Missing translation " + key + "]"
	}
	return Substitute(text, vars)
}

func (c *Catalog) match(code string) language.Tag {
	if code == "" {
		return language.English
	}
	desired, _, err := language.ParseAcceptLanguage(code)
	if err != nil || len(desired) == 0 {
		return language.English
	}
	_, index, confidence := c.matcher.Match(desired...)
	if confidence == language.No {
		return language.English
	}
	return c.tags[index]
}

// Substitute replaces ":name" placeholders. Longer names are replaced first
// so ":field" never clobbers ":fieldName".
func Substitute(text string, vars map[string]string) string {
	if len(vars) == 0 {
		return text
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, ":"+name, vars[name])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
