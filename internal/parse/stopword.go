package parse

import (
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StopwordEngine extracts keywords by dropping the stopwords of the text's
// language and keeping the remaining words in order of appearance.
type StopwordEngine struct{}

// Extract implements Extractor.
func (StopwordEngine) Extract(text string, opts Options) []string {
	lang := ResolveLanguage(opts.Language)
	cleaned := stopwords.CleanString(text, lang, true)
	words := strings.FieldsFunc(cleaned, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-' && r != '\''
	})

	var caser cases.Caser
	if opts.ChangeCase {
		caser = cases.Lower(language.Make(lang))
	}
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.Trim(word, "-'")
		if word == "" {
			continue
		}
		if opts.RemoveDigits && strings.IndexFunc(word, unicode.IsDigit) >= 0 {
			continue
		}
		if opts.ChangeCase {
			word = caser.String(word)
		}
		if opts.RemoveDuplicates {
			if seen[word] {
				continue
			}
			seen[word] = true
		}
		out = append(out, word)
	}
	return out
}
