// Package tokenizer splits raw text into word tokens. A token is a maximal
// run of alphanumeric or underscore runes; every other rune is a separator.
// Unlike a search-engine analyzer there is no lowercasing, stemming, or
// stop-word removal: counting downstream is exact-match and case-sensitive.
package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenize scans text left to right and returns its tokens in order,
// duplicates retained. Empty input yields an empty sequence. Tokenize never
// fails.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}
