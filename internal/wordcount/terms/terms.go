// Package terms expands raw search input into atomic search terms. A single
// phrase may carry punctuation or whitespace ("they're" expands to "they" and
// "re"); a list of phrases expands element by element. Deduplication happens
// within a phrase only, never across list elements.
package terms

import (
	"textkit/internal/wordcount/tokenizer"
	pkgerrors "textkit/pkg/errors"
)

type queryKind int

const (
	queryNone queryKind = iota
	queryPhrase
	queryList
)

// Query is the search input: either a single phrase or a list of phrases.
// Build it with Phrase or List; the zero value is invalid.
type Query struct {
	kind   queryKind
	phrase string
	list   []string
}

// Phrase wraps a single search phrase.
func Phrase(s string) Query {
	return Query{kind: queryPhrase, phrase: s}
}

// List wraps an explicit list of search phrases.
func List(elems []string) Query {
	copied := make([]string, len(elems))
	copy(copied, elems)
	return Query{kind: queryList, list: copied}
}

// IsPhrase reports whether the query was constructed from a single phrase.
// The summary layer branches on this, not on the expanded term count: a
// one-element list still renders as a table.
func (q Query) IsPhrase() bool {
	return q.kind == queryPhrase
}

// NormalizePhrase tokenizes a single phrase and removes duplicate tokens,
// keeping the first occurrence of each distinct token in order of first
// appearance. The phrase must be non-empty.
func NormalizePhrase(phrase string) ([]string, error) {
	if phrase == "" {
		return nil, pkgerrors.New(pkgerrors.ErrInvalidArgument, "search phrase is empty")
	}
	tokens := tokenizer.Tokenize(phrase)
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		unique = append(unique, tok)
	}
	return unique, nil
}

// Normalize expands a query into its ordered sequence of atomic terms. For a
// list, each element is expanded with NormalizePhrase and the results are
// concatenated preserving element order; duplicates across elements are kept.
func Normalize(q Query) ([]string, error) {
	switch q.kind {
	case queryPhrase:
		return NormalizePhrase(q.phrase)
	case queryList:
		if len(q.list) == 0 {
			return nil, pkgerrors.New(pkgerrors.ErrInvalidArgument, "search term list is empty")
		}
		expanded := make([]string, 0, len(q.list))
		for i, elem := range q.list {
			if elem == "" {
				return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "search term list element %d is empty", i)
			}
			terms, err := NormalizePhrase(elem)
			if err != nil {
				return nil, err
			}
			expanded = append(expanded, terms...)
		}
		return expanded, nil
	default:
		return nil, pkgerrors.New(pkgerrors.ErrInvalidArgument, "search query must be a phrase or a term list")
	}
}
