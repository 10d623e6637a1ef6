// Package wordcount ties the word-count pipeline together: validate input,
// expand the search query into atomic terms, tokenize the source document,
// count, and render either a one-sentence result or a table.
package wordcount

import (
	"fmt"
	"os"

	"textkit/internal/wordcount/counter"
	"textkit/internal/wordcount/table"
	"textkit/internal/wordcount/terms"
	"textkit/internal/wordcount/tokenizer"
	pkgerrors "textkit/pkg/errors"
)

// Summarize reports how often the queried terms appear in sourceText.
//
// A query built from a single phrase that expands to exactly one term yields
// the sentence form; every other shape (a list, or a phrase that expanded to
// several terms) yields the rendered table. The branch looks at the original
// query shape, so a one-element list still renders a table.
func Summarize(sourceText string, q terms.Query) (string, error) {
	if sourceText == "" {
		return "", pkgerrors.New(pkgerrors.ErrInvalidArgument, "source text is empty")
	}
	expanded, err := terms.Normalize(q)
	if err != nil {
		return "", err
	}
	tokens := tokenizer.Tokenize(sourceText)

	if q.IsPhrase() && len(expanded) == 1 {
		term := expanded[0]
		count := counter.CountSingle(term, tokens)
		return fmt.Sprintf("The word '%s' appears %d times.", term, count), nil
	}
	return table.Render(counter.Count(expanded, tokens))
}

// SummarizeFile reads a UTF-8 text document in full, then summarises it.
// Read failures surface as ErrIO and are not retried.
func SummarizeFile(path string, q terms.Query) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", pkgerrors.Newf(pkgerrors.ErrIO, "reading source file %s: %v", path, err)
	}
	return Summarize(string(data), q)
}
