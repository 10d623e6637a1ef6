package books

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"textkit/pkg/textutil"
)

const isbnColumnWidth = 19

// Render produces the catalog as a bordered table. Titles are hard-wrapped
// to titleWrapWidth and the sibling cells of a wrapped row are padded with
// blanks so the borders stay aligned. Author and price columns size to their
// longest value. An empty catalog renders a short notice instead.
func (c Catalog) Render(titleWrapWidth int) (string, error) {
	if len(c.books) == 0 {
		return "No books found.", nil
	}
	if titleWrapWidth < 1 {
		titleWrapWidth = 18
	}

	authorWidth := utf8.RuneCountInString("Author")
	priceHeader := "Price (£)"
	priceWidth := utf8.RuneCountInString(priceHeader)
	for _, b := range c.books {
		if w := utf8.RuneCountInString(b.Author); w > authorWidth {
			authorWidth = w
		}
		if w := len(fmt.Sprintf("%.2f", b.Price)); w > priceWidth {
			priceWidth = w
		}
	}

	totalWidth := isbnColumnWidth + titleWrapWidth + authorWidth + priceWidth + 13
	separator := strings.Repeat("-", totalWidth)

	var sb strings.Builder
	sb.WriteString(separator + "\n")
	sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
		textutil.PadRight("ISBN", isbnColumnWidth),
		textutil.PadRight("Title", titleWrapWidth),
		textutil.PadRight("Author", authorWidth),
		textutil.PadLeft(priceHeader, priceWidth),
	))
	sb.WriteString(separator + "\n")

	for _, book := range c.books {
		titleLines, err := textutil.Wrap(book.Title, titleWrapWidth)
		if err != nil {
			return "", err
		}
		if len(titleLines) == 0 {
			titleLines = []string{""}
		}
		isbn, err := FormatISBN(book.ISBN)
		if err != nil {
			return "", err
		}

		for i, titleLine := range titleLines {
			isbnCell, authorCell, priceCell := "", "", ""
			if i == 0 {
				isbnCell = isbn
				authorCell = book.Author
				priceCell = fmt.Sprintf("%.2f", book.Price)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				textutil.PadRight(isbnCell, isbnColumnWidth),
				textutil.PadRight(titleLine, titleWrapWidth),
				textutil.PadRight(authorCell, authorWidth),
				textutil.PadLeft(priceCell, priceWidth),
			))
		}
	}
	sb.WriteString(separator)
	return sb.String(), nil
}
