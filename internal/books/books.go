// Package books holds the in-memory book catalog: ISBN validation and
// display formatting, filtering by title, author, and price, sorting, and a
// wrapped-column table renderer. Every operation returns a new Catalog; the
// receiver is never mutated.
package books

import (
	"log/slog"
	"sort"
	"strings"

	pkgerrors "textkit/pkg/errors"
	"textkit/pkg/logger"
)

// Book is a single catalog record.
type Book struct {
	ISBN   string  `json:"ISBN"`
	Title  string  `json:"Title"`
	Author string  `json:"Author"`
	Price  float64 `json:"Price"`
}

// Catalog is an ordered, immutable collection of books.
type Catalog struct {
	books  []Book
	logger *slog.Logger
}

// NewCatalog copies the given books into a catalog, preserving order.
func NewCatalog(books []Book) Catalog {
	copied := make([]Book, len(books))
	copy(copied, books)
	return Catalog{
		books:  copied,
		logger: logger.WithComponent("books"),
	}
}

// Books returns a copy of the catalog contents in order.
func (c Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// Len returns the number of books.
func (c Catalog) Len() int {
	return len(c.books)
}

// Validate splits the catalog into books with valid ISBN check digits and
// the removed rest. Malformed ISBNs (wrong length, non-digits) propagate as
// errors; a failed check digit only removes the book.
func (c Catalog) Validate() (Catalog, []Book, error) {
	valid := make([]Book, 0, len(c.books))
	var removed []Book
	for _, book := range c.books {
		ok, err := ValidISBN(book.ISBN)
		if err != nil {
			return Catalog{}, nil, err
		}
		if ok {
			valid = append(valid, book)
		} else {
			c.logger.Warn("removing book with invalid ISBN", "title", book.Title, "isbn", book.ISBN)
			removed = append(removed, book)
		}
	}
	return NewCatalog(valid), removed, nil
}

// ByTitle keeps books whose title contains substr, case-insensitively.
func (c Catalog) ByTitle(substr string) Catalog {
	return c.filter(func(b Book) bool {
		return strings.Contains(strings.ToLower(b.Title), strings.ToLower(substr))
	})
}

// ByAuthor keeps books whose author contains substr, case-insensitively.
func (c Catalog) ByAuthor(substr string) Catalog {
	return c.filter(func(b Book) bool {
		return strings.Contains(strings.ToLower(b.Author), strings.ToLower(substr))
	})
}

// OverPrice keeps books strictly more expensive than price.
func (c Catalog) OverPrice(price float64) Catalog {
	return c.filter(func(b Book) bool {
		return b.Price > price
	})
}

// SortedBy returns the catalog ordered by "title", "author", or "price"
// (case-insensitive field name), descending when desc is set.
func (c Catalog) SortedBy(field string, desc bool) (Catalog, error) {
	var less func(a, b Book) bool
	switch strings.ToLower(field) {
	case "title":
		less = func(a, b Book) bool { return a.Title < b.Title }
	case "author":
		less = func(a, b Book) bool { return a.Author < b.Author }
	case "price":
		less = func(a, b Book) bool { return a.Price < b.Price }
	default:
		return Catalog{}, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
			"%q must be one of 'Price', 'Title', or 'Author'", field)
	}

	sorted := c.Books()
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return NewCatalog(sorted), nil
}

// Limit returns at most n books from the front of the catalog. Negative n
// means no limit.
func (c Catalog) Limit(n int) Catalog {
	if n < 0 || n >= len(c.books) {
		return NewCatalog(c.books)
	}
	return NewCatalog(c.books[:n])
}

func (c Catalog) filter(keep func(Book) bool) Catalog {
	filtered := make([]Book, 0, len(c.books))
	for _, b := range c.books {
		if keep(b) {
			filtered = append(filtered, b)
		}
	}
	return NewCatalog(filtered)
}
