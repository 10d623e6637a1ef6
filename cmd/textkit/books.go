package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"textkit/internal/books"
	pkgerrors "textkit/pkg/errors"
)

func newBooksCommand() *cobra.Command {
	var (
		catalogPath string
		title       string
		author      string
		overPrice   float64
		sortField   string
		desc        bool
		limit       int
		validate    bool
	)

	cmd := &cobra.Command{
		Use:   "books",
		Short: "Filter and render the book catalog",
		Long: `books renders a book catalog as a bordered table with hyphenated ISBNs
and wrapped titles. Without --file the built-in sample catalog is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			if validate {
				valid, removed, err := catalog.Validate()
				if err != nil {
					return err
				}
				for _, book := range removed {
					color.Yellow("removed %q: ISBN %s fails its check digit", book.Title, book.ISBN)
				}
				catalog = valid
			}
			if title != "" {
				catalog = catalog.ByTitle(title)
			}
			if author != "" {
				catalog = catalog.ByAuthor(author)
			}
			if cmd.Flags().Changed("over-price") {
				catalog = catalog.OverPrice(overPrice)
			}
			if sortField != "" {
				catalog, err = catalog.SortedBy(sortField, desc)
				if err != nil {
					return err
				}
			}
			catalog = catalog.Limit(limit)

			out, err := catalog.Render(cfg.Books.TitleWrapWidth)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "file", "", "JSON catalog file (defaults to the sample catalog)")
	cmd.Flags().StringVar(&title, "title", "", "keep books whose title contains this text")
	cmd.Flags().StringVar(&author, "author", "", "keep books whose author contains this text")
	cmd.Flags().Float64Var(&overPrice, "over-price", 0, "keep books strictly above this price")
	cmd.Flags().StringVar(&sortField, "sort", "", "sort by title, author, or price")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&limit, "limit", -1, "maximum number of books to show")
	cmd.Flags().BoolVar(&validate, "validate", false, "drop books whose ISBN check digit fails")
	return cmd
}

func loadCatalog(path string) (books.Catalog, error) {
	if path == "" {
		return books.SampleCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return books.Catalog{}, pkgerrors.Newf(pkgerrors.ErrIO, "reading catalog %s: %v", path, err)
	}
	var records []books.Book
	if err := json.Unmarshal(data, &records); err != nil {
		return books.Catalog{}, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "parsing catalog %s: %v", path, err)
	}
	return books.NewCatalog(records), nil
}
