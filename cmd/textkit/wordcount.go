package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"textkit/internal/wordcount"
	"textkit/internal/wordcount/terms"
	pkgerrors "textkit/pkg/errors"
)

func newWordcountCommand() *cobra.Command {
	var (
		sourcePath string
		asList     bool
	)

	cmd := &cobra.Command{
		Use:   "wordcount [terms...]",
		Short: "Count term occurrences in a text file",
		Long: `wordcount tokenizes a source text and counts the given search terms.
A single term renders a one-line sentence; several terms, or --list, render
a bordered count table with a TOTAL row.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := sourcePath
			if path == "" {
				path = cfg.WordCount.SourcePath
			}
			if path == "" {
				return pkgerrors.New(pkgerrors.ErrInvalidArgument,
					"no source text: pass --file or set wordcount.sourcePath")
			}

			var query terms.Query
			if len(args) == 1 && !asList {
				query = terms.Phrase(args[0])
			} else {
				query = terms.List(args)
			}

			out, err := wordcount.SummarizeFile(path, query)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&sourcePath, "file", "", "text file to count terms in")
	cmd.Flags().BoolVar(&asList, "list", false,
		"treat a single term as a one-element list (always renders a table)")

	cmd.Example = strings.TrimSpace(`
  textkit wordcount --file speech.txt liberty
  textkit wordcount --file speech.txt the people union`)
	return cmd
}
