package main

import (
	"encoding/csv"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"textkit/internal/dataset"
	pkgerrors "textkit/pkg/errors"
)

func newDatasetCommand() *cobra.Command {
	var (
		splitSep    string
		reorder     []string
		sortBy      string
		toNumeric   []string
		dropEmpty   bool
		dropZero    bool
		ignore      string
		pairFirst   string
		pairSecond  string
		signCols    []string
		imputeGroup string
		imputeCols  []string
		dedupe      bool
		describe    bool
		missing     bool
	)

	cmd := &cobra.Command{
		Use:   "dataset <file.csv>",
		Short: "Clean and summarize a CSV dataset",
		Long: `dataset applies cleaning steps to a CSV file in flag order: split a
packed column, coerce columns to numbers, drop degenerate rows, impute
group means, and deduplicate. The cleaned rows are written to stdout as
CSV unless --describe or --missing asks for a summary instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := dataset.ReadFile(args[0])
			if err != nil {
				return err
			}

			if splitSep != "" {
				if frame, err = frame.SplitColumn(splitSep); err != nil {
					return err
				}
			}
			if len(toNumeric) > 0 {
				if frame, err = frame.ToNumeric(toNumeric); err != nil {
					return err
				}
			}
			if len(reorder) > 0 {
				if frame, err = frame.Reorder(reorder); err != nil {
					return err
				}
			}

			var removed dataset.Removed
			if dropEmpty {
				if frame, removed, err = frame.DropEmptyRows(ignore); err != nil {
					return err
				}
				color.Yellow("empty rows: %s", removed)
			}
			if dropZero {
				if frame, removed, err = frame.DropZeroRows(ignore); err != nil {
					return err
				}
				color.Yellow("all-zero rows: %s", removed)
			}
			if pairFirst != "" && pairSecond != "" {
				if frame, removed, err = frame.DropMissingPair(pairFirst, pairSecond); err != nil {
					return err
				}
				color.Yellow("half-missing pairs: %s", removed)
			}
			if len(signCols) > 0 {
				if len(signCols) != 4 {
					return pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
						"--sign-cols needs exactly four columns, got %d", len(signCols))
				}
				if frame, removed, err = frame.DropSignMismatch(signCols[0], signCols[1], signCols[2], signCols[3]); err != nil {
					return err
				}
				color.Yellow("sign mismatches: %s", removed)
			}
			if imputeGroup != "" {
				if frame, err = frame.ImputeGroupMeans(imputeGroup, imputeCols); err != nil {
					return err
				}
			}
			if dedupe {
				if frame, removed, err = frame.Dedupe(); err != nil {
					return err
				}
				color.Yellow("duplicates: %s", removed)
			}
			if sortBy != "" {
				if frame, err = frame.SortBy(sortBy); err != nil {
					return err
				}
			}

			if missing {
				for _, m := range frame.MissingCounts() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %d missing (%.2f%%)\n", m.Column, m.Count, m.Percent)
				}
				return nil
			}
			if describe {
				stats, err := frame.Describe()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), dataset.RenderStats(stats))
				return nil
			}
			return writeCSV(cmd, frame)
		},
	}

	cmd.Flags().StringVar(&splitSep, "split", "", "split a single packed column on this separator")
	cmd.Flags().StringSliceVar(&reorder, "reorder", nil, "keep exactly these columns, in order")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "sort rows ascending by this column")
	cmd.Flags().StringSliceVar(&toNumeric, "to-numeric", nil, "coerce these columns to numbers")
	cmd.Flags().BoolVar(&dropEmpty, "drop-empty", false, "drop rows whose cells are all missing")
	cmd.Flags().BoolVar(&dropZero, "drop-zero", false, "drop rows whose cells are all zero")
	cmd.Flags().StringVar(&ignore, "ignore", "", "column to ignore when dropping rows")
	cmd.Flags().StringVar(&pairFirst, "pair-first", "", "pair column that must not be alone")
	cmd.Flags().StringVar(&pairSecond, "pair-second", "", "pair column whose absence drops the row")
	cmd.Flags().StringSliceVar(&signCols, "sign-cols", nil, "four columns (a,b,c,d) checked pairwise for sign agreement")
	cmd.Flags().StringVar(&imputeGroup, "impute-group", "", "group column for mean imputation")
	cmd.Flags().StringSliceVar(&imputeCols, "impute-cols", nil, "columns to impute with group means")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "drop exact duplicate rows")
	cmd.Flags().BoolVar(&describe, "describe", false, "print summary statistics instead of rows")
	cmd.Flags().BoolVar(&missing, "missing", false, "print per-column missing counts instead of rows")
	return cmd
}

func writeCSV(cmd *cobra.Command, frame dataset.Frame) error {
	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write(frame.Columns()); err != nil {
		return err
	}
	if err := w.WriteAll(frame.Rows()); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
