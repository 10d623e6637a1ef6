// Package dataset implements tabular cleaning over string-celled frames:
// splitting packed columns, dropping degenerate rows, pairwise and sign
// consistency checks, group-mean imputation, deduplication, and summary
// statistics. Cells parse to float64 on demand; anything unparseable is NaN.
// Every operation returns a new Frame.
package dataset

import (
	"encoding/csv"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	pkgerrors "textkit/pkg/errors"
	"textkit/pkg/logger"
)

// Frame is an ordered set of named columns over rows of string cells.
type Frame struct {
	cols   []string
	rows   [][]string
	logger *slog.Logger
}

// New builds a frame from column names and rows, copying both. Every row
// must match the column count.
func New(cols []string, rows [][]string) (Frame, error) {
	for i, row := range rows {
		if len(row) != len(cols) {
			return Frame{}, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
				"row %d has %d cells, want %d", i, len(row), len(cols))
		}
	}
	copiedCols := make([]string, len(cols))
	copy(copiedCols, cols)
	copiedRows := make([][]string, len(rows))
	for i, row := range rows {
		copiedRows[i] = make([]string, len(row))
		copy(copiedRows[i], row)
	}
	return Frame{
		cols:   copiedCols,
		rows:   copiedRows,
		logger: logger.WithComponent("dataset"),
	}, nil
}

// FromCSV reads a frame from CSV data; the first record is the header.
func FromCSV(r io.Reader) (Frame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return Frame{}, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "reading csv: %v", err)
	}
	if len(records) == 0 {
		return Frame{}, pkgerrors.New(pkgerrors.ErrInvalidArgument, "csv has no header row")
	}
	return New(records[0], records[1:])
}

// ReadFile reads a CSV file into a frame.
func ReadFile(path string) (Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return Frame{}, pkgerrors.Newf(pkgerrors.ErrIO, "opening %s: %v", path, err)
	}
	defer f.Close()
	frame, err := FromCSV(f)
	if err != nil {
		return Frame{}, err
	}
	frame.logger.Info("loaded dataset", "path", path, "columns", len(frame.cols), "rows", len(frame.rows))
	return frame, nil
}

// Columns returns a copy of the column names in order.
func (f Frame) Columns() []string {
	out := make([]string, len(f.cols))
	copy(out, f.cols)
	return out
}

// Rows returns a copy of the rows in order.
func (f Frame) Rows() [][]string {
	out := make([][]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = make([]string, len(row))
		copy(out[i], row)
	}
	return out
}

// Len returns the number of rows.
func (f Frame) Len() int {
	return len(f.rows)
}

// columnIndex resolves a column name, case-sensitively.
func (f Frame) columnIndex(name string) (int, error) {
	for i, col := range f.cols {
		if col == name {
			return i, nil
		}
	}
	return 0, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
		"no column %q: columns are %s", name, strings.Join(f.cols, ", "))
}

// cellValue parses a cell as float64. Empty, whitespace, and unparseable
// cells are NaN.
func cellValue(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func cellMissing(cell string) bool {
	return math.IsNaN(cellValue(cell))
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Removed summarizes how many rows a cleaning step dropped.
type Removed struct {
	Count   int
	Percent float64
}

func (r Removed) String() string {
	return strconv.Itoa(r.Count) + " rows removed (" + strconv.FormatFloat(r.Percent, 'f', 2, 64) + "%)"
}

// RemovedStats reports the row count delta between two frame sizes.
func RemovedStats(before, after int) Removed {
	removed := before - after
	percent := 0.0
	if before > 0 {
		percent = float64(removed) / float64(before) * 100
	}
	return Removed{Count: removed, Percent: percent}
}
