package dataset

import (
	"sort"
	"strings"

	pkgerrors "textkit/pkg/errors"
)

// SplitColumn splits a single packed column into several named columns. The
// header supplies the new names, split on the same separator; every row must
// split into the same number of cells.
func (f Frame) SplitColumn(sep string) (Frame, error) {
	if len(f.cols) != 1 {
		return Frame{}, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
			"split needs a single packed column, frame has %d", len(f.cols))
	}
	if sep == "" || !strings.Contains(f.cols[0], sep) {
		return Frame{}, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
			"separator %q not present in header %q", sep, f.cols[0])
	}

	newCols := strings.Split(f.cols[0], sep)
	newRows := make([][]string, len(f.rows))
	for i, row := range f.rows {
		cells := strings.Split(row[0], sep)
		if len(cells) != len(newCols) {
			return Frame{}, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
				"row %d splits into %d cells, want %d", i, len(cells), len(newCols))
		}
		newRows[i] = cells
	}

	out, err := New(newCols, newRows)
	if err != nil {
		return Frame{}, err
	}
	f.logger.Info("split packed column",
		"columns_before", 1, "columns_after", len(newCols), "rows", len(newRows))
	return out, nil
}

// Reorder returns a frame with exactly the named columns, in the given
// order.
func (f Frame) Reorder(order []string) (Frame, error) {
	indices := make([]int, len(order))
	for i, name := range order {
		idx, err := f.columnIndex(name)
		if err != nil {
			return Frame{}, err
		}
		indices[i] = idx
	}

	rows := make([][]string, len(f.rows))
	for i, row := range f.rows {
		rows[i] = make([]string, len(indices))
		for j, idx := range indices {
			rows[i][j] = row[idx]
		}
	}
	return New(order, rows)
}

// SortBy orders rows ascending by the named column, numerically when both
// cells parse and lexically otherwise. The sort is stable.
func (f Frame) SortBy(col string) (Frame, error) {
	idx, err := f.columnIndex(col)
	if err != nil {
		return Frame{}, err
	}

	rows := f.Rows()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := cellValue(rows[i][idx]), cellValue(rows[j][idx])
		if !cellMissing(rows[i][idx]) && !cellMissing(rows[j][idx]) {
			return a < b
		}
		return rows[i][idx] < rows[j][idx]
	})
	return New(f.cols, rows)
}

// ColumnMissing is the per-column missing-cell report.
type ColumnMissing struct {
	Column  string
	Count   int
	Percent float64
}

// MissingCounts reports missing cells per column, with percentage to two
// decimal places of the row count.
func (f Frame) MissingCounts() []ColumnMissing {
	out := make([]ColumnMissing, len(f.cols))
	for i, col := range f.cols {
		count := 0
		for _, row := range f.rows {
			if cellMissing(row[i]) {
				count++
			}
		}
		percent := 0.0
		if len(f.rows) > 0 {
			percent = float64(count) / float64(len(f.rows)) * 100
		}
		out[i] = ColumnMissing{Column: col, Count: count, Percent: percent}
	}
	return out
}

// ToNumeric coerces the listed columns: cells that do not parse as numbers
// are rewritten to NaN.
func (f Frame) ToNumeric(cols []string) (Frame, error) {
	indices := make([]int, len(cols))
	for i, name := range cols {
		idx, err := f.columnIndex(name)
		if err != nil {
			return Frame{}, err
		}
		indices[i] = idx
	}

	rows := f.Rows()
	for _, row := range rows {
		for _, idx := range indices {
			row[idx] = formatValue(cellValue(row[idx]))
		}
	}
	return New(f.cols, rows)
}

// DropEmptyRows removes rows whose cells are all missing, optionally
// ignoring one column. Pass "" to consider every column.
func (f Frame) DropEmptyRows(ignore string) (Frame, Removed, error) {
	return f.dropRows(ignore, func(cell string) bool {
		return cellMissing(cell)
	})
}

// DropZeroRows removes rows whose cells are all zero, optionally ignoring
// one column.
func (f Frame) DropZeroRows(ignore string) (Frame, Removed, error) {
	return f.dropRows(ignore, func(cell string) bool {
		return cellValue(cell) == 0
	})
}

// dropRows removes rows where degenerate holds for every considered cell.
func (f Frame) dropRows(ignore string, degenerate func(string) bool) (Frame, Removed, error) {
	ignoreIdx := -1
	if ignore != "" {
		idx, err := f.columnIndex(ignore)
		if err != nil {
			return Frame{}, Removed{}, err
		}
		ignoreIdx = idx
	}

	kept := make([][]string, 0, len(f.rows))
	for _, row := range f.rows {
		drop := true
		for i, cell := range row {
			if i == ignoreIdx {
				continue
			}
			if !degenerate(cell) {
				drop = false
				break
			}
		}
		if !drop {
			kept = append(kept, row)
		}
	}

	out, err := New(f.cols, kept)
	if err != nil {
		return Frame{}, Removed{}, err
	}
	removed := RemovedStats(len(f.rows), len(kept))
	f.logger.Info("dropped degenerate rows", "removed", removed.Count, "remaining", len(kept))
	return out, removed, nil
}

// MissingPairCount counts rows where the first column is present but the
// second is missing.
func (f Frame) MissingPairCount(first, second string) (int, error) {
	i, err := f.columnIndex(first)
	if err != nil {
		return 0, err
	}
	j, err := f.columnIndex(second)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, row := range f.rows {
		if !cellMissing(row[i]) && cellMissing(row[j]) {
			count++
		}
	}
	return count, nil
}

// DropMissingPair removes rows where the first column is present but the
// second is missing.
func (f Frame) DropMissingPair(first, second string) (Frame, Removed, error) {
	i, err := f.columnIndex(first)
	if err != nil {
		return Frame{}, Removed{}, err
	}
	j, err := f.columnIndex(second)
	if err != nil {
		return Frame{}, Removed{}, err
	}

	kept := make([][]string, 0, len(f.rows))
	for _, row := range f.rows {
		if !cellMissing(row[i]) && cellMissing(row[j]) {
			continue
		}
		kept = append(kept, row)
	}
	out, err := New(f.cols, kept)
	if err != nil {
		return Frame{}, Removed{}, err
	}
	return out, RemovedStats(len(f.rows), len(kept)), nil
}

// DropSignMismatch removes rows where the (a, c) or (b, d) column pairs
// carry values of opposite sign. Missing values never mismatch.
func (f Frame) DropSignMismatch(a, b, c, d string) (Frame, Removed, error) {
	pairs := [2][2]int{}
	for p, names := range [][2]string{{a, c}, {b, d}} {
		for q, name := range names {
			idx, err := f.columnIndex(name)
			if err != nil {
				return Frame{}, Removed{}, err
			}
			pairs[p][q] = idx
		}
	}

	opposite := func(x, y float64) bool {
		return (x > 0 && y < 0) || (x < 0 && y > 0)
	}

	kept := make([][]string, 0, len(f.rows))
	for _, row := range f.rows {
		mismatch := false
		for _, pair := range pairs {
			if opposite(cellValue(row[pair[0]]), cellValue(row[pair[1]])) {
				mismatch = true
				break
			}
		}
		if !mismatch {
			kept = append(kept, row)
		}
	}
	out, err := New(f.cols, kept)
	if err != nil {
		return Frame{}, Removed{}, err
	}
	return out, RemovedStats(len(f.rows), len(kept)), nil
}

// ImputeGroupMeans fills missing cells in the listed columns with the mean
// of the value's group, keyed by the group column. Groups with no observed
// values leave their cells missing.
func (f Frame) ImputeGroupMeans(group string, cols []string) (Frame, error) {
	groupIdx, err := f.columnIndex(group)
	if err != nil {
		return Frame{}, err
	}
	indices := make([]int, len(cols))
	for i, name := range cols {
		idx, err := f.columnIndex(name)
		if err != nil {
			return Frame{}, err
		}
		indices[i] = idx
	}

	type acc struct {
		sum   float64
		count int
	}
	means := make(map[string]map[int]*acc)
	for _, row := range f.rows {
		key := row[groupIdx]
		if means[key] == nil {
			means[key] = make(map[int]*acc)
		}
		for _, idx := range indices {
			if cellMissing(row[idx]) {
				continue
			}
			if means[key][idx] == nil {
				means[key][idx] = &acc{}
			}
			means[key][idx].sum += cellValue(row[idx])
			means[key][idx].count++
		}
	}

	rows := f.Rows()
	filled := 0
	for _, row := range rows {
		for _, idx := range indices {
			if !cellMissing(row[idx]) {
				continue
			}
			if a := means[row[groupIdx]][idx]; a != nil && a.count > 0 {
				row[idx] = formatValue(a.sum / float64(a.count))
				filled++
			}
		}
	}

	out, err := New(f.cols, rows)
	if err != nil {
		return Frame{}, err
	}
	f.logger.Info("imputed group means", "group", group, "filled", filled)
	return out, nil
}

// Dedupe removes exact duplicate rows, keeping the first occurrence.
func (f Frame) Dedupe() (Frame, Removed, error) {
	seen := make(map[string]bool, len(f.rows))
	kept := make([][]string, 0, len(f.rows))
	for _, row := range f.rows {
		key := strings.Join(row, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, row)
	}
	out, err := New(f.cols, kept)
	if err != nil {
		return Frame{}, Removed{}, err
	}
	return out, RemovedStats(len(f.rows), len(kept)), nil
}
