package dataset

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"textkit/pkg/textutil"
)

// ColumnStats holds the summary statistics of one numeric column. Count
// excludes missing cells; the moment statistics are NaN when too few values
// exist to define them.
type ColumnStats struct {
	Column  string
	Count   int
	Missing int
	Mean    float64
	Std     float64
	Var     float64
	Min     float64
	Q1      float64
	Median  float64
	Q3      float64
	Max     float64
	IQR     float64
	Skew    float64
	Range   float64
}

// Describe computes summary statistics for the listed columns, or for every
// column when none are given.
func (f Frame) Describe(cols ...string) ([]ColumnStats, error) {
	if len(cols) == 0 {
		cols = f.Columns()
	}

	out := make([]ColumnStats, len(cols))
	for i, name := range cols {
		idx, err := f.columnIndex(name)
		if err != nil {
			return nil, err
		}

		values := make([]float64, 0, len(f.rows))
		missing := 0
		for _, row := range f.rows {
			v := cellValue(row[idx])
			if math.IsNaN(v) {
				missing++
				continue
			}
			values = append(values, v)
		}
		out[i] = describeColumn(name, values, missing)
	}
	return out, nil
}

func describeColumn(name string, values []float64, missing int) ColumnStats {
	stats := ColumnStats{
		Column:  name,
		Count:   len(values),
		Missing: missing,
		Mean:    math.NaN(),
		Std:     math.NaN(),
		Var:     math.NaN(),
		Min:     math.NaN(),
		Q1:      math.NaN(),
		Median:  math.NaN(),
		Q3:      math.NaN(),
		Max:     math.NaN(),
		IQR:     math.NaN(),
		Skew:    math.NaN(),
		Range:   math.NaN(),
	}
	if len(values) == 0 {
		return stats
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / n

	stats.Mean = mean
	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.Range = stats.Max - stats.Min
	stats.Q1 = quantile(sorted, 0.25)
	stats.Median = quantile(sorted, 0.5)
	stats.Q3 = quantile(sorted, 0.75)
	stats.IQR = stats.Q3 - stats.Q1

	m2, m3 := 0.0, 0.0
	for _, v := range sorted {
		d := v - mean
		m2 += d * d
		m3 += d * d * d
	}
	if len(sorted) > 1 {
		stats.Var = m2 / (n - 1)
		stats.Std = math.Sqrt(stats.Var)
	}
	if len(sorted) > 2 && stats.Std > 0 {
		// Adjusted Fisher-Pearson coefficient.
		g1 := (m3 / n) / math.Pow(m2/n, 1.5)
		stats.Skew = g1 * math.Sqrt(n*(n-1)) / (n - 2)
	}
	return stats
}

// quantile interpolates linearly between the closest ranks of a sorted
// sample.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	frac := pos - float64(lower)
	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

var statRows = []struct {
	label string
	value func(ColumnStats) string
}{
	{"count", func(s ColumnStats) string { return fmt.Sprintf("%d", s.Count) }},
	{"missing", func(s ColumnStats) string { return fmt.Sprintf("%d", s.Missing) }},
	{"mean", func(s ColumnStats) string { return formatStat(s.Mean) }},
	{"std", func(s ColumnStats) string { return formatStat(s.Std) }},
	{"var", func(s ColumnStats) string { return formatStat(s.Var) }},
	{"min", func(s ColumnStats) string { return formatStat(s.Min) }},
	{"25%", func(s ColumnStats) string { return formatStat(s.Q1) }},
	{"50%", func(s ColumnStats) string { return formatStat(s.Median) }},
	{"75%", func(s ColumnStats) string { return formatStat(s.Q3) }},
	{"max", func(s ColumnStats) string { return formatStat(s.Max) }},
	{"IQR", func(s ColumnStats) string { return formatStat(s.IQR) }},
	{"range", func(s ColumnStats) string { return formatStat(s.Range) }},
	{"skew", func(s ColumnStats) string { return formatStat(s.Skew) }},
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.4f", v)
}

// RenderStats lays out column statistics as a bordered table, one column per
// described frame column.
func RenderStats(stats []ColumnStats) string {
	if len(stats) == 0 {
		return "No columns described."
	}

	labelWidth := 0
	for _, row := range statRows {
		if len(row.label) > labelWidth {
			labelWidth = len(row.label)
		}
	}
	widths := make([]int, len(stats))
	for i, s := range stats {
		widths[i] = len(s.Column)
		for _, row := range statRows {
			if w := len(row.value(s)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	totalWidth := labelWidth + 4
	for _, w := range widths {
		totalWidth += w + 3
	}
	separator := strings.Repeat("-", totalWidth)

	var sb strings.Builder
	sb.WriteString(separator + "\n")
	sb.WriteString("| " + textutil.PadRight("", labelWidth))
	for i, s := range stats {
		sb.WriteString(" | " + textutil.PadLeft(s.Column, widths[i]))
	}
	sb.WriteString(" |\n" + separator + "\n")

	for _, row := range statRows {
		sb.WriteString("| " + textutil.PadRight(row.label, labelWidth))
		for i, s := range stats {
			sb.WriteString(" | " + textutil.PadLeft(row.value(s), widths[i]))
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString(separator)
	return sb.String()
}
