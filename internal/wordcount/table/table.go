// Package table renders an ordered term→count mapping as a fixed-width
// bordered text table with WORD/COUNT header and a trailing TOTAL row.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"textkit/internal/wordcount/counter"
	pkgerrors "textkit/pkg/errors"
)

const (
	labelHeader = "WORD"
	valueHeader = "COUNT"
	totalLabel  = "TOTAL"
)

// Render produces the table as a single immutable string. Column widths are
// driven by the longest key and the widest rendered count, with "TOTAL" and
// "COUNT" as floors; an empty mapping still renders the header and a TOTAL
// of zero. Negative counts are rejected.
func Render(counts *counter.Counts) (string, error) {
	entries := counts.Entries()

	total := 0
	labelWidth := len(totalLabel)
	valueWidth := len(valueHeader)
	for _, e := range entries {
		if e.Count < 0 {
			return "", pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "count for %q is negative", e.Term)
		}
		total += e.Count
		if len(e.Term) > labelWidth {
			labelWidth = len(e.Term)
		}
		if w := len(strconv.Itoa(e.Count)); w > valueWidth {
			valueWidth = w
		}
	}
	if w := len(strconv.Itoa(total)); w > valueWidth {
		valueWidth = w
	}

	border := "|" + strings.Repeat("-", labelWidth+2) + "|" + strings.Repeat("-", valueWidth+2) + "|"

	lines := make([]string, 0, len(entries)+6)
	lines = append(lines, border)
	lines = append(lines, fmt.Sprintf("| %-*s | %*s |", labelWidth, labelHeader, valueWidth, valueHeader))
	lines = append(lines, border)
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("| %-*s | %*d |", labelWidth, e.Term, valueWidth, e.Count))
	}
	lines = append(lines, border)
	lines = append(lines, fmt.Sprintf("| %-*s | %*d |", labelWidth, totalLabel, valueWidth, total))
	lines = append(lines, border)

	return strings.Join(lines, "\n"), nil
}
