package measure

import (
	"fmt"
	"strings"

	"textkit/pkg/textutil"
)

// RenderResults lays out observations as a bordered table with one row per
// measured size.
func RenderResults(results []Result) string {
	if len(results) == 0 {
		return "No measurements."
	}

	headers := []string{"SIZE", "SECONDS", "BYTES"}
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			fmt.Sprintf("%d", r.Size),
			fmt.Sprintf("%.6f", r.Seconds),
			fmt.Sprintf("%d", r.Bytes),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	totalWidth := 1
	for _, w := range widths {
		totalWidth += w + 3
	}
	separator := strings.Repeat("-", totalWidth)

	var sb strings.Builder
	sb.WriteString(separator + "\n")
	sb.WriteString(renderRow(headers, widths) + "\n")
	sb.WriteString(separator + "\n")
	for _, row := range rows {
		sb.WriteString(renderRow(row, widths) + "\n")
	}
	sb.WriteString(separator)
	return sb.String()
}

func renderRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = textutil.PadLeft(cell, widths[i])
	}
	return "| " + strings.Join(parts, " | ") + " |"
}
