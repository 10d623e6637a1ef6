package comments

import (
	"strconv"
	"strings"

	"textkit/pkg/textutil"
)

// Fixed column widths; only the body column is configurable.
const (
	idColumnWidth       = 3
	postIDColumnWidth   = 7
	nameColumnWidth     = 10
	emailColumnWidth    = 12
	postInfoColumnWidth = 16

	defaultPreviewNameLen = 16
	defaultPreviewBodyLen = 26
)

// RenderOptions controls the comment table layout.
type RenderOptions struct {
	// BodyWrapWidth is the body column width; zero means the default of 24.
	BodyWrapWidth int
	// Preview truncates names and bodies to a fixed length instead of
	// wrapping them.
	Preview bool
	// PreviewNameLen and PreviewBodyLen override the truncation lengths;
	// zero means the defaults of 16 and 26.
	PreviewNameLen int
	PreviewBodyLen int
	// ShowPostInfo adds the post-info column.
	ShowPostInfo bool
}

func (o RenderOptions) previewLens() (int, int) {
	name, body := o.PreviewNameLen, o.PreviewBodyLen
	if name < 1 {
		name = defaultPreviewNameLen
	}
	if body < 1 {
		body = defaultPreviewBodyLen
	}
	return name, body
}

// Render produces the set as a bordered table. Every cell is wrapped to its
// column width and the rows of a record are padded so the borders stay
// aligned; a separator line follows each record.
func (s Set) Render(opts RenderOptions) (string, error) {
	if len(s.comments) == 0 {
		return "No comments found.", nil
	}

	bodyWidth := opts.BodyWrapWidth
	if bodyWidth < 1 {
		bodyWidth = 24
	}
	nameWidth := nameColumnWidth
	if opts.Preview {
		nameLen, bodyLen := opts.previewLens()
		// Room for the "..." suffix keeps previewed cells on one line.
		nameWidth = nameLen + 3
		bodyWidth = bodyLen + 3
	}

	widths := []int{idColumnWidth, postIDColumnWidth, nameWidth, emailColumnWidth, bodyWidth}
	headers := []string{"ID", "Post ID", "Name", "Email", "Body"}
	if opts.ShowPostInfo {
		widths = append(widths, postInfoColumnWidth)
		headers = append(headers, "Post Info")
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

	for _, c := range s.comments {
		cells, err := s.recordCells(c, opts, widths)
		if err != nil {
			return "", err
		}
		height := 0
		for _, lines := range cells {
			if len(lines) > height {
				height = len(lines)
			}
		}
		for row := 0; row < height; row++ {
			values := make([]string, len(cells))
			for col, lines := range cells {
				if row < len(lines) {
					values[col] = lines[row]
				}
			}
			sb.WriteString(renderRow(values, widths) + "\n")
		}
		sb.WriteString(separator + "\n")
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// recordCells wraps one comment into per-column line lists.
func (s Set) recordCells(c Comment, opts RenderOptions, widths []int) ([][]string, error) {
	name, body := c.Name, c.Body
	if opts.Preview {
		nameLen, bodyLen := opts.previewLens()
		name = textutil.Preview(name, nameLen)
		body = textutil.Preview(body, bodyLen)
	}

	columns := []string{strconv.Itoa(c.ID), strconv.Itoa(c.PostID), name, c.Email, body}
	if opts.ShowPostInfo {
		columns = append(columns, c.PostInfo)
	}

	cells := make([][]string, len(columns))
	for i, text := range columns {
		lines, err := wrapCell(text, widths[i])
		if err != nil {
			return nil, err
		}
		cells[i] = lines
	}
	return cells, nil
}

// wrapCell wraps a cell value, honoring embedded newlines (post-info blocks
// are already line-structured).
func wrapCell(text string, width int) ([]string, error) {
	var out []string
	for _, segment := range strings.Split(text, "\n") {
		lines, err := textutil.Wrap(segment, width)
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			lines = []string{""}
		}
		out = append(out, lines...)
	}
	return out, nil
}

func renderRow(values []string, widths []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = textutil.PadRight(v, widths[i])
	}
	return "| " + strings.Join(parts, " | ") + " |"
}
