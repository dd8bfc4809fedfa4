package docfmt

import (
	"io"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/mattn/go-runewidth"
)

// tablePadding is the fixed inter-column (and leading) padding.
const tablePadding = 2

// renderTable writes a canonical value as a fixed-width table. A
// sequence of mappings renders one row per record with columns from
// the first record's key set, like CSV. A lone mapping renders as a
// two-column Field/Value table, the shape detail views use.
func renderTable(w io.Writer, v any) error {
	if m, ok := v.(*orderedmap.OrderedMap); ok {
		rows := make([][]string, 0, len(m.Keys()))
		for _, key := range m.Keys() {
			value, _ := m.Get(key)
			rows = append(rows, []string{key, cellString(value)})
		}
		_, err := io.WriteString(w, FormatTable([]string{"Field", "Value"}, rows))
		return err
	}

	records, err := rowRecords(v)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	header := records[0].Keys()
	rows := make([][]string, len(records))
	for i, record := range records {
		row := make([]string, len(header))
		for j, key := range header {
			if value, ok := record.Get(key); ok {
				row[j] = cellString(value)
			}
		}
		rows[i] = row
	}
	_, err = io.WriteString(w, FormatTable(header, rows))
	return err
}

// FormatTable renders headers and rows as a fixed-width table: a
// header line, a separator line of dashes exactly as long as the
// header line, then one left-justified row per record. Each column is
// as wide as its widest cell or header; rows wider than the header are
// truncated to the header's columns.
func FormatTable(headers []string, rows [][]string) string {
	pad := strings.Repeat(" ", tablePadding)

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var lines []string
	lines = append(lines, pad+joinCells(headers, widths, pad))
	lines = append(lines, strings.Repeat("-", runewidth.StringWidth(lines[0])))
	for _, row := range rows {
		lines = append(lines, pad+joinCells(row, widths, pad))
	}
	return strings.Join(lines, "\n") + "\n"
}

func joinCells(cells []string, widths []int, pad string) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = ljust(cell, width)
	}
	return strings.Join(parts, pad)
}

func ljust(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
