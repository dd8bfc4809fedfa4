package docfmt

import (
	"encoding/csv"
	"io"
)

// renderCSV writes a canonical sequence of mappings as CSV. Column
// headers come from the first record's key set, a deliberate lossy
// policy: fields present only in later records are silently dropped,
// fields absent in later records render as empty cells.
func renderCSV(w io.Writer, v any) error {
	records, err := rowRecords(v)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	header := records[0].Keys()
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, record := range records {
		row := make([]string, len(header))
		for i, key := range header {
			if value, ok := record.Get(key); ok {
				row[i] = cellString(value)
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
