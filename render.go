package docfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Format represents an output format.
type Format string

const (
	JSON  Format = "json"
	YAML  Format = "yaml"
	CSV   Format = "csv"
	Table Format = "table"
)

var formats = []Format{JSON, YAML, CSV, Table}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string, typically a CLI flag value.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Render writes the canonical value v to w in the given format. The
// value must be canonical, i.e. produced by [Normalizer.Normalize] or
// assembled from canonical parts.
func Render(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		return renderJSON(w, v)
	case YAML:
		return renderYAML(w, v)
	case CSV:
		return renderCSV(w, v)
	case Table:
		return renderTable(w, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// RenderString renders the canonical value v and returns the text with
// no trailing newline; the [Writer] appends one for stream
// destinations.
func RenderString(f Format, v any) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, f, v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// renderJSON serializes with a fixed 2-space indent. The normalizer
// guarantees a serializable tree, so a marshal failure can only come
// from a hand-assembled value; it coerces to the string form rather
// than failing.
func renderJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		_, werr := io.WriteString(w, stringify(v))
		return werr
	}
	_, err = w.Write(data)
	return err
}

// rowRecords checks the sequence-of-mappings shape shared by the CSV
// and table renderers.
func rowRecords(v any) ([]*orderedmap.OrderedMap, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrRowShape, v)
	}
	records := make([]*orderedmap.OrderedMap, len(seq))
	for i, item := range seq {
		m, ok := item.(*orderedmap.OrderedMap)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T", ErrRowShape, i, item)
		}
		records[i] = m
	}
	return records, nil
}

// cellString flattens a canonical value into a single CSV or table
// cell. Nested mappings and sequences render as compact JSON.
func cellString(v any) string {
	switch v.(type) {
	case nil:
		return ""
	case *orderedmap.OrderedMap, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return stringify(v)
		}
		return string(data)
	default:
		return stringify(v)
	}
}
