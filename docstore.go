package docfmt

import (
	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Convenience wrappers around normalize-then-render for the response
// shapes document-store clients return. Each accepts the raw client
// response as opaque values; normalization absorbs whatever shape the
// SDK produced.

// FormatCollectionList renders a collection listing. Each element
// contributes one {"name": ...} record; elements without a name field
// list as "Unknown".
func FormatCollectionList(f Format, collections []any) (string, error) {
	n := NewNormalizer()
	out := make([]any, 0, len(collections))
	for _, c := range collections {
		var name any = "Unknown"
		switch v := n.Normalize(c).(type) {
		case *orderedmap.OrderedMap:
			if nv, found := v.Get("name"); found {
				name = nv
			}
		case string:
			name = v
		}
		out = append(out, orderedmap.FromPairs([]orderedmap.Pair{{Key: "name", Value: name}}))
	}
	return RenderString(f, out)
}

// FormatCollectionInfo renders the detail view of one collection. The
// result is a mapping carrying the collection name plus the normalized
// info fields; null-valued fields are omitted, the shape detail
// consumers expect.
func FormatCollectionInfo(f Format, name string, info any) (string, error) {
	n := NewNormalizer()
	n.Mode = OmitNulls
	data := orderedmap.New()
	data.Set("name", name)
	switch v := n.Normalize(info).(type) {
	case *orderedmap.OrderedMap:
		for _, key := range v.Keys() {
			value, _ := v.Get(key)
			data.Set(key, value)
		}
	default:
		data.Set("info", v)
	}
	return RenderString(f, data)
}

// FormatDocuments renders retrieved or matched documents. Each
// document keeps its own fields; store-internal fields (underscore
// prefixed) are dropped, and vector data is included only on request.
// Documents that do not normalize to a mapping pass through unchanged.
func FormatDocuments(f Format, documents []any, withVectors bool) (string, error) {
	n := NewNormalizer()
	out := make([]any, 0, len(documents))
	for _, document := range documents {
		normalized := n.Normalize(document)
		m, ok := normalized.(*orderedmap.OrderedMap)
		if !ok {
			out = append(out, normalized)
			continue
		}
		doc := orderedmap.New()
		for _, key := range m.Keys() {
			if len(key) > 0 && key[0] == '_' {
				continue
			}
			if key == "vector" && !withVectors {
				continue
			}
			value, _ := m.Get(key)
			doc.Set(key, value)
		}
		out = append(out, doc)
	}
	return RenderString(f, out)
}

// FormatCount renders the result of a count operation as
// {"count": N}. The count is read from a count field or key; a plain
// numeric result is used as is. When no count can be found the value
// degrades to an explanatory string rather than failing.
func FormatCount(f Format, result any) (string, error) {
	n := NewNormalizer()
	var count any
	switch v := n.Normalize(result).(type) {
	case *orderedmap.OrderedMap:
		if c, found := v.Get("count"); found {
			count = c
		}
	case int64, uint64, float64:
		count = v
	}
	if count == nil {
		count = "Error: Count unavailable"
	}
	return RenderString(f, orderedmap.FromPairs([]orderedmap.Pair{{Key: "count", Value: count}}))
}

// WriteOutput normalizes data, renders it in the given format, and
// writes it to path, or to standard output when path is empty.
func WriteOutput(data any, path string, f Format) error {
	text, err := RenderString(f, NewNormalizer().Normalize(data))
	if err != nil {
		return err
	}
	return NewWriter().Write(text, path)
}
