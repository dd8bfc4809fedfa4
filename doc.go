// Package docfmt converts the heterogeneous response objects returned
// by document-store clients into a canonical representation and
// renders it as JSON, YAML, CSV, or a fixed-width table.
//
// The pipeline runs one direction: an opaque source value is
// classified ([Classify]), recursively normalized into a canonical
// value ([Normalizer]), rendered as text ([Render], [RenderString]),
// and written to a file or the default stream ([Writer]).
//
// # Canonical Values
//
// A canonical value is nil, bool, int64, uint64, float64, string, an
// *orderedmap.OrderedMap of canonical values, or a []any of canonical
// values. Every canonical value is directly JSON-serializable and
// holds no references to the source object.
//
// # Normalization
//
// [Normalizer.Normalize] is total: it returns a canonical value for
// any input and never fails. Recursion is bounded by
// [Normalizer.MaxDepth]; values nested beyond the bound collapse to
// their string form. Enum-like values unwrap to their underlying
// primitive, either via [Enumer] or by reflection over defined
// string/integer types. Structured objects are read field by field; a
// field whose read panics is replaced by a fallback marker without
// disturbing its siblings. Values that cannot be represented at all
// (funcs, channels, live handles) become a string marker annotated
// with the type name.
//
// Mapping null handling comes in two modes: [KeepNulls] for listings
// and [OmitNulls] for detail views. Callers pick the mode; the two
// shapes are both load-bearing downstream.
//
// # Rendering
//
// Use [ParseFormat] to turn a CLI flag value into a [Format], then
// [Render] or [RenderString]:
//
//	f, err := docfmt.ParseFormat(flagValue)
//	text, err := docfmt.RenderString(f, normalizer.Normalize(resp))
//
// CSV and table require a sequence of mappings and take their columns
// from the first record; fields appearing only in later records are
// dropped by design.
//
// # Writing
//
// [Writer.Write] sends rendered text to a path or the default stream.
// Files receive the exact rendered bytes; the stream gets one trailing
// newline. The store-shaped helpers [FormatCollectionList],
// [FormatCollectionInfo], [FormatDocuments], [FormatCount], and
// [WriteOutput] bundle the steps for common client responses.
//
// # Errors
//
// Normalization failures never surface; they degrade into fallback
// markers. Rendering and writing fail with [ErrUnsupportedFormat],
// [ErrRowShape], or a *[FileOperationError].
package docfmt
