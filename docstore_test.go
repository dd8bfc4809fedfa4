package docfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstorekit/docfmt"
)

// --- Test types: SDK-shaped responses ---

type collectionDescription struct {
	Name string `json:"name"`
}

type countResult struct {
	Count int64 `json:"count"`
}

type scoredPoint struct {
	ID      string         `json:"id"`
	Payload map[string]any `json:"payload"`
	Score   float64        `json:"score"`
	Vector  []any          `json:"vector"`
}

func TestFormatCollectionList(t *testing.T) {
	t.Parallel()

	out, err := docfmt.FormatCollectionList(docfmt.JSON, []any{
		collectionDescription{Name: "alpha"},
		collectionDescription{Name: "beta"},
		42,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"alpha"},{"name":"beta"},{"name":"Unknown"}]`, out)
}

func TestFormatCollectionListCSV(t *testing.T) {
	t.Parallel()

	out, err := docfmt.FormatCollectionList(docfmt.CSV, []any{
		collectionDescription{Name: "alpha"},
		collectionDescription{Name: "beta"},
	})
	require.NoError(t, err)
	assert.Equal(t, "name\nalpha\nbeta", out)
}

func TestFormatCollectionInfo(t *testing.T) {
	t.Parallel()

	info := collectionInfo{
		Status:       statusGreen,
		VectorsCount: 1000,
		Params:       vectorParams{Size: 768, Distance: "cosine"},
	}
	out, err := docfmt.FormatCollectionInfo(docfmt.JSON, "my_collection", info)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "my_collection", parsed["name"])
	assert.Equal(t, "green", parsed["status"])
	assert.Equal(t, float64(1000), parsed["vectors_count"])
	// Detail mode: the nil on_disk pointer is omitted, not null.
	_, found := parsed["on_disk"]
	assert.False(t, found)
}

func TestFormatCollectionInfoNameLeads(t *testing.T) {
	t.Parallel()

	out, err := docfmt.FormatCollectionInfo(docfmt.JSON, "c1", map[string]any{"aaa": 1})
	require.NoError(t, err)
	// The collection name renders first regardless of field order.
	assert.True(t, len(out) > 0 && out[0] == '{')
	assert.Contains(t, out, "\"name\": \"c1\"")
	assert.Less(t, strings.Index(out, "name"), strings.Index(out, "aaa"))
}

func TestFormatCollectionInfoNonMapping(t *testing.T) {
	t.Parallel()

	out, err := docfmt.FormatCollectionInfo(docfmt.JSON, "c1", "degraded")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"c1","info":"degraded"}`, out)
}

func TestFormatDocumentsVectorHandling(t *testing.T) {
	t.Parallel()

	docs := []any{scoredPoint{
		ID:      "doc1",
		Payload: map[string]any{"text": "sample"},
		Score:   0.9,
		Vector:  []any{0.1, 0.2},
	}}

	out, err := docfmt.FormatDocuments(docfmt.JSON, docs, false)
	require.NoError(t, err)
	assert.NotContains(t, out, "vector")
	assert.Contains(t, out, "\"score\": 0.9")

	out, err = docfmt.FormatDocuments(docfmt.JSON, docs, true)
	require.NoError(t, err)
	assert.Contains(t, out, "vector")
}

func TestFormatDocumentsDropsInternalFields(t *testing.T) {
	t.Parallel()

	docs := []any{map[string]any{"id": "d1", "_version_": 17}}
	out, err := docfmt.FormatDocuments(docfmt.JSON, docs, false)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"d1"}]`, out)
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	out, err := docfmt.FormatCount(docfmt.JSON, countResult{Count: 1000})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":1000}`, out)

	out, err = docfmt.FormatCount(docfmt.JSON, map[string]any{"count": 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":7}`, out)

	out, err = docfmt.FormatCount(docfmt.JSON, 12)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":12}`, out)

	out, err = docfmt.FormatCount(docfmt.JSON, map[string]any{"total": 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":"Error: Count unavailable"}`, out)
}

func TestWriteOutputUnsupportedFormat(t *testing.T) {
	t.Parallel()

	err := docfmt.WriteOutput(map[string]any{"k": "v"}, "", docfmt.Format("xml"))
	assert.ErrorIs(t, err, docfmt.ErrUnsupportedFormat)
}
