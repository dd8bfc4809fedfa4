package docfmt

import (
	"reflect"
	"testing"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/stretchr/testify/assert"
)

type explodingStringer struct{}

func (explodingStringer) String() string { panic("no string form") }

func TestStringifyRecoversFromPanickyStringer(t *testing.T) {
	t.Parallel()
	assert.Equal(t, markerUnrepresentable, stringify(explodingStringer{}))
}

func TestStringifySummarizesComposites(t *testing.T) {
	t.Parallel()

	cycle := map[string]any{}
	cycle["self"] = cycle
	type holder struct{ Data map[string]any }

	assert.Equal(t, "<map[string]interface {} len=1>", stringify(cycle))
	assert.Equal(t, "<docfmt.holder>", stringify(holder{Data: cycle}))
	assert.Equal(t, "<[]int len=2>", stringify([]int{1, 2}))
}

func TestFallbackMarkerAnnotatesType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "<chan int>", fallbackMarker(make(chan int)))
	assert.Equal(t, "<func()>", fallbackMarker(func() {}))
}

func TestCellString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "x", cellString("x"))
	assert.Equal(t, "12", cellString(int64(12)))
	assert.Equal(t, "true", cellString(true))
	assert.Equal(t, `{"a":1}`, cellString(orderedmap.FromPairs([]orderedmap.Pair{{Key: "a", Value: int64(1)}})))
	assert.Equal(t, `["x","y"]`, cellString([]any{"x", "y"}))
}

func TestFieldName(t *testing.T) {
	t.Parallel()

	type tagged struct {
		Plain   string
		Named   string `json:"renamed"`
		Skipped string `json:"-"`
		Options string `json:"opts,omitempty"`
		BareOpt string `json:",omitempty"`
	}
	rt := reflect.TypeOf(tagged{})

	name, ok := fieldName(rt.Field(0))
	assert.True(t, ok)
	assert.Equal(t, "Plain", name)

	name, ok = fieldName(rt.Field(1))
	assert.True(t, ok)
	assert.Equal(t, "renamed", name)

	_, ok = fieldName(rt.Field(2))
	assert.False(t, ok)

	name, ok = fieldName(rt.Field(3))
	assert.True(t, ok)
	assert.Equal(t, "opts", name)

	name, ok = fieldName(rt.Field(4))
	assert.True(t, ok)
	assert.Equal(t, "BareOpt", name)
}

func TestLjust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x    ", ljust("x", 5))
	assert.Equal(t, "wide", ljust("wide", 2))
	// Full-width runes count by display width, not rune count.
	assert.Equal(t, "你好 ", ljust("你好", 5))
}
