package dict_test

import (
	"testing"

	"github.com/npillmayer/pcoll/persistent/dict"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictWithFindWithout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcoll.dict")
	defer teardown()
	//
	d := dict.Immutable[string, int]()
	require.Equal(t, 0, d.Len())

	d = d.With("one", 1).With("two", 2)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, 1, d.Find("one").WithDefault(-1))
	assert.Equal(t, -1, d.Find("three").WithDefault(-1))

	d = d.Without("one")
	require.Equal(t, 1, d.Len())
	assert.Equal(t, -1, d.Find("one").WithDefault(-1))
}

func TestDictPersistence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcoll.dict")
	defer teardown()
	//
	d := dict.Immutable[string, int]().With("a", 1).With("b", 2)
	_ = d.With("c", 3)
	_ = d.With("a", 99)
	_ = d.Without("b")
	// the retained original must be unaffected by any of the above
	require.Equal(t, 2, d.Len())
	assert.Equal(t, 1, d.Find("a").WithDefault(-1))
	assert.Equal(t, 2, d.Find("b").WithDefault(-1))
}

func TestDictInsertionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcoll.dict")
	defer teardown()
	//
	d := dict.Immutable[string, int]()
	for i, k := range []string{"z", "m", "a", "q"} {
		d = d.With(k, i)
	}
	assert.Equal(t, []string{"z", "m", "a", "q"}, d.Keys())

	t.Run("ReplaceKeepsPosition", func(t *testing.T) {
		e := d.With("m", 42)
		assert.Equal(t, []string{"z", "m", "a", "q"}, e.Keys())
		assert.Equal(t, 42, e.Find("m").WithDefault(-1))
	})
	t.Run("ReinsertAppends", func(t *testing.T) {
		e := d.Without("m").With("m", 42)
		assert.Equal(t, []string{"z", "a", "q", "m"}, e.Keys())
	})
	t.Run("EachFollowsKeys", func(t *testing.T) {
		var keys []string
		var vals []int
		d.Each(func(k string, v int) bool {
			keys = append(keys, k)
			vals = append(vals, v)
			return true
		})
		assert.Equal(t, []string{"z", "m", "a", "q"}, keys)
		assert.Equal(t, []int{0, 1, 2, 3}, vals)
	})
	t.Run("EachStopsEarly", func(t *testing.T) {
		count := 0
		d.Each(func(string, int) bool {
			count++
			return count < 2
		})
		assert.Equal(t, 2, count)
	})
}

func TestDictWithoutAbsentKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcoll.dict")
	defer teardown()
	//
	d := dict.Immutable[string, int]().With("a", 1)
	e := d.Without("nope")
	assert.Equal(t, 1, e.Len())
	assert.Equal(t, []string{"a"}, e.Keys())
}
