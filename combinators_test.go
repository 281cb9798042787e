package pcoll_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/pcoll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFilterReduce(t *testing.T) {
	s := pcoll.From(1, 2, 3, 4, 5)
	t.Run("Map", func(t *testing.T) {
		m := pcoll.Map(s, strconv.Itoa)
		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, pcoll.Slice(m))
	})
	t.Run("Filter", func(t *testing.T) {
		even := pcoll.Filter(s, func(n int) bool { return n%2 == 0 })
		assert.Equal(t, []int{2, 4}, pcoll.Slice(even))
	})
	t.Run("Reduce", func(t *testing.T) {
		sum := pcoll.Reduce(s, func(acc, n int) int { return acc + n }, 0)
		assert.Equal(t, 15, sum)
	})
	t.Run("ReduceEmpty", func(t *testing.T) {
		sum := pcoll.Reduce(pcoll.From[int](), func(acc, n int) int { return acc + n }, 42)
		assert.Equal(t, 42, sum)
	})
}

func TestZip(t *testing.T) {
	nums := pcoll.From(1, 2, 3)
	words := pcoll.From("one", "two", "three", "four")
	zipped := pcoll.Slice(pcoll.Zip(nums, words))
	require.Len(t, zipped, 3) // truncates to the shorter input
	assert.Equal(t, pcoll.P(1, "one"), zipped[0])
	assert.Equal(t, pcoll.P(3, "three"), zipped[2])
}

func TestZipWithIndex(t *testing.T) {
	s := pcoll.From("a", "b", "c")
	indexed := pcoll.Slice(pcoll.ZipWithIndex(s))
	require.Len(t, indexed, 3)
	assert.Equal(t, pcoll.P(0, "a"), indexed[0])
	assert.Equal(t, pcoll.P(2, "c"), indexed[2])
}

func TestGrouped(t *testing.T) {
	s := pcoll.From(1, 2, 3, 4, 5, 6, 7)
	groups := pcoll.Slice(pcoll.Grouped(s, 3))
	require.Len(t, groups, 3)
	assert.Equal(t, []int{1, 2, 3}, pcoll.Slice(groups[0]))
	assert.Equal(t, []int{7}, pcoll.Slice(groups[2])) // last group may be short
}

func TestSliding(t *testing.T) {
	s := pcoll.From(1, 2, 3, 4, 5)
	t.Run("StepOne", func(t *testing.T) {
		windows := pcoll.Slice(pcoll.Sliding(s, 2, 1))
		require.Len(t, windows, 4)
		assert.Equal(t, []int{1, 2}, pcoll.Slice(windows[0]))
		assert.Equal(t, []int{4, 5}, pcoll.Slice(windows[3]))
	})
	t.Run("StepTwo", func(t *testing.T) {
		windows := pcoll.Slice(pcoll.Sliding(s, 2, 2))
		require.Len(t, windows, 2) // partial final window is omitted
		assert.Equal(t, []int{3, 4}, pcoll.Slice(windows[1]))
	})
	t.Run("WindowTooLarge", func(t *testing.T) {
		windows := pcoll.Slice(pcoll.Sliding(s, 6, 1))
		assert.Empty(t, windows)
	})
}

func TestTakeDropWhile(t *testing.T) {
	s := pcoll.From(1, 2, 3, 1, 2)
	assert.Equal(t, []int{1, 2}, pcoll.Slice(pcoll.TakeWhile(s, func(n int) bool { return n < 3 })))
	assert.Equal(t, []int{3, 1, 2}, pcoll.Slice(pcoll.DropWhile(s, func(n int) bool { return n < 3 })))
}

func TestFind(t *testing.T) {
	s := pcoll.From(1, 2, 3, 4)
	found := pcoll.Find(s, func(n int) bool { return n > 2 })
	assert.Equal(t, 3, found.WithDefault(-1))
	missing := pcoll.Find(s, func(n int) bool { return n > 9 })
	assert.Equal(t, -1, missing.WithDefault(-1))
}
