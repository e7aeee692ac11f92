package counts_test

import (
	"math"
	"slices"
	"testing"

	"github.com/eddiethedean/unordered-list/counts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Run("counts keep first-seen order", func(t *testing.T) {
		table, err := counts.Build([]int{3, 2, 3, 1})
		require.NoError(t, err)

		assert.Equal(t, []int{3, 2, 1}, table.Keys())
		assert.Equal(t, map[int]int{3: 2, 2: 1, 1: 1}, table.Map())
		assert.Equal(t, 3, table.Len())
		assert.Equal(t, 4, table.Total())
	})

	t.Run("empty and nil input", func(t *testing.T) {
		for _, in := range [][]string{nil, {}} {
			table, err := counts.Build(in)
			require.NoError(t, err)
			assert.Equal(t, 0, table.Len())
			assert.Equal(t, 0, table.Total())
			assert.Empty(t, table.Keys())
		}
	})

	t.Run("letters", func(t *testing.T) {
		table, err := counts.Build([]string{"a", "a", "b", "c", "c", "c"})
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"a": 2, "b": 1, "c": 3}, table.Map())
	})

	t.Run("interface values", func(t *testing.T) {
		table, err := counts.Build([]any{1, "1", 1, nil, nil, 2.5})
		require.NoError(t, err)
		assert.Equal(t, []any{1, "1", nil, 2.5}, table.Keys())
		assert.Equal(t, 2, table.Get(1))
		assert.Equal(t, 2, table.Get(nil))
		assert.Equal(t, 1, table.Get("1"))
	})

	t.Run("unhashable values fail the whole build", func(t *testing.T) {
		table, err := counts.Build([]any{1, []int{1, 2}, 3})
		require.ErrorIs(t, err, counts.ErrUnhashable)
		assert.Nil(t, table)
		assert.Contains(t, err.Error(), "[]int")
	})

	t.Run("NaN fails the whole build", func(t *testing.T) {
		table, err := counts.Build([]float64{math.NaN(), 1, math.NaN()})
		require.ErrorIs(t, err, counts.ErrUnhashable)
		assert.Nil(t, table)
		assert.Contains(t, err.Error(), "float64")
	})

	t.Run("NaN behind an interface", func(t *testing.T) {
		_, err := counts.Build([]any{1, math.NaN()})
		require.ErrorIs(t, err, counts.ErrUnhashable)
	})

	t.Run("ordinary floats", func(t *testing.T) {
		table, err := counts.Build([]float64{1.5, 0, 1.5, math.Inf(1)})
		require.NoError(t, err)
		assert.Equal(t, []float64{1.5, 0, math.Inf(1)}, table.Keys())
		assert.Equal(t, 2, table.Get(1.5))
		assert.Equal(t, 4, table.Total())
	})
}

func TestExpand(t *testing.T) {
	t.Run("repetitions are contiguous and in table order", func(t *testing.T) {
		table, err := counts.Build([]string{"b", "a", "b", "c", "a", "b"})
		require.NoError(t, err)

		assert.Equal(t, []string{"b", "b", "b", "a", "a", "c"}, slices.Collect(counts.Expand(table)))
	})

	t.Run("ranging again starts over", func(t *testing.T) {
		table, err := counts.Build([]int{1, 1, 2})
		require.NoError(t, err)

		seq := counts.Expand(table)
		assert.Equal(t, []int{1, 1, 2}, slices.Collect(seq))
		assert.Equal(t, []int{1, 1, 2}, slices.Collect(seq))
	})

	t.Run("early stop", func(t *testing.T) {
		table, err := counts.Build([]int{1, 1, 1, 2})
		require.NoError(t, err)

		var got []int
		for v := range counts.Expand(table) {
			got = append(got, v)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []int{1, 1}, got)
	})

	t.Run("round trip", func(t *testing.T) {
		in := []int{5, 1, 5, 5, 2, 9, 1}
		table, err := counts.Build(in)
		require.NoError(t, err)

		again, err := counts.Build(slices.Collect(counts.Expand(table)))
		require.NoError(t, err)
		assert.True(t, table.Equal(again))
	})
}

func TestTable_Add(t *testing.T) {
	table := counts.NewTable[string](0)

	assert.Equal(t, 1, table.Add("x", 1))
	assert.Equal(t, 3, table.Add("x", 2))
	assert.Equal(t, 1, table.Add("y", 1))
	assert.Equal(t, []string{"x", "y"}, table.Keys())

	t.Run("dropping to zero removes the key", func(t *testing.T) {
		assert.Equal(t, 0, table.Add("y", -1))
		assert.False(t, table.Has("y"))
		assert.Equal(t, []string{"x"}, table.Keys())
	})

	t.Run("dropping below zero removes the key", func(t *testing.T) {
		assert.Equal(t, 0, table.Add("x", -10))
		assert.False(t, table.Has("x"))
		assert.Equal(t, 0, table.Len())
	})

	t.Run("negative delta on a missing key stores nothing", func(t *testing.T) {
		assert.Equal(t, 0, table.Add("z", -1))
		assert.False(t, table.Has("z"))
	})
}

func TestTable_Merge(t *testing.T) {
	a, err := counts.Build([]int{3, 2, 3, 1})
	require.NoError(t, err)
	b, err := counts.Build([]int{1, 1, 5})
	require.NoError(t, err)

	a.Merge(b)
	assert.Equal(t, map[int]int{3: 2, 2: 1, 1: 3, 5: 1}, a.Map())
	assert.Equal(t, []int{3, 2, 1, 5}, a.Keys())

	t.Run("merge into itself doubles", func(t *testing.T) {
		a.Merge(a)
		assert.Equal(t, map[int]int{3: 4, 2: 2, 1: 6, 5: 2}, a.Map())
	})
}

func TestTable_OldestNewest(t *testing.T) {
	table := counts.NewTable[int](4)
	_, ok := table.Oldest()
	assert.False(t, ok)
	_, ok = table.Newest()
	assert.False(t, ok)

	table.Add(3, 2)
	table.Add(2, 1)
	table.Add(1, 1)
	table.Add(3, 1)

	oldest, ok := table.Oldest()
	require.True(t, ok)
	assert.Equal(t, 3, oldest)

	newest, ok := table.Newest()
	require.True(t, ok)
	assert.Equal(t, 1, newest)
}

func TestTable_CloneEqualClear(t *testing.T) {
	a, err := counts.Build([]int{1, 2, 2})
	require.NoError(t, err)

	clone := a.Clone()
	assert.True(t, a.Equal(clone))

	clone.Add(2, -1)
	assert.False(t, a.Equal(clone))
	assert.Equal(t, 2, a.Get(2))

	t.Run("key order does not matter", func(t *testing.T) {
		b, err := counts.Build([]int{2, 1, 2})
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})

	t.Run("same keys, different counts", func(t *testing.T) {
		b, err := counts.Build([]int{1, 1, 2})
		require.NoError(t, err)
		assert.False(t, a.Equal(b))
	})

	t.Run("nil table", func(t *testing.T) {
		assert.False(t, a.Equal(nil))
	})

	a.Clear()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestTable_ForEach(t *testing.T) {
	table, err := counts.Build([]string{"q", "p", "q"})
	require.NoError(t, err)

	var seen []string
	var total int
	table.ForEach(func(v string, count int) {
		seen = append(seen, v)
		total += count
	})

	assert.Equal(t, []string{"q", "p"}, seen)
	assert.Equal(t, 3, total)
	assert.Equal(t, map[string]int{"q": 2, "p": 1}, table.Map())
}

func TestNewTable(t *testing.T) {
	for _, capacity := range []int{-1, 0, 8} {
		table := counts.NewTable[string](capacity)
		assert.Equal(t, 0, table.Len())
		assert.Equal(t, 2, table.Add("a", 2))
		assert.Equal(t, []string{"a"}, table.Keys())
	}
}

func TestHashable(t *testing.T) {
	type withIface struct {
		Name string
		Val  any
	}

	tests := []struct {
		name string
		val  any
		want bool
	}{
		{name: "int", val: 1, want: true},
		{name: "nil", val: nil, want: true},
		{name: "string", val: "s", want: true},
		{name: "pointer", val: &struct{}{}, want: true},
		{name: "array of ints", val: [2]int{1, 2}, want: true},
		{name: "slice", val: []int{1}, want: false},
		{name: "map", val: map[string]int{}, want: false},
		{name: "func", val: func() {}, want: false},
		{name: "struct with hashable iface", val: withIface{Name: "a", Val: 1}, want: true},
		{name: "struct with nil iface", val: withIface{Name: "a"}, want: true},
		{name: "struct hiding a slice", val: withIface{Name: "a", Val: []string{"x"}}, want: false},
		{name: "array hiding a map", val: [2]any{1, map[int]int{}}, want: false},
		{name: "float", val: 1.5, want: true},
		{name: "infinity", val: math.Inf(-1), want: true},
		{name: "nan", val: math.NaN(), want: false},
		{name: "float32 nan", val: float32(math.NaN()), want: false},
		{name: "complex", val: complex(1, 2), want: true},
		{name: "complex nan", val: complex(0, math.NaN()), want: false},
		{name: "struct with nan", val: struct{ F float64 }{F: math.NaN()}, want: false},
		{name: "array with nan", val: [2]float64{1, math.NaN()}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, counts.Hashable(tc.val))

			err := counts.CheckHashable(tc.val)
			if tc.want {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, counts.ErrUnhashable)
			}
		})
	}

	t.Run("lookups with unhashable values do not panic", func(t *testing.T) {
		table, err := counts.Build([]any{1, 2})
		require.NoError(t, err)

		assert.NotPanics(t, func() {
			assert.Equal(t, 0, table.Get([]int{1}))
			assert.False(t, table.Has(map[int]int{}))
		})
	})

	t.Run("typed float checks", func(t *testing.T) {
		assert.True(t, counts.Hashable(2.5))
		assert.False(t, counts.Hashable(math.NaN()))
		assert.ErrorIs(t, counts.CheckHashable(math.NaN()), counts.ErrUnhashable)

		table, err := counts.Build([]float64{1})
		require.NoError(t, err)
		assert.False(t, table.Has(math.NaN()))
		assert.Equal(t, 0, table.Get(math.NaN()))
	})
}
