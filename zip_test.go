package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZip(t *testing.T) {
	tests := []struct {
		name   string
		inputs [][]int
		want   [][]int
	}{
		{
			name:   "three equal columns",
			inputs: [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			want:   [][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}},
		},
		{
			name:   "stops at shortest",
			inputs: [][]int{{1, 2, 3}, {4, 5}},
			want:   [][]int{{1, 4}, {2, 5}},
		},
		{
			name:   "one column",
			inputs: [][]int{{1, 2}},
			want:   [][]int{{1}, {2}},
		},
		{
			name:   "empty column",
			inputs: [][]int{{1, 2}, {}},
			want:   [][]int{},
		},
		{
			name:   "no columns",
			inputs: [][]int{},
			want:   [][]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seqs := make([]Seq[int], len(tt.inputs))
			for i, in := range tt.inputs {
				seqs[i] = FromSlice(in)
			}

			assert.EqualValues(t, tt.want, Collect(Zip(seqs...)))
		})
	}
}

func TestZipAbsentColumn(t *testing.T) {
	assert.True(t, Zip(FromSlice([]int{1, 2}), nil).IsEmpty())
}

func TestZipInfiniteColumns(t *testing.T) {
	naturals := Iterate(0, func(i int) int { return i + 1 })
	evens := Iterate(0, func(i int) int { return i + 2 })

	got := Take(Zip(naturals, evens), 3)
	assert.Equal(t, [][]int{{0, 0}, {1, 2}, {2, 4}}, got)
}

func TestZip2(t *testing.T) {
	assert := assert.New(t)

	pairs := Collect(Zip2(FromSlice([]string{"x", "y", "z"}), FromSlice([]int{1, 2})))
	assert.Equal([]Pair[string, int]{
		{First: "x", Second: 1},
		{First: "y", Second: 2},
	}, pairs)

	assert.True(Zip2(Empty[string](), FromSlice([]int{1})).IsEmpty())
	assert.True(Zip2[string, int](nil, nil).IsEmpty())
}

func TestZip2IsLazy(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	counted := Map(Iterate(0, func(i int) int { return i + 1 }), func(i int) int {
		calls++
		return i
	})

	pairs := Zip2(counted, Iterate(0, func(i int) int { return i + 10 }))
	assert.Zero(calls)

	_ = Take(pairs, 2)
	assert.Equal(2, calls)
}
