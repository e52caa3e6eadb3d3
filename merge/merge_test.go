package merge_test

import (
	"math"
	"slices"
	"testing"

	"github.com/davidvella/seqx/merge"
	"github.com/davidvella/seqx/quantify"
	"github.com/davidvella/seqx/sequence"
	"github.com/stretchr/testify/assert"
)

func intLess(a, b int) bool { return a < b }

func TestAll(t *testing.T) {
	tests := []struct {
		name    string
		sources [][]int
		want    []int
	}{
		{
			name: "merges interleaved sources",
			sources: [][]int{
				{1, 4, 7},
				{2, 5, 8},
				{3, 6, 9},
			},
			want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name: "handles empty sources",
			sources: [][]int{
				{1, 3, 5},
				{},
				{2, 4},
			},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "duplicate values survive",
			sources: [][]int{
				{1, 2},
				{2, 3},
			},
			want: []int{1, 2, 2, 3},
		},
		{
			name:    "single source passes through",
			sources: [][]int{{1, 2, 3}},
			want:    []int{1, 2, 3},
		},
		{
			name:    "all sources empty",
			sources: [][]int{{}, {}},
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sources := make([]sequence.Sequence[int], 0, len(tt.sources))
			for _, s := range tt.sources {
				sources = append(sources, sequence.NewList(s...))
			}

			tree := merge.New(sources, math.MaxInt, intLess)
			got := slices.Collect(tree.All())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNoSources(t *testing.T) {
	tree := merge.New(nil, math.MaxInt, intLess)
	assert.Empty(t, slices.Collect(tree.All()))
}

func TestEarlyStopLeavesSourcesUndrained(t *testing.T) {
	tree := merge.New(
		[]sequence.Sequence[int]{
			sequence.NewList(1, 3, 5),
			sequence.NewList(2, 4, 6),
		},
		math.MaxInt,
		intLess,
	)

	var got []int
	for v := range tree.All() {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestComposesWithQuantify(t *testing.T) {
	tree := merge.New(
		[]sequence.Sequence[int]{
			sequence.NewList(2, 4),
			sequence.NewList(1, 3),
		},
		math.MaxInt,
		intLess,
	)
	isEven := func(v int) bool { return v%2 == 0 }

	assert.True(t, quantify.PerfectlyBalanced(tree.All(), isEven))
}
