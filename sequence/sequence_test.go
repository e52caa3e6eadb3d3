package sequence_test

import (
	"slices"
	"testing"

	"github.com/davidvella/seqx/sequence"
	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  []int
	}{
		{
			name:  "yields items in order",
			items: []int{3, 1, 2},
			want:  []int{3, 1, 2},
		},
		{
			name:  "empty list",
			items: nil,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(sequence.NewList(tt.items...).All())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListStopsWhenConsumerStops(t *testing.T) {
	var got []int
	for v := range sequence.NewList(1, 2, 3, 4).All() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestRange(t *testing.T) {
	tests := []struct {
		name        string
		start, stop int
		want        []int
	}{
		{
			name:  "half open interval",
			start: 2,
			stop:  5,
			want:  []int{2, 3, 4},
		},
		{
			name:  "empty when start equals stop",
			start: 3,
			stop:  3,
			want:  nil,
		},
		{
			name:  "empty when start exceeds stop",
			start: 5,
			stop:  3,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(sequence.Range(tt.start, tt.stop).All())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunes(t *testing.T) {
	got := slices.Collect(sequence.Runes("héllo").All())
	assert.Equal(t, []rune{'h', 'é', 'l', 'l', 'o'}, got)

	assert.Empty(t, slices.Collect(sequence.Runes("").All()))
}

func TestFromSeq(t *testing.T) {
	src := sequence.NewList(1, 2, 3)
	adapted := sequence.FromSeq(src.All())

	got := slices.Collect(adapted.All())
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestOnceNext(t *testing.T) {
	o := sequence.NewOnce[int](sequence.NewList(1, 2))

	v, ok := o.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = o.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = o.Next()
	assert.False(t, ok)

	// Exhaustion holds on every later pull.
	_, ok = o.Next()
	assert.False(t, ok)
}

func TestOnceResumesPartialTraversal(t *testing.T) {
	o := sequence.NewOnce[int](sequence.NewList(1, 2, 3, 4))

	var head []int
	for v := range o.All() {
		head = append(head, v)
		if len(head) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, head)

	tail := slices.Collect(o.All())
	assert.Equal(t, []int{3, 4}, tail)

	assert.Empty(t, slices.Collect(o.All()))
}
