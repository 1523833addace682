package datastructure

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFringeOrder(t *testing.T) {
	testCases := []struct {
		name  string
		ranks []float64
		items []string
		want  []string
	}{
		{
			name:  "ascending rank",
			ranks: []float64{3, 1, 2},
			items: []string{"a", "b", "c"},
			want:  []string{"b", "c", "a"},
		},
		{
			name:  "ties pop in insertion order",
			ranks: []float64{3, 1, 2, 1, 1},
			items: []string{"a", "b", "c", "d", "e"},
			want:  []string{"b", "d", "e", "c", "a"},
		},
		{
			name:  "all equal",
			ranks: []float64{5, 5, 5, 5, 5, 5, 5},
			items: []string{"1", "2", "3", "4", "5", "6", "7"},
			want:  []string{"1", "2", "3", "4", "5", "6", "7"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFringe[string]()
			for i := range tt.items {
				f.Insert(tt.items[i], tt.ranks[i])
			}
			require.Equal(t, len(tt.items), f.Size())

			got := make([]string, 0, len(tt.items))
			for !f.IsEmpty() {
				item, _, err := f.Pop()
				require.NoError(t, err)
				got = append(got, item)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFringeEmptyAndClear(t *testing.T) {
	f := NewFringe[int]()
	_, _, err := f.Pop()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	f.Insert(1, 2)
	f.Insert(2, 2)
	f.Clear()
	assert.True(t, f.IsEmpty())

	// FIFO still holds for entries inserted after a clear
	f.Insert(3, 1)
	f.Insert(4, 1)
	item, rank, err := f.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, item)
	assert.Equal(t, 1.0, rank)
}

func TestDAryHeapArities(t *testing.T) {
	ranks := []float64{9, 4, 7, 1, 8, 3, 3, 6, 0, 5}
	want := []int{8, 3, 5, 6, 1, 9, 7, 2, 4, 0}

	for _, d := range []int{1, 2, 3, 4, 8} {
		t.Run(fmt.Sprintf("d=%d", d), func(t *testing.T) {
			h := NewdAryHeap[int](d)
			for i, r := range ranks {
				h.Insert(NewPriorityQueueNode(r, i))
			}
			got := make([]int, 0, len(ranks))
			for !h.IsEmpty() {
				node, err := h.ExtractMin()
				require.NoError(t, err)
				got = append(got, node.GetItem())
			}
			assert.Equal(t, want, got)
		})
	}
}
