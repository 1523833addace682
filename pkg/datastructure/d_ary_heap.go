package datastructure

import (
	"errors"
)

var (
	ErrEmptyQueue = errors.New("fringe is empty")
)

type PriorityQueueNode[T any] struct {
	rank float64
	seq  uint64
	item T
}

func (p *PriorityQueueNode[T]) GetItem() T {
	return p.item
}

func (p *PriorityQueueNode[T]) GetRank() float64 {
	return p.rank
}

func NewPriorityQueueNode[T any](rank float64, item T) *PriorityQueueNode[T] {
	return &PriorityQueueNode[T]{rank: rank, item: item}
}

// MinHeap d-ary heap priorityqueue. Entries with equal rank are extracted in insertion order.
type MinHeap[T any] struct {
	heap    []*PriorityQueueNode[T]
	d       int
	nextSeq uint64
}

func NewFourAryHeap[T any]() *MinHeap[T] {
	return NewdAryHeap[T](4)
}

func NewdAryHeap[T any](d int) *MinHeap[T] {
	if d < 2 {
		d = 2
	}
	return &MinHeap[T]{
		heap: make([]*PriorityQueueNode[T], 0),
		d:    d,
	}
}

// parent get index dari parent
func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / h.d
}

// less orders by rank, then by insertion sequence (FIFO among ties).
func (h *MinHeap[T]) less(i, j int) bool {
	a, b := h.heap[i], h.heap[j]
	if a.rank != b.rank {
		return a.rank < b.rank
	}
	return a.seq < b.seq
}

// heapifyUp mempertahankan heap property. check apakah parent dari index lebih besar kalau iya swap, then lanjut ke parent.  O(logN) tree height.
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.less(index, h.parent(index)) {
		h.Swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown mempertahankan heap property. check apakah salah satu children dari index lebih kecil kalau iya swap, then lanjut ke children yang kecil tadi.  O(logN) tree height.
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		leftMostChild := index*h.d + 1
		if leftMostChild >= len(h.heap) {
			return
		}

		sentinel := leftMostChild + h.d
		if sentinel > len(h.heap) {
			sentinel = len(h.heap)
		}

		smallest := leftMostChild
		for i := leftMostChild + 1; i < sentinel; i++ {
			if h.less(i, smallest) {
				smallest = i
			}
		}

		if !h.less(smallest, index) {
			return
		}
		h.Swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap[T]) Swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
}

// IsEmpty check apakah heap kosong
func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

// Size ukuran heap
func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

// Clear drops every entry. The insertion sequence keeps counting so FIFO order still holds
// for entries inserted after the clear.
func (h *MinHeap[T]) Clear() {
	for i := range h.heap {
		h.heap[i] = nil
	}
	h.heap = h.heap[:0]
}

// Insert item baru
func (h *MinHeap[T]) Insert(key *PriorityQueueNode[T]) {
	key.seq = h.nextSeq
	h.nextSeq++
	h.heap = append(h.heap, key)
	h.heapifyUp(h.Size() - 1)
}

// ExtractMin ambil nilai minimum dari min-heap (index 0) & pop dari heap. O(logN), heapifyDown(0) O(logN)
func (h *MinHeap[T]) ExtractMin() (*PriorityQueueNode[T], error) {
	if h.IsEmpty() {
		return &PriorityQueueNode[T]{}, ErrEmptyQueue
	}
	root := h.heap[0]

	last := h.Size() - 1
	h.Swap(0, last)
	h.heap[last] = nil
	h.heap = h.heap[:last]
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}

	return root, nil
}

// Fringe is the frontier of a search: a MinHeap keyed by the evaluation function.
type Fringe[T any] struct {
	pq *MinHeap[T]
}

func NewFringe[T any]() *Fringe[T] {
	return &Fringe[T]{pq: NewFourAryHeap[T]()}
}

func (f *Fringe[T]) Insert(item T, priority float64) {
	f.pq.Insert(NewPriorityQueueNode(priority, item))
}

// Pop removes the entry with minimum priority. It fails with ErrEmptyQueue on an empty fringe.
func (f *Fringe[T]) Pop() (T, float64, error) {
	node, err := f.pq.ExtractMin()
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return node.GetItem(), node.GetRank(), nil
}

func (f *Fringe[T]) IsEmpty() bool {
	return f.pq.IsEmpty()
}

func (f *Fringe[T]) Size() int {
	return f.pq.Size()
}

func (f *Fringe[T]) Clear() {
	f.pq.Clear()
}
