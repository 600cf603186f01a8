package gridsearch

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// item is one frontier entry: a cell and the key it was pushed with.
type item struct {
	cell gridgraph.Cell
	key  int
}

// frontier is the algorithm-specific container of discovered, unsettled cells.
type frontier interface {
	push(it item)
	pop() (item, bool)
	len() int
}

// fifo backs Dijkstra.
type fifo struct {
	q *queue.Queue[item]
	n int
}

func newFIFO() frontier { return &fifo{q: queue.New[item]()} }

func (f *fifo) push(it item) {
	f.q.Enqueue(it)
	f.n++
}

func (f *fifo) pop() (item, bool) {
	if f.n == 0 {
		return item{}, false
	}
	f.n--

	return f.q.Dequeue(), true
}

func (f *fifo) len() int { return f.n }

// lifo backs DFS.
type lifo struct {
	s *stack.Stack[item]
	n int
}

func newLIFO() frontier { return &lifo{s: stack.New[item]()} }

func (f *lifo) push(it item) {
	f.s.Push(it)
	f.n++
}

func (f *lifo) pop() (item, bool) {
	if f.n == 0 {
		return item{}, false
	}
	f.n--

	return f.s.Pop(), true
}

func (f *lifo) len() int { return f.n }

// minHeap backs GreedyBestFirst and AStar. Equal keys pop in heap order.
type minHeap struct {
	h *heap.Heap[item]
}

func newMinHeap() frontier {
	return &minHeap{h: heap.New[item](func(a, b item) bool { return a.key < b.key })}
}

func (f *minHeap) push(it item) { f.h.Push(it) }

func (f *minHeap) pop() (item, bool) { return f.h.Pop() }

func (f *minHeap) len() int { return f.h.Size() }
