package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree. It is either a *Leaf or an *Internal.
type Node interface {
	// Weight returns the frequency of the symbol, or the combined
	// frequency of all leaves below an internal node.
	Weight() uint64
}

// Leaf holds a single symbol and its frequency.
type Leaf struct {
	Symbol byte
	Freq   uint64
}

// Internal owns exactly two children. Its frequency is the sum of theirs.
type Internal struct {
	Freq        uint64
	Left, Right Node
}

func (l *Leaf) Weight() uint64 { return l.Freq }

func (n *Internal) Weight() uint64 { return n.Freq }

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// BuildTree merges the symbols of ft into a Huffman tree and returns its root.
//
// Nodes are kept in a min-heap ordered by (frequency, id). Leaves get ids
// 0..k-1 in ascending symbol order and every merged node takes the next id,
// so ties are always resolved the same way. The first node popped becomes the
// left child, the second the right child.
//
// A table with a single symbol yields a lone *Leaf. An empty table yields
// ErrEmptyInput.
func BuildTree(ft FrequencyTable) (Node, error) {
	syms := ft.Symbols()
	if len(syms) == 0 {
		return nil, ErrEmptyInput
	}

	h := make(nodeHeap, 0, len(syms))
	nextID := 0
	for _, sym := range syms {
		n, _ := ft.Count(sym)
		h = append(h, heapItem{node: &Leaf{Symbol: sym, Freq: n}, id: nextID})
		nextID++
	}
	heap.Init(&h)

	var lastSum uint64
	for h.Len() > 1 {
		x := heap.Pop(&h).(heapItem)
		y := heap.Pop(&h).(heapItem)
		xw, yw := x.node.Weight(), y.node.Weight()

		sum := xw + yw
		assert.Assertf(sum >= xw, "frequency overflow merging %d and %d", xw, yw)
		assert.Assertf(sum >= lastSum, "merge sums must not decrease: %d after %d", sum, lastSum)
		lastSum = sum

		heap.Push(&h, heapItem{
			node: &Internal{Freq: sum, Left: x.node, Right: y.node},
			id:   nextID,
		})
		nextID++
	}
	return heap.Pop(&h).(heapItem).node, nil
}

type heapItem struct {
	node Node
	id   int
}

type nodeHeap []heapItem

func (h *nodeHeap) Push(item any) {
	*h = append(*h, item.(heapItem))
}

func (h *nodeHeap) Pop() any {
	popped := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return popped
}

func (h nodeHeap) Len() int {
	return len(h)
}

func (h nodeHeap) Less(i, j int) bool {
	if wi, wj := h[i].node.Weight(), h[j].node.Weight(); wi != wj {
		return wi < wj
	}
	return h[i].id < h[j].id
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

var _ heap.Interface = (*nodeHeap)(nil)
