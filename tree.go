package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman code tree.
//
// Nodes live in a single arena and refer to their children by index, so each
// child has exactly one owner and the whole tree is released together.  A
// Tree is immutable once BuildTree returns it and may be shared freely
// between goroutines.
type Tree struct {
	nodes []treeNode
	root  nodeIndex
}

type nodeIndex int32

const noNode = nodeIndex(-1)

type treeNode struct {
	freq   uint64
	left   nodeIndex
	right  nodeIndex
	height byte
	symbol Symbol
}

func (n *treeNode) isLeaf() bool {
	return n.left == noNode
}

// BuildTree builds a Huffman tree from the given frequency table by
// repeatedly merging the two lightest nodes.
//
// Ties are broken by age: leaves are numbered in the table's entry order,
// each merged node is numbered after every node that exists before it, and
// among nodes of equal frequency the lower number is taken first.  The first
// node taken becomes the left child.
//
// A table with one entry yields a tree whose root is that entry's leaf.
//
// Heavily skewed tables can call for codes longer than MaxCodeSize; BuildTree
// rejects those with an error matching ErrCodeTooLong.
func BuildTree(ft FrequencyTable) (*Tree, error) {
	numLeaves := len(ft.entries)
	if numLeaves == 0 {
		return nil, EmptyInputError{}
	}

	// Arena indices double as tie-break sequence numbers: leaves occupy
	// [0, numLeaves) and every merge appends.
	nodes := make([]treeNode, 0, 2*numLeaves-1)
	for _, entry := range ft.entries {
		nodes = append(nodes, treeNode{
			freq:   entry.Count,
			left:   noNode,
			right:  noNode,
			symbol: entry.Symbol,
		})
	}

	h := nodeHeap{nodes: nodes, list: make([]nodeIndex, numLeaves)}
	for index := range h.list {
		h.list[index] = nodeIndex(index)
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeIndex)
		b := heap.Pop(&h).(nodeIndex)

		// Every sum is bounded by ft.total, which MakeFrequencyTable has
		// already checked for overflow.
		nodeA, nodeB := &h.nodes[a], &h.nodes[b]
		freqSum := nodeA.freq + nodeB.freq

		height := nodeA.height
		if height < nodeB.height {
			height = nodeB.height
		}
		if height >= MaxCodeSize {
			return nil, fmt.Errorf("%w: got %d, max %d", ErrCodeTooLong, int(height)+1, MaxCodeSize)
		}
		height++

		merged := nodeIndex(len(h.nodes))
		h.nodes = append(h.nodes, treeNode{freq: freqSum, left: a, right: b, height: height})
		heap.Push(&h, merged)
	}

	root := heap.Pop(&h).(nodeIndex)
	assert.Assertf(len(h.nodes) == 2*numLeaves-1, "tree has %d nodes for %d leaves", len(h.nodes), numLeaves)

	return &Tree{nodes: h.nodes, root: root}, nil
}

// NumLeaves returns the number of distinct symbols in the tree.
func (t *Tree) NumLeaves() int {
	if t == nil {
		return 0
	}
	return (len(t.nodes) + 1) / 2
}

// Weight returns the frequency held at the root, i.e. the length of the
// input the tree was built from.
func (t *Tree) Weight() uint64 {
	if t.isEmpty() {
		return 0
	}
	return t.node(t.root).freq
}

// Depth returns the depth of symbol's leaf, or false if the symbol is not in
// the tree.  The root has depth 0.
func (t *Tree) Depth(symbol Symbol) (int, bool) {
	depth, found := 0, false
	t.walk(func(n *treeNode, path Code) bool {
		if n.isLeaf() && n.symbol == symbol {
			depth, found = int(path.Size), true
			return false
		}
		return true
	})
	return depth, found
}

// String returns a short description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, weight %d)", t.NumLeaves(), t.Weight())
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line in depth-first order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.NumLeaves())
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.Weight())
	t.walk(func(n *treeNode, path Code) bool {
		if n.isLeaf() {
			fmt.Fprintf(&buf, "\t%s = %v (%d)\n", path, n.symbol, n.freq)
		} else {
			fmt.Fprintf(&buf, "\t%s = * (%d)\n", path, n.freq)
		}
		return true
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) isEmpty() bool {
	return t == nil || len(t.nodes) == 0
}

func (t *Tree) node(index nodeIndex) *treeNode {
	assert.Assertf(index >= 0 && int(index) < len(t.nodes), "node index %d out of range [0, %d)", index, len(t.nodes))
	return &t.nodes[index]
}

// walk visits every node in depth-first order, left before right, passing
// the path from the root.  Returning false from fn stops the walk.
func (t *Tree) walk(fn func(n *treeNode, path Code) bool) {
	if t.isEmpty() {
		return
	}

	// stackItem.x counts the children of an internal node already
	// handed to fn: 0 means none, 1 means left only, 2 means both, at
	// which point the item is popped.  Leaves are popped on sight.

	type stackItem struct {
		index nodeIndex
		path  Code
		x     byte
	}

	if !fn(t.node(t.root), Code{}) {
		return
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{index: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		n := t.node(top.index)
		if n.isLeaf() || top.x == 2 {
			stack = stack[:len(stack)-1]
			continue
		}

		child, path := n.left, top.path.Append(0)
		if top.x == 1 {
			child, path = n.right, top.path.Append(1)
		}
		top.x++

		if !fn(t.node(child), path) {
			return
		}
		stack = append(stack, stackItem{index: child, path: path})
	}
}

// type nodeHeap {{{

type nodeHeap struct {
	nodes []treeNode
	list  []nodeIndex
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	fa, fb := h.nodes[a].freq, h.nodes[b].freq
	if fa != fb {
		return fa < fb
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeIndex))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
