package ir

import "sync"

// Allocator supplies nodes to the reader and takes them back on release.
type Allocator interface {
	Alloc() *Node
	Free(*Node)
}

// Heap allocates each node separately and leaves reclamation to the
// garbage collector. Free clears the node so stale references to a
// released tree see empty nodes.
var Heap Allocator = heap{}

type heap struct{}

func (heap) Alloc() *Node  { return &Node{} }
func (heap) Free(n *Node) { *n = Node{} }

// Pool recycles released nodes through a sync.Pool. It is safe for
// concurrent use.
type Pool struct {
	p sync.Pool
}

func NewPool() *Pool {
	return &Pool{p: sync.Pool{New: func() any { return &Node{} }}}
}

func (p *Pool) Alloc() *Node {
	return p.p.Get().(*Node)
}

func (p *Pool) Free(n *Node) {
	*n = Node{}
	p.p.Put(n)
}

const DefaultSlabSize = 256

// Arena hands out nodes from large slabs. Individual Free calls are
// ignored; Reset releases every node handed out since the previous Reset
// at once and keeps the slabs for reuse. An Arena is not safe for
// concurrent use.
type Arena struct {
	slabs    [][]Node
	slab     int
	pos      int
	slabSize int
}

func NewArena(slabSize int) *Arena {
	if slabSize <= 0 {
		slabSize = DefaultSlabSize
	}
	return &Arena{slabSize: slabSize}
}

func (a *Arena) Alloc() *Node {
	if len(a.slabs) == 0 {
		a.slabs = append(a.slabs, make([]Node, a.slabSize))
	}
	if a.pos == a.slabSize {
		a.slab++
		a.pos = 0
		if a.slab == len(a.slabs) {
			a.slabs = append(a.slabs, make([]Node, a.slabSize))
		}
	}
	n := &a.slabs[a.slab][a.pos]
	a.pos++
	return n
}

func (a *Arena) Free(*Node) {}

// Len returns the number of nodes handed out since the last Reset.
func (a *Arena) Len() int {
	if len(a.slabs) == 0 {
		return 0
	}
	return a.slab*a.slabSize + a.pos
}

// Reset invalidates every node handed out so far.
func (a *Arena) Reset() {
	for i := 0; i <= a.slab && i < len(a.slabs); i++ {
		clear(a.slabs[i])
	}
	a.slab = 0
	a.pos = 0
}
