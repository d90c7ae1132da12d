package ir

// Release frees the tree rooted at n to the Heap allocator.
func Release(n *Node) {
	ReleaseTo(Heap, n)
}

// ReleaseTo frees every node of the tree rooted at n, including pattern
// alternatives, to a. The walk uses an explicit stack so long lists and
// deep trees do not grow the call stack. n must not be used afterwards.
func ReleaseTo(a Allocator, n *Node) {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.Car != nil {
			stack = append(stack, c.Car)
		}
		if c.Cdr != nil {
			stack = append(stack, c.Cdr)
		}
		if c.Alts != nil {
			stack = append(stack, c.Alts)
		}
		a.Free(c)
	}
}
