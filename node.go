package ttset

import (
	"fmt"
	"strings"
)

func (n *node[K]) isLeaf() bool {
	return n.nsons == 0
}

// find the minimum leaf under a node
func (n *node[K]) minimum() *node[K] {
	for n.nsons > 0 {
		n = n.sons[0]
	}
	return n
}

// find the maximum leaf under a node
func (n *node[K]) maximum() *node[K] {
	for n.nsons > 0 {
		n = n.sons[n.nsons-1]
	}
	return n
}

// index of son among n's children; son must be linked under n
func (n *node[K]) indexOf(son *node[K]) int {
	idx := 0
	for n.sons[idx] != son {
		idx++
	}
	return idx
}

// sortSons restores ascending key order after a single child has been
// appended past a sorted prefix. One right-to-left pass sinks the new
// child into place.
func (n *node[K]) sortSons(less LessFunc[K]) {
	for i := n.nsons - 2; i >= 0; i-- {
		if less(*n.sons[i+1].key, *n.sons[i].key) {
			n.sons[i], n.sons[i+1] = n.sons[i+1], n.sons[i]
		}
	}
}

func (n *node[K]) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.isLeaf() {
		if n.key == nil {
			return "end"
		}
		return fmt.Sprintf("%v", *n.key)
	}
	parts := make([]string, 0, n.nsons)
	for i := 0; i < n.nsons; i++ {
		parts = append(parts, n.sons[i].String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
