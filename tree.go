package ttset

import "github.com/sirupsen/logrus"

// lowerBoundLeaf descends from the root to the leaf holding the first key
// not less than key, or to the maximum leaf when every key is smaller. The
// caller decides what the leaf means by comparing its key against the
// query; the descent itself never tests equality.
func (s *Set[K]) lowerBoundLeaf(key K) *node[K] {
	n := s.root
	for n.nsons > 0 {
		switch {
		case !s.less(*n.sons[0].key, key):
			n = n.sons[0]
		case n.nsons == 2 || !s.less(*n.sons[1].key, key):
			n = n.sons[1]
		default:
			n = n.sons[2]
		}
	}
	return n
}

// update makes n consistent after its child list changed: sons back in
// ascending order, parent back-references refreshed, derived key aliased to
// the last son's key. Callers must invoke it bottom-up after every
// structural edit; an ancestor left unrefreshed corrupts future descents.
func (s *Set[K]) update(n *node[K]) {
	if n == nil {
		return
	}
	n.sortSons(s.less)
	for i := 0; i < n.nsons; i++ {
		n.sons[i].parent = n
	}
	n.key = n.sons[n.nsons-1].key
}

// fix4sons splits a node that transiently holds 4 sons: the two rightmost
// move into a fresh sibling, which is attached to the parent. Splitting the
// root grows the tree by one level. The parent may now hold 4 sons itself,
// so the repair cascades upward.
func (s *Set[K]) fix4sons(n *node[K]) {
	if n.nsons != maxSons {
		return
	}
	n2 := &node[K]{}
	n2.sons[0] = n.sons[2]
	n2.sons[1] = n.sons[3]
	n2.nsons = 2
	n.sons[2], n.sons[3] = nil, nil
	n.nsons = 2
	s.update(n2)
	s.update(n)
	if n == s.root {
		Log.WithFields(logrus.Fields{
			"op": "split", "left": n, "right": n2,
		}).Debug("root split, growing tree")
		root := &node[K]{}
		root.sons[0] = n
		root.sons[1] = n2
		root.nsons = 2
		s.update(root)
		s.root = root
		return
	}
	Log.WithFields(logrus.Fields{
		"op": "split", "left": n, "right": n2,
	}).Debug("node split")
	p := n.parent
	p.sons[p.nsons] = n2
	p.nsons++
	s.update(p)
	s.fix4sons(p)
}

// fix1sons repairs a node left with a single son after a removal. The root
// collapses onto its son, shrinking the tree by one level; anywhere else
// the orphan son is handed to the other sibling, the empty node is unlinked
// and the sibling (which may now hold 4 sons) is split if needed. Invoked
// on nodes that are not underflowing too: it then just refreshes the node
// and recurses upward, which callers rely on to keep ancestor keys correct
// all the way to the root.
func (s *Set[K]) fix1sons(n *node[K]) {
	if n == nil {
		return
	}
	if n.nsons != 1 {
		s.update(n)
		s.fix1sons(n.parent)
		return
	}
	if n == s.root {
		Log.WithFields(logrus.Fields{
			"op": "collapse", "root": n,
		}).Debug("root collapse, shrinking tree")
		s.root = n.sons[0]
		s.root.parent = nil
		n.sons[0] = nil
		return
	}
	p := n.parent
	bro := p.sons[1]
	if n == p.sons[1] {
		bro = p.sons[0]
	}
	Log.WithFields(logrus.Fields{
		"op": "merge", "node": n, "sibling": bro,
	}).Debug("merging underflowing node into sibling")
	bro.sons[bro.nsons] = n.sons[0]
	bro.nsons++
	pos := p.indexOf(n)
	for ; pos < p.nsons-1; pos++ {
		p.sons[pos] = p.sons[pos+1]
	}
	p.nsons--
	p.sons[p.nsons] = nil
	n.sons[0] = nil
	n.parent = nil
	s.update(bro)
	s.fix4sons(bro)
	s.update(bro.parent)
	s.fix1sons(bro.parent)
}

// nextLeaf returns the leaf after cur in key order: climb while cur is the
// last son of its parent, step to the next sibling, then descend along
// first sons. Climbing off the root means cur was the maximum, so the
// successor is the end sentinel.
func (s *Set[K]) nextLeaf(cur *node[K]) *node[K] {
	son, par := cur, cur.parent
	for par != nil && son == par.sons[par.nsons-1] {
		son, par = par, par.parent
	}
	if par == nil {
		return &s.end
	}
	return par.sons[par.indexOf(son)+1].minimum()
}

// prevLeaf is the mirror of nextLeaf. From the end sentinel it returns the
// overall maximum leaf; from the minimum leaf it returns the end sentinel,
// which the iterator reports as retreating past the first key.
func (s *Set[K]) prevLeaf(cur *node[K]) *node[K] {
	if cur == &s.end {
		return s.root.maximum()
	}
	son, par := cur, cur.parent
	for par != nil && son == par.sons[0] {
		son, par = par, par.parent
	}
	if par == nil {
		return &s.end
	}
	return par.sons[par.indexOf(son)-1].maximum()
}
