package ttset

// Size returns the number of keys. O(1).
func (s *Set[K]) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Empty reports whether the set holds no keys. O(1).
func (s *Set[K]) Empty() bool {
	return s.Size() == 0
}

// Insert adds key to the set and reports whether the set changed. Inserting
// a key equivalent to one already present is a silent no-op that does not
// invalidate iterators. O(log n).
func (s *Set[K]) Insert(key K) bool {
	if s.Contains(key) {
		return false
	}
	s.version++
	s.size++
	leaf := newLeaf(key)
	if s.root == nil {
		s.root = leaf
		return true
	}
	pos := s.lowerBoundLeaf(key)
	if pos.parent == nil {
		// the tree was a single leaf; grow an internal root over both
		root := &node[K]{}
		root.sons[0] = pos
		root.sons[1] = leaf
		root.nsons = 2
		s.update(root)
		s.root = root
		return true
	}
	p := pos.parent
	p.sons[p.nsons] = leaf
	p.nsons++
	s.update(p)
	s.fix4sons(p)
	// the split cascade stops at its fixed point; ancestor keys above it
	// still need refreshing
	for pos.parent != nil {
		pos = pos.parent
		s.update(pos.parent)
	}
	return true
}

// Delete removes key from the set and reports whether the set changed.
// Deleting an absent key is a silent no-op that does not invalidate
// iterators. O(log n).
func (s *Set[K]) Delete(key K) bool {
	if s.size == 0 {
		return false
	}
	n := s.lowerBoundLeaf(key)
	if s.less(*n.key, key) || s.less(key, *n.key) {
		return false
	}
	s.version++
	s.size--
	if n.parent == nil {
		s.root = nil
		return true
	}
	p := n.parent
	pos := p.indexOf(n)
	for ; pos < p.nsons-1; pos++ {
		p.sons[pos] = p.sons[pos+1]
	}
	p.nsons--
	p.sons[p.nsons] = nil
	n.parent = nil
	s.update(p)
	s.fix1sons(p)
	return true
}

// Contains reports whether the set holds a key equivalent to key. O(log n).
func (s *Set[K]) Contains(key K) bool {
	if s.Size() == 0 {
		return false
	}
	n := s.lowerBoundLeaf(key)
	return !s.less(*n.key, key) && !s.less(key, *n.key)
}

// Find returns an iterator at the key equivalent to key, or End when the
// set holds none. O(log n).
func (s *Set[K]) Find(key K) *Iterator[K] {
	it := s.LowerBound(key)
	if it.cur == &s.end {
		return it
	}
	if s.less(*it.cur.key, key) || s.less(key, *it.cur.key) {
		return s.End()
	}
	return it
}

// LowerBound returns an iterator at the first key not less than key, or
// End when every key is smaller. O(log n).
func (s *Set[K]) LowerBound(key K) *Iterator[K] {
	if s.size == 0 {
		return s.End()
	}
	n := s.root
	for n.nsons > 0 {
		switch {
		case !s.less(*n.sons[0].key, key):
			n = n.sons[0]
		case !s.less(*n.sons[1].key, key):
			n = n.sons[1]
		case n.nsons == 2 || s.less(*n.sons[2].key, key):
			return s.End()
		default:
			n = n.sons[2]
		}
	}
	if s.less(*n.key, key) {
		return s.End()
	}
	return s.newIterator(n)
}

// Begin returns an iterator at the smallest key, or End on an empty set.
func (s *Set[K]) Begin() *Iterator[K] {
	if s.size == 0 {
		return s.End()
	}
	return s.newIterator(s.root.minimum())
}

// End returns the off-the-end iterator.
func (s *Set[K]) End() *Iterator[K] {
	return s.newIterator(&s.end)
}

// Min returns the smallest key, or false on an empty set. O(log n).
func (s *Set[K]) Min() (K, bool) {
	if s.root == nil {
		var zero K
		return zero, false
	}
	return *s.root.minimum().key, true
}

// Max returns the largest key, or false on an empty set. O(log n).
func (s *Set[K]) Max() (K, bool) {
	if s.root == nil {
		var zero K
		return zero, false
	}
	return *s.root.maximum().key, true
}

// Each calls fn for every key in ascending order until fn returns false.
// fn must not mutate the set.
func (s *Set[K]) Each(fn func(key K) bool) {
	if s == nil || s.root == nil {
		return
	}
	for n := s.root.minimum(); n != &s.end; n = s.nextLeaf(n) {
		if !fn(*n.key) {
			return
		}
	}
}

// Keys returns all keys in ascending order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.Size())
	s.Each(func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Clone returns an independent set with the same keys and comparator. The
// copy is rebuilt by in-order reinsertion, so its shape depends only on the
// keys, not on the source's mutation history.
func (s *Set[K]) Clone() *Set[K] {
	dst := &Set[K]{less: s.less}
	s.Each(func(k K) bool {
		dst.Insert(k)
		return true
	})
	return dst
}

// Assign replaces s's contents with a copy of src's, invalidating every
// iterator on s. Assigning a set to itself is a no-op.
func (s *Set[K]) Assign(src *Set[K]) {
	if s == src {
		return
	}
	s.root = nil
	s.size = 0
	s.less = src.less
	src.Each(func(k K) bool {
		s.Insert(k)
		return true
	})
	s.version++
}

// Take moves src's contents into s without copying, leaving src empty and
// usable. Iterators on both sets are invalidated.
func (s *Set[K]) Take(src *Set[K]) {
	if s == src {
		return
	}
	s.root, s.size, s.less = src.root, src.size, src.less
	src.root, src.size = nil, 0
	s.version++
	src.version++
}

// Clear removes all keys, invalidating every iterator on s.
func (s *Set[K]) Clear() {
	if s.root == nil {
		return
	}
	s.root = nil
	s.size = 0
	s.version++
}
