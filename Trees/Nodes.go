package Trees

import "golang.org/x/exp/constraints"

// Handle is the type of the indexes into the node arena. Pick the narrowest type that can count
// the nodes the tree will ever hold at once; it bounds MaxSize.
type Handle interface {
	constraints.Unsigned
}

// Links of a node in the arena.
// The zero value is the nil node. p is the parent, l and r the children. When the node is free,
// l is the next free index and gen is 0.
type info[S Handle] struct {
	p, l, r S
	gen     uint64
}

// addFree index once.
func (u *base[K, V, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[K, V, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a node holding (k,v) whose parent is p. Free indexes are reused before the arena grows.
// The node is stamped with a generation no other node of u ever had.
func (u *base[K, V, S]) alloc(k K, v V, p S) S {
	u.gen++
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{p: p, gen: u.gen}
		u.vs[i-1] = Pair[K, V]{k, v}
		return i
	}
	doAssert(uint64(len(u.ifs)) <= uint64(^S(0)), "handle space exhausted")
	u.ifs = append(u.ifs, info[S]{p: p, gen: u.gen})
	u.vs = append(u.vs, Pair[K, V]{k, v})
	return S(len(u.ifs) - 1)
}

// release node i back to the free list. Its payload is zeroed so it can be collected.
func (u *base[K, V, S]) release(i S) {
	u.vs[i-1] = Pair[K, V]{}
	u.addFree(i)
	u.sz--
}

// relink puts n where o is under o's parent. n may be 0. The links of o itself are untouched.
// Time: O(1); Space: O(1)
func (u *base[K, V, S]) relink(o, n S) {
	if p := u.ifs[o].p; p == 0 {
		u.root = n
	} else if u.ifs[p].l == o {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
	if n != 0 {
		u.ifs[n].p = u.ifs[o].p
	}
}
