package Trees

import (
	"cmp"
	"slices"
)

// base is the storage shared by a Tree and every Iterator created from it. Swapping two trees
// swaps their bases, so iterators keep following their elements.
type base[K cmp.Ordered, V any, S Handle] struct {
	root, free, sz S
	ifs            []info[S]    // ifs[0] is the nil node; all indexes are based on ifs.
	vs             []Pair[K, V] // vs[i-1] corresponds to ifs[i].
	gen            uint64       // last generation handed out by alloc.
}

func newBase[K cmp.Ordered, V any, S Handle](hint S) *base[K, V, S] {
	ifs := make([]info[S], 1, int(hint)+1)
	return &base[K, V, S]{ifs: ifs, vs: make([]Pair[K, V], 0, int(hint))}
}

func (u *base[K, V, S]) clone() *base[K, V, S] {
	b := *u
	b.ifs, b.vs = slices.Clone(u.ifs), slices.Clone(u.vs)
	return &b
}

// clear drops every node. Generations keep increasing, so iterators from before stay invalid.
func (u *base[K, V, S]) clear() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
	u.root, u.free, u.sz = 0, 0, 0
}

func (u *base[K, V, S]) key(i S) K {
	return u.vs[i-1].Key
}

// find the node with key k using strict comparisons. Returns 0 if k isn't in u.
// Time: O(D); Space: O(1)
func (u *base[K, V, S]) find(k K) S {
	for curI := u.root; curI != 0; {
		if ck := u.key(curI); k < ck {
			curI = u.ifs[curI].l
		} else if k > ck {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// attach a new node holding (k,v) as a leaf. Keys <= the key of a node go to its left.
// Time: O(D); Space: O(1)
func (u *base[K, V, S]) attach(k K, v V) S {
	var p S
	left := false
	for curI := u.root; curI != 0; {
		p = curI
		if left = k <= u.key(curI); left {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	i := u.alloc(k, v, p) // may grow ifs, so links are written after.
	if p == 0 {
		u.root = i
	} else if left {
		u.ifs[p].l = i
	} else {
		u.ifs[p].r = i
	}
	u.sz++
	return i
}

// erase node i. With two children, the in-order successor is moved into i's position rather than
// having its payload copied, so handles of all other nodes keep their payloads.
// Time: O(D); Space: O(1)
func (u *base[K, V, S]) erase(i S) {
	cur := u.ifs[i]
	switch {
	case cur.l == 0 && cur.r == 0:
		u.relink(i, 0)
	case cur.l == 0:
		u.relink(i, cur.r)
	case cur.r == 0:
		u.relink(i, cur.l)
	default:
		s := u.leftmost(cur.r)
		if s != cur.r {
			u.relink(s, u.ifs[s].r)
			u.ifs[s].r = cur.r
			u.ifs[cur.r].p = s
		}
		u.ifs[s].l = cur.l
		u.ifs[cur.l].p = s
		u.relink(i, s)
	}
	u.release(i)
}

func (u *base[K, V, S]) leftmost(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *base[K, V, S]) rightmost(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// next returns the in-order successor of i, or 0 when i is the maximum.
// Time: amortized O(1)
func (u *base[K, V, S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.leftmost(r)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].r == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// prev returns the in-order predecessor of i, or 0 when i is the minimum.
func (u *base[K, V, S]) prev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.rightmost(l)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].l == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// iter makes an iterator pointing at i.
func (u *base[K, V, S]) iter(i S) Iterator[K, V, S] {
	if i == 0 {
		return Iterator[K, V, S]{b: u}
	}
	return Iterator[K, V, S]{u, i, u.ifs[i].gen}
}

// maxDepth is the number of nodes on the longest root to leaf path. Iterative since an unbalanced
// tree can be as deep as it is large.
func (u *base[K, V, S]) maxDepth() (d uint) {
	if u.root == 0 {
		return 0
	}
	type frame struct {
		i S
		d uint
	}
	for st := []frame{{u.root, 1}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		d = max(d, top.d)
		if l := u.ifs[top.i].l; l != 0 {
			st = append(st, frame{l, top.d + 1})
		}
		if r := u.ifs[top.i].r; r != 0 {
			st = append(st, frame{r, top.d + 1})
		}
	}
	return
}

// corrupt walks u in order and checks parent links, key ordering and the size counter. When
// unique is set, equal neighbours are also a corruption.
func (u *base[K, V, S]) corrupt(unique bool) bool {
	if (u.root == 0) != (u.sz == 0) || u.ifs[u.root].p != 0 || u.ifs[0] != (info[S]{}) {
		return true
	}
	var n S
	for curI, prevI := u.leftmost(u.root), S(0); curI != 0; prevI, curI = curI, u.next(curI) {
		if n++; n > u.sz || u.ifs[curI].gen == 0 {
			return true
		}
		cur := u.ifs[curI]
		if (cur.l != 0 && u.ifs[cur.l].p != curI) || (cur.r != 0 && u.ifs[cur.r].p != curI) {
			return true
		}
		if prevI != 0 {
			if pk, ck := u.key(prevI), u.key(curI); ck < pk || (unique && ck == pk) {
				return true
			}
		}
	}
	return n != u.sz
}
