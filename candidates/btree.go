package candidates

import (
	"github.com/google/btree"

	"setcheck/candidate"
)

// BTreeSet stores members in a google/btree B-tree. The tree behind a
// handle is mutated in place; BTreeSet owns it and the harness never sees
// past it.
type BTreeSet struct{}

// btreeEntry is the successor result for BTreeSet.
type btreeEntry int

// Value implements candidate.Entry.
func (e btreeEntry) Value() int { return int(e) }

func (BTreeSet) Name() string { return "btree" }

func btreeOf(h candidate.Handle) *btree.BTreeG[int] {
	if h == nil {
		return btree.NewG(2, func(a, b int) bool { return a < b })
	}
	return h.(*btree.BTreeG[int])
}

func (BTreeSet) Insert(h candidate.Handle, v int) candidate.Handle {
	t := btreeOf(h)
	t.ReplaceOrInsert(v)
	return t
}

func (BTreeSet) Find(h candidate.Handle, v int) bool {
	return btreeOf(h).Has(v)
}

func (BTreeSet) Successor(h candidate.Handle, v int) candidate.Entry {
	var succ candidate.Entry
	btreeOf(h).AscendGreaterOrEqual(v+1, func(w int) bool {
		succ = btreeEntry(w)
		return false
	})
	return succ
}

func (BTreeSet) Remove(h candidate.Handle, v int) candidate.Handle {
	t := btreeOf(h)
	t.Delete(v)
	return t
}

func (BTreeSet) Sorted(h candidate.Handle) []int {
	t := btreeOf(h)
	out := make([]int, 0, t.Len())
	t.Ascend(func(v int) bool {
		out = append(out, v)
		return true
	})
	return out
}
