package candidates

import (
	"golang.org/x/exp/slices"

	"setcheck/candidate"
)

// SortedSlice keeps members in an ascending slice. Handles are immutable
// snapshots; Insert and Remove return fresh slices, so earlier handles
// keep describing earlier sets.
type SortedSlice struct{}

type sliceHandle []int

// sliceEntry is the successor result for SortedSlice.
type sliceEntry int

// Value implements candidate.Entry.
func (e sliceEntry) Value() int { return int(e) }

func (SortedSlice) Name() string { return "sortedslice" }

func sliceOf(h candidate.Handle) sliceHandle {
	if h == nil {
		return nil
	}
	return h.(sliceHandle)
}

func (SortedSlice) Insert(h candidate.Handle, v int) candidate.Handle {
	s := sliceOf(h)
	i, found := slices.BinarySearch([]int(s), v)
	if found {
		return s
	}
	out := make(sliceHandle, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, v)
	out = append(out, s[i:]...)
	return out
}

func (SortedSlice) Find(h candidate.Handle, v int) bool {
	_, found := slices.BinarySearch([]int(sliceOf(h)), v)
	return found
}

func (SortedSlice) Successor(h candidate.Handle, v int) candidate.Entry {
	s := sliceOf(h)
	// First position holding a value strictly greater than v.
	i, _ := slices.BinarySearch([]int(s), v+1)
	if i == len(s) {
		return nil
	}
	return sliceEntry(s[i])
}

func (SortedSlice) Remove(h candidate.Handle, v int) candidate.Handle {
	s := sliceOf(h)
	i, found := slices.BinarySearch([]int(s), v)
	if !found {
		return s
	}
	out := make(sliceHandle, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

func (SortedSlice) Sorted(h candidate.Handle) []int {
	s := sliceOf(h)
	out := make([]int, len(s))
	copy(out, s)
	return out
}
