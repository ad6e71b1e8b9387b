// Package candidates holds the ordered-set implementations that ship with
// the harness. Each one is an independent rendition of the same contract,
// which gives a fresh checkout a meaningful sweep out of the box.
package candidates

import (
	"setcheck/candidate"
	"setcheck/registry"
)

// RegisterAll adds every built-in implementation to the registry.
func RegisterAll(r *registry.Registry) {
	r.Register("bst", func() (candidate.Candidate, error) { return BST{}, nil })
	r.Register("btree", func() (candidate.Candidate, error) { return BTreeSet{}, nil })
	r.Register("sortedslice", func() (candidate.Candidate, error) { return SortedSlice{}, nil })
}
