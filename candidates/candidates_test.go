package candidates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"setcheck/candidate"
)

func builtins() []candidate.Candidate {
	return []candidate.Candidate{BST{}, BTreeSet{}, SortedSlice{}}
}

func TestRegisterAll(t *testing.T) {
	// Covered indirectly by the sweep tests; here only the names matter.
	for _, c := range builtins() {
		require.NotEmpty(t, c.Name())
	}
}

func TestContractScenarios(t *testing.T) {
	for _, c := range builtins() {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			t.Run("empty set", func(t *testing.T) {
				require.Empty(t, c.Sorted(nil))
				require.False(t, c.Find(nil, 0))
				require.Nil(t, c.Successor(nil, 0))
			})

			t.Run("single element", func(t *testing.T) {
				h := candidate.Build(c, []int{5})
				require.Equal(t, []int{5}, c.Sorted(h))
				require.True(t, c.Find(h, 5))
				require.False(t, c.Find(h, 6))
				require.Nil(t, c.Successor(h, 5))
			})

			t.Run("sorts and finds successors", func(t *testing.T) {
				h := candidate.Build(c, []int{3, 1, 2})
				require.Equal(t, []int{1, 2, 3}, c.Sorted(h))

				succ := c.Successor(h, 1)
				require.NotNil(t, succ)
				require.Equal(t, 2, succ.Value())
				require.Nil(t, c.Successor(h, 3))
			})

			t.Run("collapses duplicates", func(t *testing.T) {
				h := candidate.Build(c, []int{2, 2, 2})
				require.Equal(t, []int{2}, c.Sorted(h))
				require.Empty(t, c.Sorted(c.Remove(h, 2)))
			})

			t.Run("removes a single value", func(t *testing.T) {
				h := candidate.Build(c, []int{5, 3, 8, 3, 1})
				require.Equal(t, []int{1, 3, 5, 8}, c.Sorted(h))

				succ := c.Successor(h, 5)
				require.NotNil(t, succ)
				require.Equal(t, 8, succ.Value())

				require.Equal(t, []int{1, 5, 8}, c.Sorted(c.Remove(h, 3)))
			})

			t.Run("insert is idempotent", func(t *testing.T) {
				h := c.Insert(c.Insert(nil, 7), 7)
				require.Equal(t, []int{7}, c.Sorted(h))
			})

			t.Run("remove of an absent value is a no-op", func(t *testing.T) {
				h := candidate.Build(c, []int{1, 2, 3})
				require.Equal(t, []int{1, 2, 3}, c.Sorted(c.Remove(h, 9)))
			})

			t.Run("successor of an absent value", func(t *testing.T) {
				h := candidate.Build(c, []int{5, 3, 8, 3, 1})
				succ := c.Successor(h, 4)
				require.NotNil(t, succ)
				require.Equal(t, 5, succ.Value())
			})
		})
	}
}

func TestBSTRemoveNodeWithTwoChildren(t *testing.T) {
	c := BST{}
	// 5 at the root with both subtrees populated forces the in-order
	// successor replacement path.
	h := candidate.Build(c, []int{5, 2, 8, 1, 3, 7, 9})
	require.Equal(t, []int{1, 2, 3, 7, 8, 9}, c.Sorted(c.Remove(h, 5)))
}

func TestBSTRemoveRootSingleChild(t *testing.T) {
	c := BST{}
	h := candidate.Build(c, []int{5, 3})
	require.Equal(t, []int{3}, c.Sorted(c.Remove(h, 5)))
}
