package candidates

import "setcheck/candidate"

// BST is a classic unbalanced binary search tree. Handles are *bstNode
// roots; the empty set is a nil root.
type BST struct{}

type bstNode struct {
	value       int
	left, right *bstNode
}

// Value implements candidate.Entry.
func (n *bstNode) Value() int { return n.value }

func (BST) Name() string { return "bst" }

func bstRoot(h candidate.Handle) *bstNode {
	if h == nil {
		return nil
	}
	return h.(*bstNode)
}

func (BST) Insert(h candidate.Handle, v int) candidate.Handle {
	return bstInsert(bstRoot(h), v)
}

func bstInsert(n *bstNode, v int) *bstNode {
	if n == nil {
		return &bstNode{value: v}
	}
	switch {
	case v < n.value:
		n.left = bstInsert(n.left, v)
	case v > n.value:
		n.right = bstInsert(n.right, v)
	}
	return n
}

func (BST) Find(h candidate.Handle, v int) bool {
	n := bstRoot(h)
	for n != nil {
		switch {
		case v < n.value:
			n = n.left
		case v > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

func (BST) Successor(h candidate.Handle, v int) candidate.Entry {
	var succ *bstNode
	n := bstRoot(h)
	for n != nil {
		if n.value > v {
			succ = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if succ == nil {
		return nil
	}
	return succ
}

func (BST) Remove(h candidate.Handle, v int) candidate.Handle {
	n := bstRemove(bstRoot(h), v)
	if n == nil {
		return nil
	}
	return n
}

func bstRemove(n *bstNode, v int) *bstNode {
	if n == nil {
		return nil
	}
	switch {
	case v < n.value:
		n.left = bstRemove(n.left, v)
	case v > n.value:
		n.right = bstRemove(n.right, v)
	default:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// Two children: replace with the in-order successor.
		min := n.right
		for min.left != nil {
			min = min.left
		}
		n.value = min.value
		n.right = bstRemove(n.right, min.value)
	}
	return n
}

func (BST) Sorted(h candidate.Handle) []int {
	out := []int{}
	var walk func(*bstNode)
	walk = func(n *bstNode) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(bstRoot(h))
	return out
}
