// Package candidate defines the contract an ordered-set implementation
// under test must satisfy.
//
// The harness never inspects a candidate's internal representation. All it
// holds between operations is an opaque Handle, and all it reads from a
// successor query is the value carried by the returned Entry.
package candidate

// Handle is an opaque reference to "the set after an operation".
//
// A nil Handle represents the empty set. Every other Handle is a value the
// candidate itself returned from Insert or Remove; the candidate owns its
// representation and may mutate or replace it behind the Handle.
type Handle any

// Entry is the result of a successor query.
//
// Implementations return their own node types. The harness compares only
// the carried value and ignores any other state the entry holds.
type Entry interface {
	Value() int
}

// Candidate is one implementation of the ordered-set contract.
//
// A Candidate is constructed once at discovery time and reused across all
// property checks. It must not carry state between calls except through
// the handles it returns.
type Candidate interface {
	// Name identifies the implementation in reports.
	Name() string

	// Insert returns a handle representing the set plus v.
	// A nil handle means "start a new set".
	Insert(h Handle, v int) Handle

	// Find reports whether v is a member of the set.
	Find(h Handle, v int) bool

	// Successor returns the smallest member strictly greater than v,
	// or nil if there is none.
	Successor(h Handle, v int) Entry

	// Remove returns a handle representing the set without v.
	Remove(h Handle, v int) Handle

	// Sorted returns the members in ascending order, without duplicates.
	Sorted(h Handle) []int
}

// Build folds Insert over values, starting from the empty handle.
func Build(c Candidate, values []int) Handle {
	var h Handle
	for _, v := range values {
		h = c.Insert(h, v)
	}
	return h
}
