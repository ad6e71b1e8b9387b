// Package properties contains the correctness properties every ordered-set
// candidate must satisfy, judged against the reference model.
//
// Each property is a function of a candidate and one generated case. All
// properties sample an existing element of the case, so they are defined
// only over non-empty cases; the generator guarantees this.
package properties

import (
	"fmt"

	"golang.org/x/exp/slices"

	"setcheck/candidate"
	"setcheck/gen"
	"setcheck/refmodel"
)

// Check evaluates one property for one case. It returns nil if the
// property holds and a *Violation otherwise.
type Check func(c candidate.Candidate, cs gen.Case) error

// A Property is one universally-quantified correctness statement.
type Property struct {
	Name  string
	Check Check
}

// Violation is a counterexample to a property. The case is sufficient to
// reproduce the trial: every sampled parameter is derived from it.
type Violation struct {
	Property string
	Case     gen.Case
	Expected string
	Observed string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%v violated for case %v: expected %v, observed %v",
		v.Property, v.Case, v.Expected, v.Observed)
}

// Suite returns the five properties in their canonical order.
func Suite() []Property {
	return []Property{
		{Name: "sorted-dedup", Check: checkSortedDedup},
		{Name: "presence", Check: checkPresence},
		{Name: "successor", Check: checkSuccessor},
		{Name: "absence", Check: checkAbsence},
		{Name: "removal", Check: checkRemoval},
	}
}

// Folding insert over the case must yield exactly the deduplicated
// ascending view of the case.
func checkSortedDedup(c candidate.Candidate, cs gen.Case) error {
	want := refmodel.SortedUnique(cs)
	got := c.Sorted(candidate.Build(c, cs))
	if !slices.Equal(got, want) {
		return &Violation{
			Property: "sorted-dedup",
			Case:     cs,
			Expected: fmt.Sprint(want),
			Observed: fmt.Sprint(got),
		}
	}
	return nil
}

// A value sampled from the case must be a member of the tree.
func checkPresence(c candidate.Candidate, cs gen.Case) error {
	v := cs.Pick()
	if !c.Find(candidate.Build(c, cs), v) {
		return &Violation{
			Property: "presence",
			Case:     cs,
			Expected: fmt.Sprintf("Find(%v) = true", v),
			Observed: "false",
		}
	}
	return nil
}

// The candidate's successor of a sampled value must agree with the
// reference model. Only the value carried by the returned entry is
// compared; any other state the entry holds is ignored.
func checkSuccessor(c candidate.Candidate, cs gen.Case) error {
	v := cs.Pick()
	want, ok := refmodel.SuccessorOf(v, cs)
	got := c.Successor(candidate.Build(c, cs), v)
	switch {
	case !ok && got != nil:
		return &Violation{
			Property: "successor",
			Case:     cs,
			Expected: fmt.Sprintf("Successor(%v) absent", v),
			Observed: fmt.Sprint(got.Value()),
		}
	case ok && got == nil:
		return &Violation{
			Property: "successor",
			Case:     cs,
			Expected: fmt.Sprintf("Successor(%v) = %v", v, want),
			Observed: "absent",
		}
	case ok && got.Value() != want:
		return &Violation{
			Property: "successor",
			Case:     cs,
			Expected: fmt.Sprintf("Successor(%v) = %v", v, want),
			Observed: fmt.Sprint(got.Value()),
		}
	}
	return nil
}

// A value strictly greater than every element of the case must not be a
// member of the tree.
func checkAbsence(c candidate.Candidate, cs gen.Case) error {
	v := cs.Max() + 1
	if c.Find(candidate.Build(c, cs), v) {
		return &Violation{
			Property: "absence",
			Case:     cs,
			Expected: fmt.Sprintf("Find(%v) = false", v),
			Observed: "true",
		}
	}
	return nil
}

// Removing a value sampled from the deduplicated view must exclude exactly
// that value and leave every other value untouched.
func checkRemoval(c candidate.Candidate, cs gen.Case) error {
	unique := refmodel.SortedUnique(cs)
	v := cs.PickFrom(unique)
	want := make([]int, 0, len(unique)-1)
	for _, w := range unique {
		if w != v {
			want = append(want, w)
		}
	}
	got := c.Sorted(c.Remove(candidate.Build(c, cs), v))
	if !slices.Equal(got, want) {
		return &Violation{
			Property: "removal",
			Case:     cs,
			Expected: fmt.Sprintf("after Remove(%v): %v", v, want),
			Observed: fmt.Sprint(got),
		}
	}
	return nil
}
