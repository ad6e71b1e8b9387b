package refmodel

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestSortedUnique(t *testing.T) {
	tests := []struct {
		in   []int
		want []int
	}{
		{[]int{}, []int{}},
		{[]int{5}, []int{5}},
		{[]int{3, 1, 2}, []int{1, 2, 3}},
		{[]int{2, 2, 2}, []int{2}},
		{[]int{5, 3, 8, 3, 1}, []int{1, 3, 5, 8}},
		{[]int{-1, 0, -1, 1}, []int{-1, 0, 1}},
	}
	for _, test := range tests {
		got := SortedUnique(test.in)
		if !slices.Equal(got, test.want) {
			t.Errorf("SortedUnique(%v) = %v. Expected %v", test.in, got, test.want)
		}
	}
}

func TestSortedUniqueDoesNotMutateInput(t *testing.T) {
	in := []int{3, 1, 2}
	SortedUnique(in)
	if !slices.Equal(in, []int{3, 1, 2}) {
		t.Errorf("SortedUnique mutated its input: %v", in)
	}
}

func TestSuccessorOf(t *testing.T) {
	tests := []struct {
		v     int
		in    []int
		want  int
		found bool
	}{
		{5, []int{5}, 0, false},
		{1, []int{3, 1, 2}, 2, true},
		{3, []int{3, 1, 2}, 0, false},
		{5, []int{5, 3, 8, 3, 1}, 8, true},
		{2, []int{2, 2, 2}, 0, false},
		{4, []int{5, 3, 8, 3, 1}, 5, true}, // v absent from the input
		{100, []int{1, 2}, 0, false},
	}
	for _, test := range tests {
		got, found := SuccessorOf(test.v, test.in)
		if found != test.found {
			t.Errorf("SuccessorOf(%v, %v): expected found=%v. Got %v", test.v, test.in, test.found, found)
			continue
		}
		if found && got != test.want {
			t.Errorf("SuccessorOf(%v, %v) = %v. Expected %v", test.v, test.in, got, test.want)
		}
	}
}
