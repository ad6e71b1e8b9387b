package registry

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"

	"setcheck/candidate"
)

// nopCandidate is the minimal implementation needed to exercise loading.
type nopCandidate struct{ name string }

func (c nopCandidate) Name() string { return c.name }

func (nopCandidate) Insert(h candidate.Handle, v int) candidate.Handle { return h }

func (nopCandidate) Find(h candidate.Handle, v int) bool { return false }

func (nopCandidate) Successor(h candidate.Handle, v int) candidate.Entry { return nil }

func (nopCandidate) Remove(h candidate.Handle, v int) candidate.Handle { return h }

func (nopCandidate) Sorted(h candidate.Handle) []int { return nil }

func TestLoadPreservesRegistrationOrder(t *testing.T) {
	r := New()
	r.Register("charlie", func() (candidate.Candidate, error) { return nopCandidate{"charlie"}, nil })
	r.Register("alice", func() (candidate.Candidate, error) { return nopCandidate{"alice"}, nil })
	r.Register("bob", func() (candidate.Candidate, error) { return nopCandidate{"bob"}, nil })

	want := []string{"charlie", "alice", "bob"}
	if !slices.Equal(r.Names(), want) {
		t.Errorf("Names() = %v. Expected %v", r.Names(), want)
	}

	loaded := r.Load()
	if len(loaded) != 3 {
		t.Fatalf("Expected 3 loaded candidates. Got %v", len(loaded))
	}
	for i, l := range loaded {
		if l.Name != want[i] {
			t.Errorf("Loaded candidate %v has name %q. Expected %q", i, l.Name, want[i])
		}
		if l.Err != nil {
			t.Errorf("Did not expect a load error for %q. Got %v", l.Name, l.Err)
		}
	}
}

func TestLoadIsolatesFailingConstructors(t *testing.T) {
	bad := errors.New("no such author")
	r := New()
	r.Register("good", func() (candidate.Candidate, error) { return nopCandidate{"good"}, nil })
	r.Register("failing", func() (candidate.Candidate, error) { return nil, bad })
	r.Register("panicking", func() (candidate.Candidate, error) { panic("boom") })
	r.Register("empty", func() (candidate.Candidate, error) { return nil, nil })

	loaded := r.Load()
	if len(loaded) != 4 {
		t.Fatalf("Expected 4 loaded entries. Got %v", len(loaded))
	}
	if loaded[0].Err != nil || loaded[0].Candidate == nil {
		t.Errorf("Expected the good candidate to load. Got error %v", loaded[0].Err)
	}
	if !errors.Is(loaded[1].Err, bad) {
		t.Errorf("Expected the constructor error to be preserved. Got %v", loaded[1].Err)
	}
	if loaded[2].Err == nil || loaded[2].Candidate != nil {
		t.Errorf("Expected a panicking constructor to produce a load error")
	}
	if loaded[3].Err == nil {
		t.Errorf("Expected a nil candidate to produce a load error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected a duplicate registration to panic")
		}
	}()
	r := New()
	ctor := func() (candidate.Candidate, error) { return nopCandidate{"dup"}, nil }
	r.Register("dup", ctor)
	r.Register("dup", ctor)
}
