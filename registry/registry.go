// Package registry keeps track of the candidate implementations available
// to a sweep.
//
// Candidates register a constructor under an author-derived name. The
// registry builds each instance exactly once, in registration order. A
// constructor that fails only takes its own candidate out of the sweep.
package registry

import (
	"runtime/debug"
	"sync"

	"github.com/gravitational/trace"

	"setcheck/candidate"
)

// Constructor creates a single candidate instance.
type Constructor func() (candidate.Candidate, error)

// Registry is a mapping from candidate name to constructor, built once at
// startup from an explicit registration list.
type Registry struct {
	mu    sync.Mutex
	order []string
	ctors map[string]Constructor
}

func New() *Registry {
	return &Registry{
		ctors: map[string]Constructor{},
	}
}

// Register adds a named constructor to the registry.
//
// Registering the same name twice is a programming error and panics.
func (r *Registry) Register(name string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ctors[name]; ok {
		panic("registry: duplicate candidate name " + name)
	}
	r.order = append(r.order, name)
	r.ctors[name] = ctor
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Loaded is the result of constructing one registered candidate.
//
// If Err is set the candidate failed to load. It is still reported, so the
// sweep output enumerates every registered name, but no properties are
// checked against it.
type Loaded struct {
	Name      string
	Candidate candidate.Candidate
	Err       error
}

// Load constructs every registered candidate exactly once, in registration
// order. A constructor that returns an error or panics produces a Loaded
// entry with Err set; the remaining candidates still load.
func (r *Registry) Load() []Loaded {
	r.mu.Lock()
	defer r.mu.Unlock()

	loaded := make([]Loaded, 0, len(r.order))
	for _, name := range r.order {
		l := Loaded{Name: name}
		l.Candidate, l.Err = construct(r.ctors[name])
		loaded = append(loaded, l)
	}
	return loaded
}

func construct(ctor Constructor) (c candidate.Candidate, err error) {
	defer func() {
		if p := recover(); p != nil {
			c = nil
			err = trace.BadParameter("constructor panicked: %v\n%s", p, debug.Stack())
		}
	}()
	c, err = ctor()
	if err != nil {
		return nil, trace.Wrap(err)
	}
	if c == nil {
		return nil, trace.NotFound("constructor returned no candidate")
	}
	return c, nil
}
