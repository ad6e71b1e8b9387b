// Package setcheck sweeps ordered-set implementations against a suite of
// randomized correctness properties.
//
// A sweep loads every registered candidate, then checks each property of
// the suite across many generated cases. Verdicts are final once recorded:
// the first counterexample settles a (candidate, property) pair and the
// sweep moves on. A failure never stops the sweep of other properties or
// other candidates.
package setcheck

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime/debug"
	"time"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"setcheck/candidate"
	"setcheck/gen"
	"setcheck/properties"
	"setcheck/registry"
)

// Sweep checks every loaded candidate against every property.
type Sweep struct {
	reg     *registry.Registry
	props   []properties.Property
	seed    int64
	trials  int
	timeout time.Duration
	only    []string
	log     logrus.FieldLogger
}

// PrepareSweep configures a sweep over the candidates registered in reg.
func PrepareSweep(reg *registry.Registry, opts ...Option) *Sweep {
	s := &Sweep{
		reg:     reg,
		props:   properties.Suite(),
		seed:    time.Now().UnixNano(),
		trials:  defaultTrials,
		timeout: defaultTimeout,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		switch t := opt.(type) {
		case seedOption:
			s.seed = t.seed
		case trialsOption:
			s.trials = t.n
		case timeoutOption:
			s.timeout = t.d
		case onlyOption:
			s.only = t.names
		case loggerOption:
			s.log = t.log
		}
	}
	return s
}

// Run executes the sweep and returns one report block per candidate.
//
// Property failures, candidate panics and timeouts are recorded in the
// report and do not interrupt the sweep. Run returns an error only for
// harness-level faults: no candidates to check, invalid configuration, or
// an exhausted case generator.
func (s *Sweep) Run() (*Report, error) {
	if s.trials < 1 {
		return nil, trace.BadParameter("at least one trial per property is required, got %v", s.trials)
	}

	loaded := s.reg.Load()
	if len(s.only) > 0 {
		filtered := make([]registry.Loaded, 0, len(loaded))
		for _, l := range loaded {
			if slices.Contains(s.only, l.Name) {
				filtered = append(filtered, l)
			}
		}
		loaded = filtered
	}
	if len(loaded) == 0 {
		return nil, trace.NotFound("no candidates to sweep")
	}

	// Every (candidate, property) pair gets its own generator. Sub-seeds
	// are drawn from a source seeded with the sweep seed, so the whole
	// sweep replays from the seed in the report.
	seeds := rand.New(rand.NewSource(s.seed))

	report := &Report{Seed: s.seed}
	for _, l := range loaded {
		cr := CandidateReport{Name: l.Name}
		if l.Err != nil {
			cr.LoadErr = l.Err
			s.log.Warnf("Candidate %q failed to load: %v.", l.Name, l.Err)
			report.Candidates = append(report.Candidates, cr)
			continue
		}
		s.log.Infof("Sweeping candidate %q.", l.Name)
		for _, p := range s.props {
			v, err := s.checkProperty(l.Candidate, p, seeds.Int63())
			if err != nil {
				return nil, trace.Wrap(err)
			}
			cr.Verdicts = append(cr.Verdicts, v)
		}
		report.Candidates = append(report.Candidates, cr)
	}
	return report, nil
}

// checkProperty runs the trial loop for one (candidate, property) pair.
// The returned error is a harness fault; candidate misbehavior ends up in
// the verdict instead.
func (s *Sweep) checkProperty(c candidate.Candidate, p properties.Property, seed int64) (Verdict, error) {
	g := gen.New(seed)
	for trial := 0; trial < s.trials; trial++ {
		cs, err := g.Next()
		if err != nil {
			return Verdict{}, trace.Wrap(err)
		}
		v := s.checkCase(c, p, cs)
		if v.Outcome != Passed {
			v.Trials = trial + 1
			return v, nil
		}
	}
	return Verdict{Property: p.Name, Outcome: Passed, Trials: s.trials}, nil
}

// checkCase runs a single trial under the watchdog. A panic in candidate
// code is recovered and reported as its own failure kind; a trial that
// outlives the budget is abandoned and reported as a timeout rather than
// hanging the sweep.
func (s *Sweep) checkCase(c candidate.Candidate, p properties.Property, cs gen.Case) Verdict {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- panicError{value: r, stack: debug.Stack()}
			}
		}()
		done <- p.Check(c, cs)
	}()

	select {
	case err := <-done:
		if err == nil {
			return Verdict{Property: p.Name, Outcome: Passed}
		}
		var viol *properties.Violation
		if errors.As(err, &viol) {
			return Verdict{
				Property: p.Name,
				Outcome:  Failed,
				Case:     cs,
				Detail:   fmt.Sprintf("expected %v, observed %v", viol.Expected, viol.Observed),
			}
		}
		return Verdict{Property: p.Name, Outcome: Panicked, Case: cs, Detail: err.Error()}
	case <-time.After(s.timeout):
		// The trial goroutine is left behind. There is no way to
		// preempt arbitrary candidate code, only to stop waiting on it.
		return Verdict{
			Property: p.Name,
			Outcome:  TimedOut,
			Case:     cs,
			Detail:   fmt.Sprintf("no verdict within %v", s.timeout),
		}
	}
}

// panicError carries a recovered panic out of a trial goroutine.
type panicError struct {
	value any
	stack []byte
}

func (p panicError) Error() string {
	return fmt.Sprintf("candidate panicked: %v\nStack Trace:\n%s", p.value, p.stack)
}
