package setcheck

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gravitational/trace"

	"setcheck/gen"
)

// Outcome classifies the result of checking one property on one candidate.
type Outcome int

const (
	// Passed means every trial upheld the property.
	Passed Outcome = iota
	// Failed means a generated case violated the property.
	Failed
	// Panicked means the candidate panicked during a trial.
	Panicked
	// TimedOut means a trial exceeded the per-trial budget.
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "PASS"
	case Failed:
		return "FAIL"
	case Panicked:
		return "PANIC"
	case TimedOut:
		return "TIMEOUT"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Verdict is the final result of one (candidate, property) pair. Once
// recorded it is never revisited.
type Verdict struct {
	Property string
	Outcome  Outcome
	// Trials executed before the verdict was reached.
	Trials int
	// Case is the offending case. It is nil for a passing verdict and
	// sufficient to reproduce the trial otherwise.
	Case gen.Case
	// Detail holds expected versus observed values, the recovered panic,
	// or the timeout note.
	Detail string
}

// Report is the aggregated result of one sweep.
type Report struct {
	Seed       int64
	Candidates []CandidateReport
}

// CandidateReport is one report block: either a load failure or a verdict
// per property.
type CandidateReport struct {
	Name     string
	LoadErr  error
	Verdicts []Verdict
}

// Passed reports whether every candidate loaded and every property held.
func (r *Report) Passed() bool {
	for _, cr := range r.Candidates {
		if cr.LoadErr != nil {
			return false
		}
		for _, v := range cr.Verdicts {
			if v.Outcome != Passed {
				return false
			}
		}
	}
	return true
}

var (
	passMarker = color.New(color.FgGreen).Sprint
	failMarker = color.New(color.FgRed).Sprint
	slowMarker = color.New(color.FgYellow).Sprint
)

func marker(o Outcome) string {
	switch o {
	case Passed:
		return passMarker(o.String())
	case TimedOut:
		return slowMarker(o.String())
	default:
		return failMarker(o.String())
	}
}

// Render writes a human-readable report, one block per candidate, with the
// counterexample for each failed property.
func (r *Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "sweep seed %v\n", r.Seed); err != nil {
		return trace.Wrap(err)
	}
	for _, cr := range r.Candidates {
		if err := cr.render(w); err != nil {
			return trace.Wrap(err)
		}
	}
	return nil
}

func (cr CandidateReport) render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n== %v\n", cr.Name); err != nil {
		return trace.Wrap(err)
	}
	if cr.LoadErr != nil {
		_, err := fmt.Fprintf(w, "  %v: %v\n", failMarker("LOAD ERROR"), cr.LoadErr)
		return trace.Wrap(err)
	}

	wrt := tabwriter.NewWriter(w, 4, 4, 2, ' ', 0)
	for _, v := range cr.Verdicts {
		fmt.Fprintf(wrt, "  %v\t%v\t(%v trials)\n", v.Property, marker(v.Outcome), v.Trials)
		if v.Outcome != Passed {
			fmt.Fprintf(wrt, "  \tcase:\t%v\n", v.Case)
			fmt.Fprintf(wrt, "  \t\t%v\n", v.Detail)
		}
	}
	return trace.Wrap(wrt.Flush())
}
