package workflow

import (
	"context"

	"github.com/wikibrief/wikibrief/internal/research"
)

// Runner drives a session through the two model calls. Remote failures are
// returned with the input session unchanged, so the caller keeps whatever
// was last successfully computed and the flow halts at its current step.
type Runner struct {
	Finder   *research.Finder
	Reporter *research.Reporter
}

// Research advances a session from a validated industry to a discovered
// reference set. Sessions that already hold references are rejected before
// any model call is made.
func (r *Runner) Research(ctx context.Context, s Session) (Session, error) {
	if s.Step < HasIndustry {
		return s, ErrNoIndustry
	}
	if s.Step > HasIndustry {
		return s, ErrReferencesFixed
	}
	refs, err := r.Finder.FindReferences(ctx, s.Industry)
	if err != nil {
		return s, err
	}
	return s.WithReferences(refs)
}

// Report advances a session from discovered references to a sanitized
// report.
func (r *Runner) Report(ctx context.Context, s Session) (Session, error) {
	if s.Step < HasLinks {
		return s, ErrNoReferences
	}
	if s.Step > HasLinks {
		return s, ErrReportFixed
	}
	raw, err := r.Reporter.Generate(ctx, s.Industry, s.References)
	if err != nil {
		return s, err
	}
	return s.WithReport(raw)
}
