// Package workflow models the guided three-step research flow as an
// immutable session value with forward-only transitions. Each transition is
// a pure function returning a new Session; nothing is mutated in place, and
// reset clears industry, references and report together.
package workflow

import (
	"errors"
	"strings"

	"github.com/wikibrief/wikibrief/internal/extract"
	"github.com/wikibrief/wikibrief/internal/sanitize"
	"github.com/wikibrief/wikibrief/internal/validate"
	"github.com/wikibrief/wikibrief/internal/wordcount"
)

// Step tracks progression through the flow.
type Step int

const (
	AwaitingIndustry Step = iota
	HasIndustry
	HasLinks
	HasReport
)

func (s Step) String() string {
	switch s {
	case AwaitingIndustry:
		return "awaiting-industry"
	case HasIndustry:
		return "has-industry"
	case HasLinks:
		return "has-links"
	case HasReport:
		return "has-report"
	default:
		return "unknown"
	}
}

var (
	// ErrNoIndustry guards transitions that need a validated industry first.
	ErrNoIndustry = errors.New("no validated industry yet")
	// ErrNoReferences guards report generation before references exist.
	ErrNoReferences = errors.New("no references discovered yet")
	// ErrReferencesFixed rejects re-running discovery once references exist.
	ErrReferencesFixed = errors.New("references already discovered; reset to start over")
	// ErrReportFixed rejects regenerating a report that already exists.
	ErrReportFixed = errors.New("report already generated; reset to start over")
)

// Session is one research flow's state. Zero value is a fresh session
// awaiting industry input.
type Session struct {
	Step       Step
	Industry   string
	References []extract.Reference
	Report     string
}

// WithIndustry validates raw input and starts a new flow from it. Any
// previously collected references or report belong to the old industry and
// are dropped. On validation failure the receiver is returned unchanged.
func (s Session) WithIndustry(raw string) (Session, error) {
	industry, err := validate.Industry(raw)
	if err != nil {
		return s, err
	}
	return Session{Step: HasIndustry, Industry: industry}, nil
}

// WithReferences records the discovered reference set. The slice is copied;
// the set is fixed for the rest of the flow. Only the HasIndustry step may
// take this transition: once references exist, only a reset or a new
// industry goes back.
func (s Session) WithReferences(refs []extract.Reference) (Session, error) {
	if s.Step < HasIndustry {
		return s, ErrNoIndustry
	}
	if s.Step > HasIndustry {
		return s, ErrReferencesFixed
	}
	next := s
	next.References = append([]extract.Reference(nil), refs...)
	next.Step = HasLinks
	return next, nil
}

// WithReport sanitizes raw model output and records it as the final report.
// Only the HasLinks step may take this transition.
func (s Session) WithReport(raw string) (Session, error) {
	if s.Step < HasLinks {
		return s, ErrNoReferences
	}
	if s.Step > HasLinks {
		return s, ErrReportFixed
	}
	next := s
	next.Report = sanitize.Report(raw)
	next.Step = HasReport
	return next, nil
}

// Reset returns a fresh session.
func (s Session) Reset() Session {
	return Session{}
}

// WordCount is recomputed from the report every time; it is never stored,
// so it cannot go stale against a changed report.
func (s Session) WordCount() int {
	return wordcount.Count(s.Report)
}

// ArtifactName is the download filename for the report.
func (s Session) ArtifactName() string {
	return strings.ReplaceAll(s.Industry, " ", "_") + "_report.txt"
}
