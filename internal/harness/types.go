package harness

import (
	"github.com/roach88/bisect/internal/ir"
	"github.com/roach88/bisect/internal/search"
)

// Trace event types.
const (
	EventLookup = "lookup"
	EventProbe  = "probe"
	EventResult = "result"
)

// TraceEvent is one entry of a scenario trace. A lookup event is followed by
// its probe events and closed by a result event.
type TraceEvent struct {
	Type   string       `json:"type"`
	Seq    int64        `json:"seq"`
	Case   int          `json:"case"`
	Target ir.Value     `json:"target,omitempty"`
	Step   *search.Step `json:"step,omitempty"`
	Index  int          `json:"index"`
	Found  bool         `json:"found"`
}

// CaseResult is the outcome of one lookup.
type CaseResult struct {
	Name   string   `json:"name,omitempty"`
	Target ir.Value `json:"target"`
	Index  int      `json:"index"`
	Found  bool     `json:"found"`
	Probes int      `json:"probes"`
	Pass   bool     `json:"pass"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every case met its expectation.
	Pass bool `json:"pass"`

	// RunID identifies this run. Fixed by the scenario or generated.
	RunID string `json:"run_id"`

	// Sequence is the parsed sequence the lookups ran against.
	Sequence ir.Sequence `json:"-"`

	Cases []CaseResult `json:"cases"`

	// Trace holds lookup, probe and result events in order.
	Trace []TraceEvent `json:"trace"`

	// Errors describes every failed expectation. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result with no cases.
func NewResult(runID string) *Result {
	return &Result{
		Pass:   true,
		RunID:  runID,
		Cases:  []CaseResult{},
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError records a failed expectation and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
