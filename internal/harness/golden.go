package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/bisect/internal/ir"
)

// Snapshot is the golden representation of a run: the scenario name, its
// run id, the sequence and the full trace.
type Snapshot struct {
	ScenarioName string
	RunID        string
	Sequence     ir.Sequence
	Trace        []TraceEvent
}

// NewSnapshot builds the snapshot of a result.
func NewSnapshot(name string, result *Result) Snapshot {
	return Snapshot{
		ScenarioName: name,
		RunID:        result.RunID,
		Sequence:     result.Sequence,
		Trace:        result.Trace,
	}
}

// MarshalCanonical renders the snapshot as canonical JSON. Equal runs give
// byte-identical output.
func (s Snapshot) MarshalCanonical() ([]byte, error) {
	trace := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		trace[i] = eventMap(event)
	}

	snapshot := map[string]any{
		"scenario_name": s.ScenarioName,
		"sequence":      s.Sequence,
		"trace":         trace,
	}
	if s.RunID != "" {
		snapshot["run_id"] = s.RunID
	}
	return ir.MarshalCanonical(snapshot)
}

func eventMap(e TraceEvent) map[string]any {
	m := map[string]any{
		"type": e.Type,
		"seq":  e.Seq,
		"case": e.Case,
	}
	switch e.Type {
	case EventLookup:
		m["target"] = e.Target
	case EventProbe:
		m["step"] = *e.Step
	case EventResult:
		m["index"] = e.Index
		m["found"] = e.Found
	}
	return m
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails. Test failure (via goldie) occurs
// if the snapshot doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario, opts ...Option) error {
	t.Helper()

	result, err := Run(scenario, opts...)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result against the golden file for name
// without re-running the scenario.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := NewSnapshot(name, result).MarshalCanonical()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
