package harness

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/roach88/bisect/internal/ir"
	"github.com/roach88/bisect/internal/search"
	"github.com/roach88/bisect/internal/testutil"
)

// ErrUnsorted is returned when a scenario's sequence is not in
// non-decreasing order.
var ErrUnsorted = errors.New("sequence is not sorted")

// Harness executes scenarios. Its zero value is not usable; build one with
// New or call Run.
type Harness struct {
	logger *zap.Logger
	runIDs RunIDGenerator
	clock  *testutil.LogicalClock
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Harness) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithRunIDGenerator sets the source of run ids for scenarios that don't fix
// one. The default is UUIDv7Generator.
func WithRunIDGenerator(gen RunIDGenerator) Option {
	return func(h *Harness) {
		if gen != nil {
			h.runIDs = gen
		}
	}
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger: zap.NewNop(),
		runIDs: UUIDv7Generator{},
		clock:  testutil.NewLogicalClock(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a fresh Harness.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	return New(opts...).Run(scenario)
}

// Run executes every case of the scenario and returns the result.
//
// Execution errors (bad kind, unparsable elements, unsorted sequence) are
// returned as errors. Unmet expectations are recorded in Result.Errors.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	seq, targets, err := prepare(scenario)
	if err != nil {
		return nil, err
	}

	runID := scenario.RunID
	if runID == "" {
		runID = h.runIDs.Generate()
	}

	h.clock.Reset()
	result := NewResult(runID)
	result.Sequence = seq

	log := h.logger.With(
		zap.String("scenario", scenario.Name),
		zap.String("run_id", runID),
	)
	log.Debug("scenario starting",
		zap.String("kind", string(seq.Kind())),
		zap.Int("length", seq.Len()),
		zap.Int("cases", len(scenario.Cases)),
	)

	for i, c := range scenario.Cases {
		cr := h.runCase(i, c, seq, targets[i], result)
		result.Cases = append(result.Cases, cr)

		log.Debug("case completed",
			zap.Int("case", i),
			zap.Stringer("target", targets[i]),
			zap.Int("index", cr.Index),
			zap.Int("probes", cr.Probes),
			zap.Bool("pass", cr.Pass),
		)
	}

	if result.Pass {
		log.Info("scenario passed", zap.Int("cases", len(result.Cases)))
	} else {
		log.Warn("scenario failed", zap.Strings("errors", result.Errors))
	}
	return result, nil
}

func (h *Harness) runCase(i int, c Case, seq ir.Sequence, target ir.Value, result *Result) CaseResult {
	result.Trace = append(result.Trace, TraceEvent{
		Type:   EventLookup,
		Seq:    h.clock.Tick(),
		Case:   i,
		Target: target,
	})

	// prepare guarantees matching kinds, so Trace cannot fail here.
	index, steps, _ := seq.Trace(target)
	for _, st := range steps {
		step := st
		result.Trace = append(result.Trace, TraceEvent{
			Type: EventProbe,
			Seq:  h.clock.Tick(),
			Case: i,
			Step: &step,
		})
	}

	found := index != search.NotFound
	result.Trace = append(result.Trace, TraceEvent{
		Type:  EventResult,
		Seq:   h.clock.Tick(),
		Case:  i,
		Index: index,
		Found: found,
	})

	cr := CaseResult{
		Name:   c.Name,
		Target: target,
		Index:  index,
		Found:  found,
		Probes: len(steps),
		Pass:   true,
	}
	if msg := checkExpect(c.Expect, seq, target, index); msg != "" {
		cr.Pass = false
		result.AddError(fmt.Sprintf("cases[%d] %s: %s", i, caseLabel(c, target), msg))
	}
	return cr
}

// checkExpect returns a description of the mismatch, or "" if the outcome
// meets the expectation.
func checkExpect(exp *Expect, seq ir.Sequence, target ir.Value, index int) string {
	if !exp.Found {
		if index != search.NotFound {
			return fmt.Sprintf("expected not found, got index %d", index)
		}
		return ""
	}

	if index == search.NotFound {
		return "expected found, got not found"
	}
	if exp.Index != nil && *exp.Index != index {
		return fmt.Sprintf("expected index %d, got %d", *exp.Index, index)
	}
	if c, err := ir.Compare(seq.At(index), target); err != nil || c != 0 {
		return fmt.Sprintf("index %d holds %s, not the target", index, seq.At(index))
	}
	return ""
}

func caseLabel(c Case, target ir.Value) string {
	if c.Name != "" {
		return fmt.Sprintf("%q", c.Name)
	}
	return fmt.Sprintf("target %s", target)
}

// prepare parses the sequence and every target with one kind and checks the
// sortedness precondition.
func prepare(s *Scenario) (ir.Sequence, []ir.Value, error) {
	kind, err := ir.ParseKind(s.Kind)
	if err != nil {
		return ir.Sequence{}, nil, err
	}

	tokens, err := ir.Tokens(s.Sequence)
	if err != nil {
		return ir.Sequence{}, nil, fmt.Errorf("sequence: %w", err)
	}

	targetTokens := make([]string, len(s.Cases))
	for i, c := range s.Cases {
		tok, err := ir.Token(c.Target)
		if err != nil {
			return ir.Sequence{}, nil, fmt.Errorf("cases[%d].target: %w", i, err)
		}
		targetTokens[i] = tok
	}

	if kind == ir.KindAuto {
		kind = ir.InferKind(append(append([]string{}, tokens...), targetTokens...))
	}

	seq, err := ir.ParseSequence(tokens, kind)
	if err != nil {
		return ir.Sequence{}, nil, fmt.Errorf("sequence: %w", err)
	}
	if at := seq.FirstUnsorted(); at != search.NotFound {
		return ir.Sequence{}, nil, fmt.Errorf("%w: element[%d] sorts before element[%d]", ErrUnsorted, at, at-1)
	}

	targets := make([]ir.Value, len(targetTokens))
	for i, tok := range targetTokens {
		v, err := seq.ParseTarget(tok)
		if err != nil {
			return ir.Sequence{}, nil, fmt.Errorf("cases[%d]: %w", i, err)
		}
		targets[i] = v
	}
	return seq, targets, nil
}
