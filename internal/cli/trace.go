package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/bisect/internal/ir"
	"github.com/roach88/bisect/internal/search"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Kind  string
	Check bool
}

// TraceResult is a lookup together with every probe it took.
type TraceResult struct {
	SearchResult
	Steps    []search.Step `json:"steps"`
	MaxSteps int           `json:"max_steps"`

	seq ir.Sequence
}

func (r TraceResult) String() string {
	var b strings.Builder
	for i, st := range r.Steps {
		fmt.Fprintf(&b, "probe %d: low=%d mid=%d high=%d  [%d]=%s %s %s\n",
			i+1, st.Low, st.Mid, st.High, st.Mid, r.seq.At(st.Mid), relation(st.Cmp), r.Target)
	}
	fmt.Fprintf(&b, "%d of at most %d probes\n", len(r.Steps), r.MaxSteps)
	b.WriteString(r.SearchResult.String())
	return b.String()
}

func relation(cmp int) string {
	switch {
	case cmp < 0:
		return "<"
	case cmp > 0:
		return ">"
	}
	return "=="
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace <target> [value...]",
		Short: "Show every probe of a lookup",
		Long: `Run a lookup like "search" and print each probe: the low and high
bounds, the midpoint and how the midpoint element compared to the
target.

Examples:
  bisect trace 2 1 3 5 7 9 11 13
  bisect trace 11 1 3 5 7 9 11 13 --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, args[0], args[1:], cmd)
		},
	}

	addKindFlag(cmd, &opts.Kind)
	cmd.Flags().BoolVar(&opts.Check, "check", false, "verify the values are sorted before searching")

	return cmd
}

func runTrace(opts *TraceOptions, target string, values []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	seq, t, err := parseLookup(opts.Kind, target, values, opts.Check, formatter)
	if err != nil {
		return err
	}

	index, steps, err := seq.Trace(t)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidInput, err, nil)
	}
	if steps == nil {
		steps = []search.Step{}
	}

	opts.logger().Debug("trace completed",
		zap.Stringer("target", t),
		zap.Int("index", index),
		zap.Int("probes", len(steps)),
	)

	return formatter.Success(TraceResult{
		SearchResult: SearchResult{
			Target: t,
			Index:  index,
			Found:  index != search.NotFound,
			Kind:   seq.Kind(),
			Length: seq.Len(),
		},
		Steps:    steps,
		MaxSteps: search.MaxSteps(seq.Len()),
		seq:      seq,
	})
}
