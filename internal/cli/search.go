package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/bisect/internal/ir"
	"github.com/roach88/bisect/internal/search"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Kind  string // auto | int | string
	Check bool   // verify sortedness before searching
}

// SearchResult is the outcome of one lookup.
type SearchResult struct {
	Target ir.Value `json:"target"`
	Index  int      `json:"index"`
	Found  bool     `json:"found"`
	Kind   ir.Kind  `json:"kind"`
	Length int      `json:"length"`
}

func (r SearchResult) String() string {
	return fmt.Sprintf("Index of %s: %d", r.Target, r.Index)
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search <target> [value...]",
		Short: "Find a target in a sorted sequence",
		Long: `Binary search for <target> in the sorted values that follow it.

Prints the 0-based index of an element equal to the target, or -1
when the target is absent. Absence is a normal outcome (exit 0).

The values must be sorted in non-decreasing order. They are not
verified unless --check is given; unsorted input gives an
unspecified index.

Examples:
  bisect search 7 1 3 5 7 9 11 13
  bisect search cherry apple banana cherry --kind string
  bisect search 2 1 3 5 7 --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, args[0], args[1:], cmd)
		},
	}

	addKindFlag(cmd, &opts.Kind)
	cmd.Flags().BoolVar(&opts.Check, "check", false, "verify the values are sorted before searching")

	return cmd
}

func addKindFlag(cmd *cobra.Command, kind *string) {
	cmd.Flags().StringVar(kind, "kind", string(ir.KindAuto), "element kind (auto|int|string)")
}

func runSearch(opts *SearchOptions, target string, values []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	seq, t, err := parseLookup(opts.Kind, target, values, opts.Check, formatter)
	if err != nil {
		return err
	}

	index, err := seq.Index(t)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidInput, err, nil)
	}

	opts.logger().Debug("search completed",
		zap.Stringer("target", t),
		zap.String("kind", string(seq.Kind())),
		zap.Int("length", seq.Len()),
		zap.Int("index", index),
	)

	return formatter.Success(SearchResult{
		Target: t,
		Index:  index,
		Found:  index != search.NotFound,
		Kind:   seq.Kind(),
		Length: seq.Len(),
	})
}

// parseLookup parses the kind flag, the target and the values, reporting
// failures through formatter. With check set, an unsorted sequence fails
// with ErrCodeUnsorted.
func parseLookup(kindFlag, target string, values []string, check bool, formatter *OutputFormatter) (ir.Sequence, ir.Value, error) {
	kind, err := ir.ParseKind(kindFlag)
	if err != nil {
		return ir.Sequence{}, nil, formatter.Fail(ExitCommandError, ErrCodeInvalidInput, err, nil)
	}

	seq, t, err := ir.ParseLookup(target, values, kind)
	if err != nil {
		return ir.Sequence{}, nil, formatter.Fail(ExitCommandError, ErrCodeInvalidInput, err, nil)
	}

	if check {
		if at := seq.FirstUnsorted(); at != search.NotFound {
			err := fmt.Errorf("sequence is not sorted: element[%d] sorts before element[%d]", at, at-1)
			return ir.Sequence{}, nil, formatter.Fail(ExitCommandError, ErrCodeUnsorted, err,
				map[string]any{"first_unsorted": at})
		}
	}
	return seq, t, nil
}
