package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bisect/internal/ir"
	"github.com/roach88/bisect/internal/search"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Kind string
}

// CheckResult reports whether a sequence satisfies the search precondition.
type CheckResult struct {
	Sorted        bool    `json:"sorted"`
	Kind          ir.Kind `json:"kind"`
	Length        int     `json:"length"`
	FirstUnsorted int     `json:"first_unsorted"`
}

func (r CheckResult) String() string {
	if r.Sorted {
		return fmt.Sprintf("sorted (%d %s elements)", r.Length, r.Kind)
	}
	return fmt.Sprintf("not sorted: element[%d] sorts before element[%d]", r.FirstUnsorted, r.FirstUnsorted-1)
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check [value...]",
		Short: "Verify a sequence is sorted",
		Long: `Verify the values are in non-decreasing order, which lookups assume
but never check.

Exit codes:
  0 - Sorted (an empty sequence is sorted)
  1 - Not sorted; the first out-of-order index is reported
  2 - Command error (unparsable values)

Examples:
  bisect check 1 3 5 7
  bisect check 10 2 --kind string`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	addKindFlag(cmd, &opts.Kind)

	return cmd
}

func runCheck(opts *CheckOptions, values []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	kind, err := ir.ParseKind(opts.Kind)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidInput, err, nil)
	}

	seq, err := ir.ParseSequence(values, kind)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidInput, err, nil)
	}

	at := seq.FirstUnsorted()
	result := CheckResult{
		Sorted:        at == search.NotFound,
		Kind:          seq.Kind(),
		Length:        seq.Len(),
		FirstUnsorted: at,
	}

	if result.Sorted {
		return formatter.Success(result)
	}

	if opts.Format == "json" {
		if err := formatter.Error(ErrCodeUnsorted, result.String(), result); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	return NewExitError(ExitFailure, result.String())
}
