// Command bisect runs binary searches over sorted sequences given on the
// command line and checks search scenarios against golden traces.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/bisect/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		// ExitErrors have already been reported through the output formatter.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	os.Exit(cli.GetExitCode(err))
}
