package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kcaldas/dbgconsole/pkg/logging"
	"github.com/spf13/cobra"
)

func newExecCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exec [line...]",
		Short: "Run command lines through a console",
		Long: `Run the arguments, joined by spaces, as one command line and print its output.
Without arguments, every line read from a pipe is run in order through the same
console, so commands like history see the earlier lines.`,
		Example: `  dbgconsole exec echo hello
  printf 'echo a\nhistory\n' | dbgconsole exec`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := []string{strings.Join(args, " ")}
			if len(args) == 0 {
				if !hasStdinInput(cmd.InOrStdin()) {
					return errors.New("nothing to run: pass a command line or pipe lines on stdin")
				}
				var err error
				if lines, err = readStdinLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			s, err := opts.newSession()
			if err != nil {
				return err
			}
			defer s.Close()

			logger := logging.NewSessionLogger("exec", s.ID())
			for _, line := range lines {
				output, ok := s.Console().Run(line)
				if !ok {
					logger.Debug("skipping empty line")
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), output)
			}
			return nil
		},
	}
}
