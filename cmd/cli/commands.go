package cli

import (
	"fmt"

	"github.com/kcaldas/dbgconsole/pkg/commands"
	"github.com/spf13/cobra"
)

func newCommandsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands a console understands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession()
			if err != nil {
				return err
			}
			defer s.Close()

			fmt.Fprintln(cmd.OutOrStdout(), commands.NewListCommandsCommand(s.Console().Interpreter()).Execute(nil))
			return nil
		},
	}
}
