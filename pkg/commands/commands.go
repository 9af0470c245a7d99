package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var oo = &base.OutputOptions{}

// New assembles the chipfield command tree.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chipfield",
		Short:         base.Wrap80("Dropdown chip fields for the terminal."),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addPick(cmd)
	addDemo(cmd)
	addVersion(cmd)
	return cmd
}
