package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chipfield/pkg/runner/demo"
)

func addDemo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "open the full-screen widget showcase",
		Example: `
chipfield demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			d := demo.Demo{}
			return d.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
