package options

import (
	"github.com/spf13/cobra"
)

// PickOptions
type PickOptions struct {
	Prompt   string
	Multi    bool
	Search   bool
	File     string
	Watch    bool
	Height   int
	Remember bool
	ID       string
}

func AddPickArgs(cmd *cobra.Command, o *PickOptions) {
	cmd.Flags().StringVar(&o.Prompt, "prompt", "Select an option",
		"Prompt text shown above the field.")
	cmd.Flags().BoolVarP(&o.Multi, "multi", "m", false,
		"Allow selecting more than one option.")
	cmd.Flags().BoolVarP(&o.Search, "search", "s", false,
		"Enable the in-menu search filter.")
	cmd.Flags().StringVarP(&o.File, "file", "f", "",
		"Options source file (yaml with options/selected/disabled lists).")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Reload the options source file while the picker runs.")
	cmd.Flags().IntVar(&o.Height, "height", 0,
		"Visible menu rows (0 for the default).")
	cmd.Flags().BoolVar(&o.Remember, "remember", false,
		"Pre-select and record the selection under --id.")
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Prompt id used with --remember.")
}
