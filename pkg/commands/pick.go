package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/chipfield/pkg/commands/options"
	"tableflip.dev/chipfield/pkg/option"
	"tableflip.dev/chipfield/pkg/printers"
	"tableflip.dev/chipfield/pkg/runner/pick"
	"tableflip.dev/chipfield/pkg/store"
)

func addPick(topLevel *cobra.Command) {
	po := &options.PickOptions{}

	cmd := &cobra.Command{
		Use:   "pick [option]...",
		Short: "pick from a set of options",
		Long: "Open a dropdown picker. Options come from positional arguments\n" +
			"or from a source file; the committed selection is printed on exit.",
		Example: `
chipfield pick red green blue
chipfield pick --multi --search --file options.yaml
chipfield pick --file options.yaml --watch
chipfield pick --remember --id deploy/region --file regions.yaml
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && po.File == "" {
				return errors.New("provide options as arguments or via --file")
			}
			if po.Remember && po.ID == "" {
				return errors.New("--remember requires --id")
			}
			if po.Watch && po.File == "" {
				return errors.New("--watch requires --file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := option.Single
			if po.Multi {
				mode = option.Multi
			}

			p := &pick.Pick{
				Prompt:     po.Prompt,
				Mode:       mode,
				Search:     po.Search,
				MenuHeight: po.Height,
				SourcePath: po.File,
				Watch:      po.Watch,
			}

			if po.File != "" {
				doc, err := store.ReadSource(po.File)
				if err != nil {
					return oo.HandleError(err)
				}
				p.Options = doc.Options
				p.Selected = doc.Selected
				p.Disabled = doc.Disabled
			}
			for _, arg := range args {
				p.Options = append(p.Options, option.Option{Label: arg, Value: arg})
			}

			if po.Remember {
				r, err := store.LoadRecents(nil)
				if err != nil {
					return oo.HandleError(err)
				}
				p.Recents = r
				p.PromptID = po.ID
			}

			selected, err := p.Do(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}

			if oo.JSON {
				b, err := json.Marshal(selected)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(color.Output, string(b))
				return nil
			}

			pp := &printers.PrettyPrint{ShowGroup: hasGroups(selected)}
			pp.NewLine()
			pp.Title(strings.TrimSpace(po.Prompt))
			pp.Selection(selected, p.Disabled)
			return nil
		},
	}

	options.AddPickArgs(cmd, po)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func hasGroups(selected []option.Option) bool {
	for _, o := range selected {
		if o.Group != "" {
			return true
		}
	}
	return false
}
