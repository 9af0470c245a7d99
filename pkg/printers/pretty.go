package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/chipfield/pkg/option"
)

// PrettyPrint renders committed selections for the terminal.
type PrettyPrint struct {
	ShowGroup bool
}

// NewLine prints a blank line.
func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

// Title prints a bold underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// Selection prints the selection as a table. Disabled entries are marked so
// a remembered selection that is no longer choosable stands out.
func (pp *PrettyPrint) Selection(selected []option.Option, disabled []option.Option) {
	if len(selected) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowGroup {
		tbl.AddRow(bold.Sprint("LABEL"), bold.Sprint("VALUE"), bold.Sprint("GROUP"))
	} else {
		tbl.AddRow(bold.Sprint("LABEL"), bold.Sprint("VALUE"))
	}

	for _, o := range selected {
		label := o.Label
		if option.Contains(disabled, o) {
			label = faint.Sprintf("%s (disabled)", o.Label)
		}
		if pp.ShowGroup {
			tbl.AddRow(label, o.Value, faint.Sprint(o.Group))
		} else {
			tbl.AddRow(label, o.Value)
		}
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}
