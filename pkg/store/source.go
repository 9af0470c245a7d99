package store

import (
	"fmt"

	"github.com/spf13/viper"

	"tableflip.dev/chipfield/pkg/option"
)

// Document is the parsed contents of an options source file.
type Document struct {
	Options  []option.Option
	Selected []option.Option
	Disabled []option.Option
}

type sourceEntry struct {
	Label string `mapstructure:"label"`
	Value string `mapstructure:"value"`
	Group string `mapstructure:"group"`
}

type sourceFile struct {
	Options  []sourceEntry `mapstructure:"options"`
	Selected []sourceEntry `mapstructure:"selected"`
	Disabled []sourceEntry `mapstructure:"disabled"`
}

// ReadSource parses an options source file. Entries with no value take
// their label as the value.
func ReadSource(path string) (Document, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Document{}, fmt.Errorf("store: read source %s: %w", path, err)
	}

	var file sourceFile
	if err := v.Unmarshal(&file); err != nil {
		return Document{}, fmt.Errorf("store: decode source %s: %w", path, err)
	}

	return Document{
		Options:  toOptions(file.Options),
		Selected: toOptions(file.Selected),
		Disabled: toOptions(file.Disabled),
	}, nil
}

func toOptions(entries []sourceEntry) []option.Option {
	if len(entries) == 0 {
		return nil
	}
	out := make([]option.Option, 0, len(entries))
	for _, e := range entries {
		if e.Label == "" && e.Value == "" {
			continue
		}
		o := option.Option{Label: e.Label, Value: e.Value, Group: e.Group}
		if o.Value == "" {
			o.Value = o.Label
		}
		if o.Label == "" {
			o.Label = o.Value
		}
		out = append(out, o)
	}
	return out
}
