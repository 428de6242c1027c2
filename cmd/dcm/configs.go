package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/kreopt/structure"
	"github.com/kreopt/structure/dcm"
	"github.com/kreopt/structure/format"
	"github.com/kreopt/structure/jsoncodec"
	"github.com/kreopt/structure/view"
	"github.com/kreopt/structure/yamlcodec"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='view with color'"`
	Compact bool `cli:"name=c aliases=compact desc='compact json output'"`

	D bool `cli:"name=d aliases=dcm desc='do i/o in dcm'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat returns the format selected by -d, -j or -y.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.D:
		return format.DCMFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return 0, false
}

// inFormat picks the format to decode file with. An explicit -I wins
// over the shared flags, which win over the file suffix.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	if f, ok := format.FromSuffix(file); ok {
		return f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	if f, ok := format.FromSuffix(cfg.Out); ok {
		return f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) decoder(file string) structure.Codec {
	switch cfg.inFormat(file) {
	case format.DCMFormat:
		return dcm.Codec{}
	case format.YAMLFormat:
		return yamlcodec.Codec{}
	}
	return jsoncodec.Codec{}
}

func (cfg *MainConfig) encoder() structure.Codec {
	switch cfg.outFormat() {
	case format.DCMFormat:
		return dcm.Codec{}
	case format.YAMLFormat:
		return yamlcodec.Codec{}
	}
	if cfg.Compact {
		return jsoncodec.Codec{}
	}
	return jsoncodec.Codec{Opts: []jsoncodec.Option{jsoncodec.Indent("  ")}}
}

func (cfg *MainConfig) viewOpts(w io.Writer) []view.Option {
	if cfg.Color {
		return []view.Option{view.WithColors(view.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	if isTerminal(w) {
		return []view.Option{view.WithColors(view.NewColors())}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type ConvertConfig struct {
	*MainConfig
	Embedded bool `cli:"name=embedded desc='json output limited to the embedded buffer'"`

	Convert *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Indent int `cli:"name=indent desc='spaces per level'"`

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text  bool `cli:"name=text desc='show a line diff of the json renderings'"`
	Patch bool `cli:"name=patch desc='output a json merge patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='patch is a json merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}

type TestConfig struct {
	*MainConfig

	Test *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
}

type HashConfig struct {
	*MainConfig

	Hash *cli.Command
}

type StoreConfig struct {
	*MainConfig
	DB string `cli:"name=db desc='sqlite database file'"`

	Store *cli.Command
}
