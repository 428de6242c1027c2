package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/kreopt/structure/diff"
	"github.com/kreopt/structure/ir"
	"github.com/kreopt/structure/patch"
)

func diffDocs(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Text && cfg.Patch {
		return fmt.Errorf("%w: -text and -patch are exclusive", cli.ErrUsage)
	}
	from, err := readDoc(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := readDoc(cfg.MainConfig, cc.In, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, from, to)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, from, to ir.Document) (bool, error) {
	if from.Equal(to) {
		return false, nil
	}
	switch {
	case cfg.Text:
		s, err := diff.Text(from, to, diff.Colorize(len(cfg.viewOpts(w)) > 0))
		if err != nil {
			return true, err
		}
		_, err = io.WriteString(w, s)
		return true, err
	case cfg.Patch:
		mp, err := patch.CreateMerge(from, to)
		if err != nil {
			return true, fmt.Errorf("error creating merge patch: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", mp)
		return true, err
	}
	changes := diff.Changes(from, to)
	theLog.Debug("diff", "changes", len(changes))
	d, err := diff.Document(changes)
	if err != nil {
		return true, err
	}
	return true, writeDocs(cfg.MainConfig, w, []ir.Document{d})
}
