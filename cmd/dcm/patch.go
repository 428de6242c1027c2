package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kreopt/structure"
	"github.com/kreopt/structure/format"
	"github.com/kreopt/structure/ir"
	"github.com/kreopt/structure/patch"
)

func patchDoc(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch and at most one file to which to apply it", cli.ErrUsage)
	}
	ops, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	target := "-"
	if len(args) == 2 {
		target = args[1]
	}
	d, err := readDoc(cfg.MainConfig, cc.In, target)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", target, err)
	}
	apply := patch.Apply
	if cfg.Merge {
		apply = patch.Merge
	}
	res, err := apply(d, ops)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", target, err)
	}
	return writeDocs(cfg.MainConfig, cc.Out, []ir.Document{res})
}

// getPatch returns the JSON text of the patch argument. Patch files in
// yaml or dcm are converted first.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	b, err := readInput(cc.In, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	f, ok := format.FromSuffix(arg)
	if !ok || f == format.JSONFormat {
		return b, nil
	}
	j, err := structure.Convert(b, f, format.JSONFormat)
	if err != nil {
		return nil, fmt.Errorf("error converting patch %s: %w", arg, err)
	}
	return j, nil
}
