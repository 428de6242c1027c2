package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kreopt/structure/view"
)

func viewDocs(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, cc.In, args)
	if err != nil {
		return err
	}
	opts := append(cfg.viewOpts(cc.Out), view.Indent(cfg.Indent))
	for i, d := range docs {
		if i > 0 {
			if _, err := cc.Out.Write(textSep[1:]); err != nil {
				return err
			}
		}
		if err := view.Fprint(cc.Out, d, opts...); err != nil {
			return fmt.Errorf("error viewing document %d: %w", i, err)
		}
	}
	return nil
}
