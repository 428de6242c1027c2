package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kreopt/structure/ir"
	"github.com/kreopt/structure/jsoncodec"
	"github.com/kreopt/structure/query"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern document", cli.ErrUsage)
	}
	pattern, err := getMatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, cc.In, args[1:])
	if err != nil {
		return err
	}
	return writeDocs(cfg.MainConfig, cc.Out, matchDocs(pattern, docs, cfg.Trim))
}

func matchDocs(pattern ir.Document, docs []ir.Document, trim bool) []ir.Document {
	var res []ir.Document
	for _, d := range docs {
		if !query.Contains(d, pattern) {
			continue
		}
		if trim {
			d = query.Trim(pattern, d)
		}
		res = append(res, d)
	}
	return res
}

func getMatch(cfg *MatchConfig, cc *cli.Context, arg string) (ir.Document, error) {
	if cfg.String {
		d, err := jsoncodec.Decode([]byte(arg))
		if err != nil {
			return ir.Document{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return d, nil
	}
	d, err := readDoc(cfg.MainConfig, cc.In, arg)
	if err != nil {
		return ir.Document{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return d, nil
}
