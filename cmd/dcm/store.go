package main

import (
	"context"
	"fmt"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/kreopt/structure/docstore"
	"github.com/kreopt/structure/ir"
)

func store(cfg *StoreConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Store.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: store requires one of put, get, rm, ls", cli.ErrUsage)
	}
	s, err := docstore.Open(cfg.DB, theLog)
	if err != nil {
		return err
	}
	defer s.Close()
	ctx := context.Background()

	op, args := args[0], args[1:]
	switch op {
	case "put":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("%w: put requires a name and at most one file", cli.ErrUsage)
		}
		file := "-"
		if len(args) == 2 {
			file = args[1]
		}
		d, err := readDoc(cfg.MainConfig, cc.In, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		changed, err := s.Put(ctx, args[0], d)
		if err != nil {
			return err
		}
		if !changed {
			theLog.Info("unchanged", "name", args[0])
		}
		return nil
	case "get":
		if len(args) != 1 {
			return fmt.Errorf("%w: get requires a name", cli.ErrUsage)
		}
		d, err := s.Get(ctx, args[0])
		if err != nil {
			return err
		}
		return writeDocs(cfg.MainConfig, cc.Out, []ir.Document{d})
	case "rm":
		if len(args) == 0 {
			return fmt.Errorf("%w: rm requires at least one name", cli.ErrUsage)
		}
		for _, name := range args {
			if err := s.Delete(ctx, name); err != nil {
				return err
			}
		}
		return nil
	case "ls":
		infos, err := s.List(ctx)
		if err != nil {
			return err
		}
		for _, info := range infos {
			fmt.Fprintf(cc.Out, "%s\t%016x\t%d\t%s\n", info.Name, info.Hash, info.Size, info.Updated.Format(time.RFC3339))
		}
		return nil
	}
	return fmt.Errorf("%w: unknown store operation %q", cli.ErrUsage, op)
}
