package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kreopt/structure/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("get", args)
	if err != nil {
		return err
	}
	return queryDocs(cfg.MainConfig, cc, args, path, false)
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("list", args)
	if err != nil {
		return err
	}
	return queryDocs(cfg.MainConfig, cc, args, path, true)
}

func pathArg(cmd string, args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s requires one argument, a document path", cli.ErrUsage, cmd)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return "", nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return path, args[1:], nil
}

func queryDocs(cfg *MainConfig, cc *cli.Context, files []string, path string, all bool) error {
	docs, err := readDocs(cfg, cc.In, files)
	if err != nil {
		return err
	}
	res, err := queryAll(docs, path, all)
	if err != nil {
		return err
	}
	return writeDocs(cfg, cc.Out, res)
}

// queryAll looks path up in each document. Documents lacking the path
// are skipped by get; list always yields one array per document.
func queryAll(docs []ir.Document, path string, all bool) ([]ir.Document, error) {
	var res []ir.Document
	for i, d := range docs {
		if all {
			vals, err := d.List(path)
			if err != nil {
				return nil, fmt.Errorf("error executing list on document %d: %w", i, err)
			}
			res = append(res, ir.MustFrom(vals))
			continue
		}
		v, err := d.Lookup(path)
		if err != nil {
			theLog.Info("path not found", "document", i, "path", path, "error", err)
			continue
		}
		res = append(res, v)
	}
	return res, nil
}
