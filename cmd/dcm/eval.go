package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kreopt/structure/ir"
	"github.com/kreopt/structure/query"
)

func exprArg(cmd string, args []string) (string, []string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", nil, fmt.Errorf("%w: %s requires an expression", cli.ErrUsage, cmd)
	}
	return args[0], args[1:], nil
}

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	src, files, err := exprArg("eval", args)
	if err != nil {
		return err
	}
	return mapDocs(cfg.MainConfig, cc, files, func(d ir.Document) (ir.Document, error) {
		return query.Eval(d, src)
	})
}

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	src, files, err := exprArg("filter", args)
	if err != nil {
		return err
	}
	return mapDocs(cfg.MainConfig, cc, files, func(d ir.Document) (ir.Document, error) {
		return query.Filter(d, src)
	})
}

func test(cfg *TestConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Test.Parse(cc, args)
	if err != nil {
		return err
	}
	src, files, err := exprArg("test", args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, cc.In, files)
	if err != nil {
		return err
	}
	for i, d := range docs {
		ok, err := query.Match(d, src)
		if err != nil {
			return fmt.Errorf("error testing document %d: %w", i, err)
		}
		if !ok {
			theLog.Info("test failed", "document", i, "expr", src)
			return cli.ExitCodeErr(1)
		}
	}
	return nil
}

func mapDocs(cfg *MainConfig, cc *cli.Context, files []string, f func(ir.Document) (ir.Document, error)) error {
	docs, err := readDocs(cfg, cc.In, files)
	if err != nil {
		return err
	}
	for i, d := range docs {
		res, err := f(d)
		if err != nil {
			return fmt.Errorf("error evaluating document %d: %w", i, err)
		}
		docs[i] = res
	}
	return writeDocs(cfg, cc.Out, docs)
}
