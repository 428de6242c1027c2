package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: dcm/d, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: dcm/d, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "dcm").
		WithSynopsis("dcm [opts] command [opts]").
		WithDescription("dcm is a tool for converting, querying and storing documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dcmMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			ViewCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			EvalCommand(cfg),
			FilterCommand(cfg),
			TestCommand(cfg),
			MatchCommand(cfg),
			HashCommand(cfg),
			StoreCommand(cfg))
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-embedded] [files]").
		WithDescription("convert documents between dcm, json and yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg, Indent: 2}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-indent n] [files]").
		WithDescription("view documents as an indented tree, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return viewDocs(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get document elements from files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list <path> [files]").
		WithDescription("list document elements matching a path with wildcards").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-text|-patch] a b").
		WithDescription("diff documents, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffDocs(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-merge] [-s] <patch> [file]").
		WithDescription("apply a json patch or json merge patch to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchDoc(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval <expr> [files]").
		WithDescription(evalDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
}

const evalDescription = `evaluate an expression against each document.

The members of an object document are variables of the expression and
'doc' is the whole document. Besides the expr-lang builtins the functions
getpath(path), listpath(path) and haspath(path) query the document by
path, as in

  dcm eval 'len(listpath("$.items[*]")) > 2 && haspath("$.meta.name")'`

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter <expr> [files]").
		WithDescription("keep the array elements for which expr is true; 'it' is the element, 'index' its position").
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

func TestCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TestConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Test, "test").
		WithAliases("t").
		WithSynopsis("test <expr> [files]").
		WithDescription("exit 1 unless expr is true for every document").
		WithRun(func(cc *cli.Context, args []string) error {
			return test(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <pattern> [files]").
		WithDescription("output the documents containing a pattern document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func HashCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HashConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Hash, "hash").
		WithSynopsis("hash [files]").
		WithDescription("print the content hash of each document").
		WithRun(func(cc *cli.Context, args []string) error {
			return hash(cfg, cc, args)
		})
}

func StoreCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StoreConfig{MainConfig: mainCfg, DB: "documents.db"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Store, "store").
		WithAliases("s").
		WithSynopsis("store [-db file] put <name> [file] | get <name> | rm <name> | ls").
		WithDescription("keep documents in a sqlite database").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return store(cfg, cc, args)
		})
}
