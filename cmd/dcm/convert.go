package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kreopt/structure/format"
	"github.com/kreopt/structure/jsoncodec"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, cc.In, args)
	if err != nil {
		return err
	}
	if !cfg.Embedded {
		return writeDocs(cfg.MainConfig, cc.Out, docs)
	}
	if of := cfg.outFormat(); of != format.JSONFormat {
		return fmt.Errorf("%w: -embedded requires json output, not %s", cli.ErrUsage, of)
	}
	for i, d := range docs {
		b, err := jsoncodec.Encode(d, jsoncodec.Embedded())
		if err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		theLog.Debug("embedded encoding", "document", i, "bytes", len(b), "keys", jsoncodec.EstimateKeys(d))
		if _, err := fmt.Fprintf(cc.Out, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}
