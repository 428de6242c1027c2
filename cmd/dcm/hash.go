package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, cc.In, args)
	if err != nil {
		return err
	}
	for _, d := range docs {
		if _, err := fmt.Fprintf(cc.Out, "%016x\n", d.Hash()); err != nil {
			return err
		}
	}
	return nil
}
