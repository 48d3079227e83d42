package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 3 {
		return fmt.Errorf("%w: set requires a section, a key, and a value", cli.ErrUsage)
	}
	path, err := fileArg(args, 3)
	if err != nil {
		return err
	}
	doc, err := loadDoc(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	doc.Set(args[0], args[1], args[2])
	return writeDoc(cfg.MainConfig, cc, doc, path, cfg.Write)
}
