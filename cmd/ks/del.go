package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	fixed := 2
	if cfg.Section {
		fixed = 1
	}
	if len(args) < fixed {
		return fmt.Errorf("%w: del requires a section and a key, or just a section with -sec", cli.ErrUsage)
	}
	path, err := fileArg(args, fixed)
	if err != nil {
		return err
	}
	doc, err := loadDoc(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	if cfg.Section {
		doc.RemoveSection(args[0])
	} else {
		doc.Delete(args[0], args[1])
	}
	return writeDoc(cfg.MainConfig, cc, doc, path, cfg.Write)
}
