package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func rename(cfg *RenameConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rename.Parse(cc, args)
	if err != nil {
		cfg.Rename.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	fixed := 3
	if cfg.Section {
		fixed = 2
	}
	if len(args) < fixed {
		return fmt.Errorf("%w: rename requires a section, an old key, and a new key, or old and new section keys with -sec", cli.ErrUsage)
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
		doc.RenameSection(args[0], args[1])
	} else {
		doc.Rename(args[0], args[1], args[2])
	}
	return writeDoc(cfg.MainConfig, cc, doc, path, cfg.Write)
}
