package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func sections(cfg *SectionsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sections.Parse(cc, args)
	if err != nil {
		cfg.Sections.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, err := fileArg(args, 0)
	if err != nil {
		return err
	}
	doc, err := loadDoc(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	for _, section := range doc.Sections() {
		if cfg.Counts {
			fmt.Fprintf(cc.Out, "%s\t%d\n", section.Key(), len(section.Props()))
		} else {
			fmt.Fprintln(cc.Out, section.Key())
		}
	}
	return nil
}
