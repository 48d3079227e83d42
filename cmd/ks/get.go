package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: get requires a section and a key", cli.ErrUsage)
	}
	path, err := fileArg(args, 2)
	if err != nil {
		return err
	}
	doc, err := loadDoc(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	value, ok := doc.Get(args[0], args[1])
	if !ok {
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintln(cc.Out, value)
	return nil
}
