package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/knyttools/libks/knyttbin"
)

func pack(cfg *PackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pack.Parse(cc, args)
	if err != nil {
		cfg.Pack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: pack requires a world directory and an archive path", cli.ErrUsage)
	}
	n, err := knyttbin.Pack(args[0], args[1])
	if err != nil {
		return fmt.Errorf("error packing %s: %w", args[0], err)
	}
	fmt.Fprintf(cc.Out, "packed %d files into %s\n", n, args[1])
	return nil
}
