package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/knyttools/libks/knyttbin"
)

func unpack(cfg *UnpackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unpack.Parse(cc, args)
	if err != nil {
		cfg.Unpack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: unpack requires an archive and an optional output directory", cli.ErrUsage)
	}
	outDir := "."
	if len(args) == 2 {
		outDir = args[1]
	}
	opts := knyttbin.UnpackOptions{
		AllowOverwrite:    cfg.Force,
		CreateTopLevelDir: !cfg.Flat,
		MaxFileSize:       cfg.MaxFileSize,
		MaxPathLen:        cfg.MaxPathLen,
	}
	dest, err := knyttbin.UnpackWithOptions(args[0], outDir, opts)
	if err != nil {
		return fmt.Errorf("error unpacking %s: %w", args[0], err)
	}
	fmt.Fprintln(cc.Out, dest)
	return nil
}
