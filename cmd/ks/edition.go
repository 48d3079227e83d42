package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/knyttools/libks/editions"
)

func edition(cfg *EditionConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edition.Parse(cc, args)
	if err != nil {
		cfg.Edition.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	worldDir := "."
	switch len(args) {
	case 0:
	case 1:
		worldDir = args[0]
	default:
		return fmt.Errorf("%w: edition takes at most one world directory", cli.ErrUsage)
	}

	guess := editions.GuessAccurate
	if cfg.Fast {
		guess = editions.GuessFast
	}
	ed, reason, err := guess(worldDir)
	if err != nil {
		return fmt.Errorf("error inspecting %s: %w", worldDir, err)
	}
	if cfg.Quiet {
		fmt.Fprintln(cc.Out, ed)
		return nil
	}
	fmt.Fprintf(cc.Out, "%s (%s)\n", ed, reason)
	return nil
}
