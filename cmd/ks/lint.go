package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/knyttools/libks/ini"
)

func lint(cfg *LintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lint.Parse(cc, args)
	if err != nil {
		cfg.Lint.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, err := fileArg(args, 0)
	if err != nil {
		return err
	}
	text, err := readText(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	bad := ini.Parse(text).Malformed()
	for _, m := range bad {
		line, col := lineCol(text, m.Offset)
		fmt.Fprintf(cc.Out, "%s:%d:%d: the game ignores this line: %q\n",
			path, line, col, strings.TrimRight(m.Raw, "\r\n"))
	}
	if len(bad) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
