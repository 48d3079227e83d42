package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readText(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := readText(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}

	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	colored := useColor(cfg, cc.Out)
	if colored {
		color.NoColor = false
	}
	if err := writeDiffs(cc.Out, diffs, colored); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func useColor(cfg *DiffConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// writeDiffs renders a character diff. With color, deletions are red and
// insertions green; without, they are wrapped in [-...-] and {+...+}.
func writeDiffs(w io.Writer, diffs []diffpatch.Diff, colored bool) error {
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffpatch.DiffDelete:
			if colored {
				sb.WriteString(red(d.Text))
			} else {
				sb.WriteString("[-" + d.Text + "-]")
			}
		case diffpatch.DiffInsert:
			if colored {
				sb.WriteString(green(d.Text))
			} else {
				sb.WriteString("{+" + d.Text + "+}")
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
