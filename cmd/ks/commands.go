package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/knyttools/libks/knyttbin"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "ks").
		WithSynopsis("ks [opts] command [opts]").
		WithDescription("ks is a tool for working with Knytt Stories worlds.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Main.Parse(cc, args)
			if err != nil {
				cfg.Main.Usage(cc, err)
				return cli.ExitCodeErr(1)
			}
			if len(args) == 0 {
				return fmt.Errorf("%w: a command is required", cli.ErrUsage)
			}
			return fmt.Errorf("%w: unknown command %q", cli.ErrUsage, args[0])
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			RenameCommand(cfg),
			SectionsCommand(cfg),
			LintCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			UnpackCommand(cfg),
			PackCommand(cfg),
			EditionCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <section> <key> [file]").
		WithDescription("print the value of a key, honoring last-one-wins duplicates").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set [-w] <section> <key> <value> [file]").
		WithDescription("set the value of a key, creating the section if needed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("del").
		WithAliases("d", "delete").
		WithSynopsis("del [-w] <section> <key> [file] | del -sec [-w] <section> [file]").
		WithDescription("delete a key, or a whole section with -sec").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
	cfg.Del = cmd
	return cmd
}

func RenameCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenameConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("rename").
		WithAliases("r", "ren").
		WithSynopsis("rename [-w] <section> <from> <to> [file] | rename -sec [-w] <from> <to> [file]").
		WithDescription("rename a key, or a section with -sec").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rename(cfg, cc, args)
		})
	cfg.Rename = cmd
	return cmd
}

func SectionsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SectionsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sections, "sections").
		WithAliases("ls").
		WithSynopsis("sections [-n] [file]").
		WithDescription("list sections in declaration order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sections(cfg, cc, args)
		})
}

func LintCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LintConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Lint, "lint").
		WithSynopsis("lint [file]").
		WithDescription("report lines the game would silently ignore").
		WithRun(func(cc *cli.Context, args []string) error {
			return lint(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithOpts(opts...).
		WithSynopsis("diff <a> <b>").
		WithDescription("diff two ini documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query -e <expr> [file]").
		WithDescription(queryDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

const queryDescription = `query prints the sections for which an expression holds.

The expression is evaluated once per section with two variables in scope:

  key     the section key, for example "x1000y1000"
  props   a map of property keys to values, last duplicate wins

Examples:

  ks query -e 'len(props) == 0'
  ks query -e '"Tileset A" in props && props["Tileset A"] == "0"'
  ks query -v -e 'key startsWith "x1000"'`

func UnpackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnpackConfig{
		MainConfig:  mainCfg,
		MaxFileSize: knyttbin.DefaultMaxFileSize,
		MaxPathLen:  knyttbin.DefaultMaxPathLen,
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("unpack").
		WithAliases("u", "x").
		WithOpts(opts...).
		WithSynopsis("unpack [opts] <world.knytt.bin> [outdir]").
		WithDescription("unpack a .knytt.bin archive").
		WithRun(func(cc *cli.Context, args []string) error {
			return unpack(cfg, cc, args)
		})
	cfg.Unpack = cmd
	return cmd
}

func PackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PackConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Pack, "pack").
		WithAliases("p").
		WithSynopsis("pack <worlddir> <world.knytt.bin>").
		WithDescription("pack a world directory into a .knytt.bin archive").
		WithRun(func(cc *cli.Context, args []string) error {
			return pack(cfg, cc, args)
		})
}

func EditionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditionConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("edition").
		WithAliases("ed").
		WithOpts(opts...).
		WithSynopsis("edition [-fast] [worlddir]").
		WithDescription("guess which game fork a world is made for").
		WithRun(func(cc *cli.Context, args []string) error {
			return edition(cfg, cc, args)
		})
	cfg.Edition = cmd
	return cmd
}
