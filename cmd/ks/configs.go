package main

import (
	"os"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Raw bool `cli:"name=raw desc='read and write documents as raw bytes instead of Windows-1252'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, v string) (any, error) {
	f, err := os.Create(v)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.Out = v
	cfg.CloseOut = f.Close
	return v, nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the file in place'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig
	Section bool `cli:"name=sec desc='delete a whole section'"`
	Write   bool `cli:"name=w desc='write the file in place'"`

	Del *cli.Command
}

type RenameConfig struct {
	*MainConfig
	Section bool `cli:"name=sec desc='rename a section instead of a key'"`
	Write   bool `cli:"name=w desc='write the file in place'"`

	Rename *cli.Command
}

type SectionsConfig struct {
	*MainConfig
	Counts bool `cli:"name=n desc='show property counts'"`

	Sections *cli.Command
}

type LintConfig struct {
	*MainConfig

	Lint *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Color bool `cli:"name=color desc='force colored output'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Expr   string `cli:"name=e desc='boolean expression over key and props'"`
	Values bool   `cli:"name=v desc='print the properties of matching sections'"`

	Query *cli.Command
}

type UnpackConfig struct {
	*MainConfig
	Force       bool `cli:"name=f desc='overwrite a nonempty output directory'"`
	Flat        bool `cli:"name=flat desc='unpack directly into the output directory'"`
	MaxFileSize int  `cli:"name=maxFileSize desc='max unpacked file size in bytes'"`
	MaxPathLen  int  `cli:"name=maxPathLen desc='max entry path length in bytes'"`

	Unpack *cli.Command
}

type PackConfig struct {
	*MainConfig

	Pack *cli.Command
}

type EditionConfig struct {
	*MainConfig
	Fast  bool `cli:"name=fast desc='use the fast heuristic only'"`
	Quiet bool `cli:"name=q desc='print only the edition'"`

	Edition *cli.Command
}
