package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/knyttools/libks/ini"
	"github.com/knyttools/libks/worldini"
)

// fileArg picks the optional trailing file argument, defaulting to World.ini
// in the current directory. "-" means stdin.
func fileArg(args []string, fixed int) (string, error) {
	switch len(args) {
	case fixed:
		return worldini.FileName, nil
	case fixed + 1:
		return args[fixed], nil
	}
	return "", fmt.Errorf("%w: expected %d or %d arguments, got %d",
		cli.ErrUsage, fixed, fixed+1, len(args))
}

// readText reads and decodes an ini document from a file or, for "-", from
// the command input.
func readText(cfg *MainConfig, cc *cli.Context, path string) (string, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(cc.In)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	if cfg.Raw {
		return string(raw), nil
	}
	text, err := worldini.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", path, err)
	}
	return text, nil
}

func loadDoc(cfg *MainConfig, cc *cli.Context, path string) (*ini.Doc, error) {
	text, err := readText(cfg, cc, path)
	if err != nil {
		return nil, err
	}
	return ini.Parse(text), nil
}

// writeDoc rewrites path in place when inPlace is set and the input was a
// file; otherwise it renders the document to the command output.
func writeDoc(cfg *MainConfig, cc *cli.Context, doc *ini.Doc, path string, inPlace bool) error {
	if inPlace && path != "-" {
		if cfg.Raw {
			return os.WriteFile(path, []byte(doc.String()), 0o644)
		}
		return worldini.SaveFile(path, doc)
	}
	_, err := io.WriteString(cc.Out, doc.String())
	return err
}

// lineCol converts a byte offset in text to 1-based line and column numbers.
func lineCol(text string, offset int) (line, col int) {
	prefix := text[:offset]
	line = strings.Count(prefix, "\n") + 1
	col = offset - strings.LastIndexByte(prefix, '\n')
	return line, col
}
