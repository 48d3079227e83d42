package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: query requires an expression (-e)", cli.ErrUsage)
	}
	path, err := fileArg(args, 0)
	if err != nil {
		return err
	}
	doc, err := loadDoc(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}

	prg, err := expr.Compile(cfg.Expr, expr.AsBool(), expr.Env(queryEnv("", nil)))
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", cfg.Expr, err)
	}
	matched := 0
	for _, section := range doc.Sections() {
		props := map[string]string{}
		for _, p := range section.Props() {
			props[p.Key] = p.Value
		}
		res, err := expr.Run(prg, queryEnv(section.Key(), props))
		if err != nil {
			return fmt.Errorf("error evaluating %q on [%s]: %w", cfg.Expr, section.Key(), err)
		}
		if !res.(bool) {
			continue
		}
		matched++
		fmt.Fprintln(cc.Out, section.Key())
		if cfg.Values {
			for _, p := range section.Props() {
				fmt.Fprintf(cc.Out, "\t%s=%s\n", p.Key, p.Value)
			}
		}
	}
	if matched == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func queryEnv(key string, props map[string]string) map[string]any {
	return map[string]any{
		"key":   key,
		"props": props,
	}
}
