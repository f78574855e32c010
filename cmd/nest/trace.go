package main

import (
	"fmt"

	"github.com/signadot/nest/trace"

	"github.com/scott-cotton/cli"
)

func traceDocs(cfg *TraceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Trace.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	colors := cfg.colors(cc.Out)
	for i, file := range args {
		n, err := loadFile(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		rec := trace.NewRecorder(nil)
		renderErr := renderTo(cfg.MainConfig, rec, n)
		if err := trace.Format(cc.Out, rec.Calls(), colors); err != nil {
			return err
		}
		if renderErr != nil {
			return fmt.Errorf("error rendering %s: %w", file, renderErr)
		}
		if err := rec.Check(); err != nil {
			return fmt.Errorf("%s: unbalanced trace: %w", file, err)
		}
		cfg.logf("traced", "file", file, "calls", len(rec.Calls()))
		if i < len(args)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}
