package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires 2 args, got %v", cli.ErrUsage, args)
	}
	var got bytes.Buffer
	if err := renderFile(cfg.MainConfig, &got, args[0]); err != nil {
		return err
	}
	want, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("could not read expected output: %w", err)
	}
	d, same := diffText(string(want), got.String())
	if same {
		cfg.logf("ok", "file", args[0])
		return nil
	}
	fmt.Fprintln(cc.Out, d)
	return cli.ExitCodeErr(1)
}

// diffText returns a readable diff from want to got and whether they
// are equal.
func diffText(want, got string) (string, bool) {
	if want == got {
		return "", true
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(want, got, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return diffCfg.DiffPrettyText(diffs), false
}
