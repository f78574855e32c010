package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/nest"
	"github.com/signadot/nest/doc"
	"github.com/signadot/nest/stream"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := renderFile(cfg.MainConfig, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

// openFile opens file, "-" being standard input.
func openFile(file string) (io.ReadCloser, error) {
	if file == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return f, nil
}

func loadFile(cfg *MainConfig, file string) (*doc.Node, error) {
	f, err := openFile(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	n, err := cfg.load(f)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	return n, nil
}

func renderFile(cfg *MainConfig, w io.Writer, file string) error {
	n, err := loadFile(cfg, file)
	if err != nil {
		return err
	}
	enc, err := stream.NewEncoder(w, cfg.streamOpts()...)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if err := renderTo(cfg, enc, n); err != nil {
		return fmt.Errorf("error rendering %s: %w", file, err)
	}
	if err := enc.End(); err != nil {
		return err
	}
	cfg.logf("rendered", "file", file, "bytes", enc.Offset())
	return nil
}

func renderTo(cfg *MainConfig, w nest.Writer, n *doc.Node) error {
	return doc.Render(w, n, cfg.Env, cfg.nestOpts()...)
}
