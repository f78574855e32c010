package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/nest"
	"github.com/signadot/nest/doc"
	"github.com/signadot/nest/stream"
	"github.com/signadot/nest/trace"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Wire       bool   `cli:"name=wire desc='output without line breaks'"`
	Indent     string `cli:"name=indent desc='indentation per level'"`
	Decl       bool   `cli:"name=decl desc='write an XML declaration'"`
	Empty      bool   `cli:"name=empty desc='write elements without content as <x/>'"`
	CheckStack bool   `cli:"name=stack desc='refuse out of order closes'"`
	Patch      string `cli:"name=p aliases=patch desc='json patch file applied to each document'"`
	Verbose    bool   `cli:"name=v desc='log progress to stderr'"`

	Env doc.Env

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func envOptTypeFunc(env doc.Env) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// envFunc sets name=val in env. val is decoded as YAML so numbers and
// booleans keep their type; anything else is a string.
func envFunc(env doc.Env, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil || v == nil {
		v = val
	}
	env[name] = v
	return nil
}

func (cfg *MainConfig) streamOpts() []stream.StreamOption {
	var res []stream.StreamOption
	if cfg.Indent != "" {
		res = append(res, stream.WithIndent(cfg.Indent))
	}
	if cfg.Wire {
		res = append(res, stream.WithWire())
	}
	if cfg.Decl {
		res = append(res, stream.WithDecl())
	}
	if cfg.Empty {
		res = append(res, stream.WithEmptyElements())
	}
	return res
}

func (cfg *MainConfig) nestOpts() []nest.Option {
	if !cfg.CheckStack {
		return nil
	}
	return []nest.Option{nest.CheckStack(true)}
}

// load reads, patches and decodes one document.
func (cfg *MainConfig) load(r io.Reader) (*doc.Node, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	if cfg.Patch != "" {
		p, err := os.ReadFile(cfg.Patch)
		if err != nil {
			return nil, fmt.Errorf("could not read patch: %w", err)
		}
		in, err = doc.Patch(in, p)
		if err != nil {
			return nil, err
		}
	}
	return doc.Load(in)
}

func (cfg *MainConfig) logf(msg string, args ...any) {
	if !cfg.Verbose {
		return
	}
	verboseLog.Info(msg, args...)
}

type RenderConfig struct {
	*MainConfig

	Render *cli.Command
}

type TraceConfig struct {
	*MainConfig
	Color bool `cli:"name=color desc='trace with color'"`

	Trace *cli.Command
}

func (cfg *TraceConfig) colors(w io.Writer) *trace.Colors {
	if cfg.Color {
		return trace.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Trace.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return trace.NewColors()
	}
	return nil
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
