// Command wiregen generates WireSize, MarshalWire and UnmarshalWire for
// every @wire record in a package.
//
//	//go:generate go run github.com/alexhholmes/fixedwire/cmd/wiregen
package main

import (
	"context"
	"os"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), command())
}

type wiregenConfig struct {
	*cli.Command

	Dir     string `cli:"name=dir desc='package directory (default: directory of $GOFILE or .)'"`
	Output  string `cli:"name=o desc='output file (default: <package>_wire.go in the package directory)'"`
	Types   string `cli:"name=types desc='comma separated records to generate (default: all)'"`
	Config  string `cli:"name=config desc='TOML config file (default: wiregen.toml in the package directory when present)'"`
	Dump    bool   `cli:"name=dump desc='print parsed field schemas instead of generating code'"`
	NoLoad  bool   `cli:"name=no-load desc='skip type loading through go/packages'"`
	Verbose bool   `cli:"name=v desc='debug logging'"`
}

func command() *cli.Command {
	cfg := &wiregenConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "wiregen").
		WithSynopsis("wiregen [-dir d] [-o file] [-types A,B] [-config f] [-dump] [-no-load] [-v] - generate wire codecs").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *wiregenConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return cli.ErrUsage
	}

	return generate(options{
		Dir:     cfg.Dir,
		Output:  cfg.Output,
		Types:   cfg.Types,
		Config:  cfg.Config,
		Dump:    cfg.Dump,
		NoLoad:  cfg.NoLoad,
		Verbose: cfg.Verbose,
	}, cc.Out, newReporter(os.Stderr))
}
