// Command disnes statically disassembles one bank of an NES program ROM
// into ca65-flavored 6502 assembly, guided by a TOML manifest describing
// the ROM's memory layout.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/chriskillpack/disnes"
)

func main() {
	app := &cli.App{
		Name:      "disnes",
		Usage:     "statically disassemble one bank of an NES program ROM",
		ArgsUsage: "<bank-name>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Value:   "disnes.toml",
				Usage:   "path to the manifest describing the ROM's memory layout",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "raise the log level from warn to info",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "disnes:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one argument: the bank name to disassemble", 1)
	}
	bankName := c.Args().Get(0)

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	if c.Bool("verbose") {
		logger.SetLevel(logrus.InfoLevel)
	}

	manifest, err := disnes.LoadManifest(c.Context, c.String("manifest"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	input, config, err := manifest.IntoInputConfig(c.Context, bankName)
	if err != nil {
		return cli.Exit(err, 1)
	}

	asm, err := disnes.Analyze(input, config.Analysis(), logger)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := disnes.OutputAssembly(os.Stdout, asm); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}
