package main

import (
	"io"
	"log"
	"os"

	"github.com/bodgit/fixedgen"
	"github.com/bodgit/fixedgen/config"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	if fd := os.Stderr.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return log.New(colorable.NewColorableStderr(), "\x1b[36mfixedgen:\x1b[0m ", 0)
	}
	return log.New(os.Stderr, "fixedgen: ", 0)
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("fract-bits") {
		cfg.FractBits = c.Uint("fract-bits")
	}
	if c.IsSet("style") {
		cfg.Style = c.String("style")
	}
	if c.IsSet("zero") {
		cfg.RecipZero = c.String("zero")
	}
	if c.IsSet("period") {
		cfg.SinePeriod = c.Int("period")
	}
	if c.IsSet("colors") {
		cfg.Colors = c.Int("colors")
	}
	if c.IsSet("cache") {
		cfg.Cache = c.String("cache")
	}

	return cfg, nil
}

func run(c *cli.Context, f func(*fixedgen.Generator) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	g, err := fixedgen.New(cfg, newLogger(c.Bool("verbose")))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer g.Close()

	if err := f(g); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

var styleFlag = &cli.StringFlag{
	Name:  "style",
	Usage: "emit TO_FIXED expressions (expr) or pre-computed integers (int)",
}

func main() {
	app := cli.NewApp()

	app.Name = "fixedgen"
	app.Usage = "Generate fixed-point lookup tables and RGB555 textures as C source"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"FIXEDGEN_CONFIG"},
			Usage:   "path to TOML configuration",
		},
		&cli.UintFlag{
			Name:  "fract-bits",
			Usage: "number of fractional bits, must match FRACT_BITS",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "texture",
			Usage:       "Convert an image to a 128x128 RGB555 array",
			Description: "The image is flipped vertically and resampled with nearest-neighbour sampling.",
			ArgsUsage:   "IMAGE NAME",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "colors",
					Usage: "reduce to at most this many colors, 0 to disable",
				},
				&cli.StringFlag{
					Name:    "cache",
					EnvVars: []string{"FIXEDGEN_CACHE"},
					Usage:   "path to texture cache database",
				},
				&cli.BoolFlag{
					Name:  "binary",
					Usage: "write raw little-endian pixels instead of C source; NAME is not required",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 && !(c.Bool("binary") && c.NArg() == 1) {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				return run(c, func(g *fixedgen.Generator) error {
					if c.Bool("binary") {
						return g.TextureBinary(os.Stdout, c.Args().First())
					}
					return g.Texture(os.Stdout, c.Args().Get(0), c.Args().Get(1))
				})
			},
		},
		{
			Name:        "recip",
			Usage:       "Generate the reciprocal table",
			Description: "",
			Flags: []cli.Flag{
				styleFlag,
				&cli.StringFlag{
					Name:  "zero",
					Usage: "entry for the reciprocal of zero: max, zero or error",
				},
			},
			Action: func(c *cli.Context) error {
				return run(c, func(g *fixedgen.Generator) error {
					return g.Reciprocal(os.Stdout)
				})
			},
		},
		{
			Name:        "sine",
			Usage:       "Generate the quarter-period sine table",
			Description: "",
			Flags: []cli.Flag{
				styleFlag,
				&cli.IntFlag{
					Name:  "period",
					Usage: "steps in a full turn, must be a multiple of 4",
				},
			},
			Action: func(c *cli.Context) error {
				return run(c, func(g *fixedgen.Generator) error {
					return g.Sine(os.Stdout)
				})
			},
		},
		{
			Name:        "preview",
			Usage:       "Convert a binary texture back to PNG",
			Description: "",
			ArgsUsage:   "BIN PNG",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				return run(c, func(g *fixedgen.Generator) error {
					in, err := os.Open(c.Args().Get(0))
					if err != nil {
						return err
					}
					defer in.Close()

					out, err := os.Create(c.Args().Get(1))
					if err != nil {
						return err
					}
					defer out.Close()

					if err := g.Preview(out, in); err != nil {
						return err
					}
					return out.Close()
				})
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
