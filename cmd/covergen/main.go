package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	covergen "github.com/HavilandTuff/cover-generator"
	"github.com/HavilandTuff/cover-generator/config"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	if file := c.String("config"); file != "" {
		var err error
		if cfg, err = config.Load(file); err != nil {
			return nil, err
		}
	}

	if c.IsSet("template") {
		cfg.Template = c.String("template")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("choice") {
		cfg.Choice = c.String("choice")
	}
	if c.IsSet("viewer") {
		cfg.Viewer = c.String("viewer")
	}
	if c.IsSet("quantize") {
		cfg.Quantize = c.Bool("quantize")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "covergen"
	app.Usage = "Render printable cover cards and grid sheets from EmulationStation game lists"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"COVERGEN_CONFIG"},
			Usage:   "path to configuration file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "generate",
			Usage:     "Render cards for every game and batch them onto grid sheets",
			ArgsUsage: "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "template",
					Aliases: []string{"t"},
					Usage:   "path to card template image",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "directory to write cards and sheets to",
				},
				&cli.StringFlag{
					Name:  "choice",
					Usage: "selection when both image and marquee exist: image, marquee or ask",
				},
				&cli.StringFlag{
					Name:  "viewer",
					Usage: "command used to preview candidates during interactive selection",
				},
				&cli.BoolFlag{
					Name:  "quantize",
					Usage: "reduce sheets to a 256 color palette",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := loadConfig(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				cg := covergen.New(cfg, newLogger(c))

				if err := cg.Generate(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "list",
			Usage:     "List every game and report missing image and marquee files",
			ArgsUsage: "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := loadConfig(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				cg := covergen.New(cfg, newLogger(c))

				if err := cg.List(c.Args().First(), os.Stdout); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
