package main

import (
	"io"
	"log"
	"os"

	"github.com/bodgit/osdfont"
	"github.com/urfave/cli/v2"
)

const defaultSpecsFile = "sym_specs.yaml"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) *osdfont.Converter {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return osdfont.New(c.String("symbol-specs"), logger)
}

func main() {
	app := cli.NewApp()

	app.Name = "osdfont"
	app.Usage = "FPV OSD font conversion utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "symbol-specs",
			Aliases: []string{"s"},
			EnvVars: []string{"OSDFONT_SYMBOL_SPECS"},
			Value:   defaultSpecsFile,
			Usage:   "path to the symbol specifications file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert between tile collection formats",
			ArgsUsage: "FROM TO",
			Description: "Collection arguments take the form prefix:path.\n" +
				"   Valid prefixes are:\n" +
				"      bin:path        raw RGBA bin file\n" +
				"      tilegrid:path   grid of tiles image\n" +
				"      tiledir:path    directory with one file per tile\n" +
				"      symdir:path     directory with one file per symbol\n" +
				"      avatar:path     Avatar tile collection image",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := newConverter(c).Convert(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "convert-set",
			Usage:     "Convert between SD/HD tile collection set formats",
			ArgsUsage: "FROM TO",
			Description: "Collection set arguments take the form prefix:path[:path...].\n" +
				"   Valid prefixes are:\n" +
				"      djibinset:sd:sd2:hd:hd2   explicit bin file paths\n" +
				"      djibinsetnorm:dir[:ident] bin files with normalized names\n" +
				"      tilesetgrids:sd:hd        SD and HD grid images\n" +
				"      tilesetgridsnorm:dir[:ident] grid images with normalized names\n" +
				"      tilesetdir:dir            tiles in SD and HD subdirectories\n" +
				"      symsetdir:dir             symbols in SD and HD subdirectories",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := newConverter(c).ConvertSet(c.Args().Get(0), c.Args().Get(1)); err != nil {
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
