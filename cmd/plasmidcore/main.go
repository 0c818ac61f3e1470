package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

/******************************************************************************

This file is the entry point for the plasmidcore command line utility. It
also acts as a general template outlining everything available to the user.

Initial argparsing and app definition is done entirely through
"github.com/urfave/cli/v2" for which you can find the docs here:

https://github.com/urfave/cli/blob/master/docs/v2/manual.md

The app is defined via the &cli.App{} struct which is initialized with the
data needed to run it: Name, Usage, and Commands at the top level. Each
subcommand defines its own Flags and Action.

Happy hacking.

******************************************************************************/

// main is the entry point for the command line app. It's separated from the
// actual &cli.App{} to help with testing.
func main() {
	run(os.Args)
}

// run is separated from main for debugging's sake.
func run(args []string) {
	app := application()
	err := app.Run(args)
	if err != nil {
		log.Fatal(err)
	}
}

// application defines the instance of the app: where commands are templated
// and where initial arg parsing occurs.
func application() *cli.App {
	app := &cli.App{
		Name:  "plasmidcore",
		Usage: "A command line utility for reading, editing, and inspecting plasmid sequences.",

		Commands: []*cli.Command{
			{
				Name:    "open",
				Aliases: []string{"o"},
				Usage:   "Parse a construct file and print a summary: name, length, topology, feature and primer counts.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "i",
						Usage: "Specify input format explicitly. Options are gbk/gb, fasta/fa, snapgene/dna, pcad. Defaults to guessing from the file extension.",
					},
				},
				Action: func(c *cli.Context) error {
					return openCommand(c)
				},
			},
			{
				Name:    "convert",
				Aliases: []string{"c"},
				Usage:   "Convert a construct file from one format to another. Genbank to snapgene, fasta to pcad, etc.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "i",
						Usage: "Specify input format explicitly. Defaults to guessing from the file extension.",
					},
					&cli.StringFlag{
						Name:     "o",
						Usage:    "Specify output format. Options are gbk/gb, fasta/fa, snapgene/dna, pcad.",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					return convertCommand(c)
				},
			},
			{
				Name:    "digest",
				Aliases: []string{"d"},
				Usage:   "Search a construct for restriction sites and print the resulting fragments.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "i",
						Usage: "Specify input format explicitly. Defaults to guessing from the file extension.",
					},
					&cli.StringSliceFlag{
						Name:  "enzyme",
						Usage: "Restrict the digest to these named enzymes (repeatable). Defaults to the whole library.",
					},
					&cli.BoolFlag{
						Name:  "unique",
						Usage: "Only consider enzymes that cut exactly once.",
					},
					&cli.BoolFlag{
						Name:  "sticky",
						Usage: "Only consider enzymes that leave a sticky (non-blunt) end, queried from the sqlite-backed enzyme store.",
					},
				},
				Action: func(c *cli.Context) error {
					return digestCommand(c)
				},
			},
			{
				Name:    "tm",
				Usage:   "Compute the melting temperature and quality metrics for a primer sequence.",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "na",
						Value: 50,
						Usage: "Monovalent cation concentration in mM.",
					},
					&cli.Float64Flag{
						Name:  "mg",
						Value: 0,
						Usage: "Free magnesium concentration in mM.",
					},
				},
				ArgsUsage: "<sequence>",
				Action: func(c *cli.Context) error {
					return tmCommand(c)
				},
			},
			{
				Name:    "orf",
				Usage:   "Scan a construct's six reading frames for open reading frames, His-tag runs, and common plasmid parts.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "i",
						Usage: "Specify input format explicitly. Defaults to guessing from the file extension.",
					},
				},
				Action: func(c *cli.Context) error {
					return orfCommand(c)
				},
			},
		},
	}

	return app
}
