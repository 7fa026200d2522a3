package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).RunContext(context.Background(), os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "polarity: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:            "polarity",
		Usage:           "lexicon based sentiment score of the characters of a chapter",
		Writer:          ui.Out,
		ErrWriter:       ui.Err,
		HideHelpCommand: true,
		// errors are printed once, by main
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:      "score",
				Usage:     "Score a document for each tracked entity",
				ArgsUsage: "[file_path]",
				Flags:     append(runFlags(), formatFlag(), sentencesFlag(), noColorFlag()),
				Action: func(c *cli.Context) error {
					opts, err := parseScoreOptions(c)
					if err != nil {
						return err
					}
					return scoreCommand(c.Context, opts, ui)
				},
			},
			{
				Name:      "tag",
				Usage:     "Show the tagged sentences of a document, with their score",
				ArgsUsage: "[file_path]",
				Flags:     append(runFlags(), noColorFlag()),
				Action: func(c *cli.Context) error {
					opts, err := parseScoreOptions(c)
					if err != nil {
						return err
					}
					return tagCommand(c.Context, opts, ui)
				},
			},
			{
				Name:      "entities",
				Usage:     "Show the recognized names of a document and their entity",
				ArgsUsage: "[file_path]",
				Flags:     runFlags(),
				Action: func(c *cli.Context) error {
					opts, err := parseScoreOptions(c)
					if err != nil {
						return err
					}
					return entitiesCommand(c.Context, opts, ui)
				},
			},
			{
				Name:      "lexicon",
				Usage:     "List the merged lexicon, or the expressions starting with a prefix",
				ArgsUsage: "[prefix]",
				Flags:     []cli.Flag{configFlag(), lexiconFlag()},
				Action: func(c *cli.Context) error {
					opts, err := parseLexiconOptions(c)
					if err != nil {
						return err
					}
					return lexiconCommand(opts, c.Args().First(), ui)
				},
			},
			{
				Name:  "query",
				Usage: "Interactive prompt to tag and score sentences",
				Flags: []cli.Flag{configFlag(), lexiconFlag(), noColorFlag()},
				Action: func(c *cli.Context) error {
					opts, err := parseLexiconOptions(c)
					if err != nil {
						return err
					}
					opts.NoColor = c.Bool("no-color")
					return queryCommand(c.Context, opts, ui)
				},
			},
			{
				Name:      "edit",
				Usage:     "Interactive editor of a lexicon file or database",
				ArgsUsage: "<lexicon_path>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("edit requires one lexicon path")
					}
					return editCommand(c.Args().First(), ui)
				},
			},
			{
				Name:      "import-lexicon",
				Usage:     "Import a YAML lexicon file into a SQLite database",
				ArgsUsage: "<from.yml> <to.db>",
				Action: func(c *cli.Context) error {
					opts, err := parseTransferOptions(c)
					if err != nil {
						return err
					}
					return importLexiconCommand(opts, ui)
				},
			},
			{
				Name:      "export-lexicon",
				Usage:     "Export a SQLite lexicon database into a YAML file, or with --merged the merged lexicon into a file or database",
				ArgsUsage: "<from.db> <to.yml> | --merged <to>",
				Flags: []cli.Flag{
					configFlag(),
					lexiconFlag(),
					&cli.BoolFlag{
						Name:  "merged",
						Usage: "export the merge of the configured lexicons",
					},
				},
				Action: func(c *cli.Context) error {
					if c.Bool("merged") {
						if c.NArg() != 1 {
							return fmt.Errorf("export-lexicon --merged requires one destination path")
						}
						opts, err := parseLexiconOptions(c)
						if err != nil {
							return err
						}
						return exportMergedLexiconCommand(opts, c.Args().First(), ui)
					}

					opts, err := parseTransferOptions(c)
					if err != nil {
						return err
					}
					return exportLexiconCommand(opts, ui)
				},
			},
			{
				Name:  "bash",
				Usage: "Print the bash completion script",
				Action: func(c *cli.Context) error {
					return bashCommand(ui)
				},
			},
			{
				Name:   "complete",
				Hidden: true,
				Action: func(c *cli.Context) error {
					return completeCommand(c.Args().Slice(), ui)
				},
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}
