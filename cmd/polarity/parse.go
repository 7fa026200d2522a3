package main

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/polarity/config"
	"github.com/revelaction/polarity/entity"
	"github.com/revelaction/polarity/render"
)

// Option structs for subcommands that have flags
type ScoreOptions struct {
	Config    config.Config
	Format    string
	Sentences bool
	NoColor   bool
}

type LexiconOptions struct {
	LexiconPaths []string
	Entities     entity.Table
	NoColor      bool
}

type TransferOptions struct {
	From string
	To   string
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML configuration file",
		EnvVars: []string{"POLARITY_CONFIG"},
	}
}

func lexiconFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "lexicon",
		Aliases: []string{"l"},
		Usage:   "lexicon file or database, merged in order (repeatable)",
		EnvVars: []string{"POLARITY_LEXICON"},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   fmt.Sprintf("output format %v", render.SupportedFormats()),
		Value:   render.FormatText,
	}
}

func sentencesFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "sentences",
		Aliases: []string{"s"},
		Usage:   "print the tagged sentences of each entity",
	}
}

func noColorFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable colors",
	}
}

// runFlags are the flags of the commands that run the pipeline on a
// document.
func runFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		lexiconFlag(),
		&cli.StringFlag{
			Name:    "doc",
			Aliases: []string{"d"},
			Usage:   "document to score",
			EnvVars: []string{"POLARITY_DOC"},
		},
		&cli.IntFlag{
			Name:  "chapter",
			Usage: "chapter number, read from " + config.DefaultChapterPattern,
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			EnvVars: []string{"POLARITY_LOG_LEVEL"},
		},
	}
}

// loadConfig reads the configuration file, if any, and applies the flags
// over it.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()

	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}

	if c.IsSet("lexicon") {
		cfg.LexiconPaths = c.StringSlice("lexicon")
	}

	return cfg, nil
}

func parseScoreOptions(c *cli.Context) (ScoreOptions, error) {
	opts := ScoreOptions{
		Format:    c.String("format"),
		Sentences: c.Bool("sentences"),
		NoColor:   c.Bool("no-color"),
	}

	if opts.Format == "" {
		opts.Format = render.FormatText
	}

	if !lo.Contains(render.SupportedFormats(), opts.Format) {
		return opts, fmt.Errorf("unknown format %q, allowed values are %v", opts.Format, render.SupportedFormats())
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return opts, err
	}

	switch {
	case c.NArg() > 1:
		return opts, errors.New("only one document can be scored")
	case c.NArg() == 1:
		cfg.DocumentPath = c.Args().First()
	case c.IsSet("doc"):
		cfg.DocumentPath = c.String("doc")
	case c.IsSet("chapter"):
		cfg.DocumentPath = config.ChapterPath(c.Int("chapter"))
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return opts, err
	}

	opts.Config = cfg
	return opts, nil
}

func parseLexiconOptions(c *cli.Context) (LexiconOptions, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return LexiconOptions{}, err
	}

	return LexiconOptions{LexiconPaths: cfg.LexiconPaths, Entities: cfg.Entities}, nil
}

func parseTransferOptions(c *cli.Context) (TransferOptions, error) {
	if c.NArg() != 2 {
		return TransferOptions{}, errors.New("requires a source and a destination path")
	}

	return TransferOptions{From: c.Args().Get(0), To: c.Args().Get(1)}, nil
}
