package main

import (
	"github.com/urfave/cli/v2"

	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/config"
)

// lexiconFlags binds the pipeline settings of cfg to command line flags.
// The current values of cfg are the flag defaults.
func lexiconFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "corpus",
			Aliases:     []string{"i"},
			Value:       cfg.Corpus,
			Usage:       "Read the cleaned corpus from `file`",
			Destination: &cfg.Corpus,
		},
		&cli.StringFlag{
			Name:        "lexicon",
			Value:       cfg.Lexicon,
			Usage:       "Append the lexicon to `file`",
			Destination: &cfg.Lexicon,
		},
		&cli.StringFlag{
			Name:        "lexicon-nosil",
			Value:       cfg.LexiconNoSil,
			Usage:       "Append the lexicon without silence words to `file`",
			Destination: &cfg.LexiconNoSil,
		},
		&cli.StringFlag{
			Name:        "phones",
			Value:       cfg.Phones,
			Usage:       "Append the phone list to `file`",
			Destination: &cfg.Phones,
		},
		&cli.StringFlag{
			Name:        "silence-word",
			Usage:       "Lexicon word for silence",
			Value:       cfg.SilenceWord,
			Destination: &cfg.SilenceWord,
		},
		&cli.StringFlag{
			Name:        "silence-phone",
			Usage:       "Phone of the silence word",
			Value:       cfg.SilencePhone,
			Destination: &cfg.SilencePhone,
		},
		&cli.StringFlag{
			Name:        "unknown-word",
			Usage:       "Lexicon word for unknown words",
			Value:       cfg.UnknownWord,
			Destination: &cfg.UnknownWord,
		},
		&cli.StringFlag{
			Name:        "unknown-phone",
			Usage:       "Phone of the unknown word",
			Value:       cfg.UnknownPhone,
			Destination: &cfg.UnknownPhone,
		},
		&cli.BoolFlag{
			Name:        "grapheme",
			Aliases:     []string{"g"},
			Value:       cfg.GraphemeMode,
			Usage:       "Use the phone table only, without the velar rules",
			Destination: &cfg.GraphemeMode,
		},
		&cli.BoolFlag{
			Name:        "stress",
			Aliases:     []string{"s"},
			Value:       cfg.StressMode,
			Usage:       "Mark the last vowel of every word as stressed",
			Destination: &cfg.StressMode,
		},
		&cli.StringFlag{
			Name:        "stress-marker",
			Value:       cfg.StressMarker,
			Usage:       "Suffix added to stressed vowels",
			Destination: &cfg.StressMarker,
		},
	}
}
