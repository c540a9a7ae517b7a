/*
Generate a Kaldi pronunciation lexicon from a cleaned Kyrgyz corpus.

Usage:
> g2p-lexicon --corpus clean.txt
> g2p-lexicon --stress --lexicon lexicon.txt --phones phones.txt

Writes three files, all opened for appending:
lexicon.txt		every word and its phones
lexicon_nosil.txt	the same without the silence and unknown words
phones.txt		every phone used by lexicon.txt, once

Defaults may be set in a .env file in the working directory
(G2P_CORPUS, G2P_LEXICON, G2P_STRESS_MODE, ...).

Example:

	<SIL> SIL
	<unk> SPOKEN_NOISE
	кагаз kh a gh a z
*/
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/config"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/corpus"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/g2p"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/lexicon"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/profile"
)

// openSinks opens every path for appending. If one fails, the files this
// call created are removed again so a failed start leaves no new files.
func openSinks(paths ...string) ([]*os.File, error) {
	var sinks []*os.File
	var created []string
	for _, path := range paths {
		path = filepath.Clean(path)
		_, statErr := os.Stat(path)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			for _, s := range sinks {
				s.Close()
			}
			for _, c := range created {
				os.Remove(c)
			}
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		if os.IsNotExist(statErr) {
			created = append(created, path)
		}
		sinks = append(sinks, f)
	}
	return sinks, nil
}

func genLexicon(cfg config.Config, flagStats bool) (err error) {
	// Everything is opened before the corpus is read.
	src, err := corpus.Open(cfg.Corpus)
	if err != nil {
		return err
	}
	defer src.Close()

	sinks, err := openSinks(cfg.Lexicon, cfg.LexiconNoSil, cfg.Phones)
	if err != nil {
		return err
	}
	defer func() {
		for _, f := range sinks {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}()

	sp := cfg.Specials()
	d, err := lexicon.Build(src, g2p.New(cfg.Options()), sp)
	if err != nil {
		return err
	}
	stats, err := lexicon.Emit(d, sp, lexicon.Sinks{
		Lexicon: sinks[0],
		NoSil:   sinks[1],
		Phones:  sinks[2],
	})
	if err != nil {
		return err
	}

	if flagStats {
		fmt.Fprintln(os.Stderr, "Entries:", stats.Entries,
			stats.NoSilEntries, "Phones:", stats.Phones)
	}
	return nil
}

func newApp(cfg *config.Config) *cli.App {
	var flagStats bool

	app := &cli.App{
		Name:      "G2P Lexicon Generator",
		Usage:     "Generates lexicon.txt, lexicon_nosil.txt and phones.txt from a cleaned corpus.",
		UsageText: "g2p-lexicon [--stress] [--grapheme] --corpus clean.txt",
		Version:   "v1.0.0",
		Flags: append(lexiconFlags(cfg),
			&cli.BoolFlag{
				Name:        "stats",
				Usage:       "Output statistics",
				Destination: &flagStats,
			},
		),
		Action: func(c *cli.Context) error {
			return genLexicon(*cfg, flagStats)
		},
	}
	p := &profile.Profiler{}
	p.Attach(app)
	return app
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("Could not load .env: ", err)
	}
	if err := newApp(&cfg).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
