/*
Build the lexicon of a cleaned corpus and merge it into Neo4j.

Usage:
> g2p-lexicon-neo4j --corpus clean.txt

The connection is read from .env:

	NEO4J_URI=neo4j://localhost:7687
	NEO4J_USER=neo4j
	NEO4J_PASSWORD=...
*/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
	"github.com/urfave/cli/v2"

	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/config"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/corpus"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/g2p"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/graph"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/lexicon"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/profile"
)

func main() {
	var flagStats bool

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("Could not load .env: ", err)
	}

	app := &cli.App{
		Name:      "G2P Lexicon for Neo4j",
		Usage:     "Populates a neo4j database with the words and phones of a corpus.",
		UsageText: "g2p-lexicon-neo4j --corpus clean.txt",
		Version:   "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "corpus",
				Aliases:     []string{"i"},
				Value:       cfg.Corpus,
				Usage:       "Read the cleaned corpus from `file`",
				Destination: &cfg.Corpus,
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
			&cli.BoolFlag{
				Name:        "stats",
				Usage:       "Output statistics",
				Destination: &flagStats,
			},
		},
		Action: func(c *cli.Context) error {
			return addLexicon(cfg, flagStats)
		},
	}
	p := &profile.Profiler{}
	p.Attach(app)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// readLexicon builds the lexicon of the corpus and returns the entries
// that g2p-lexicon would write to lexicon.txt.
func readLexicon(cfg config.Config) ([]lexicon.Entry, error) {
	src, err := corpus.Open(cfg.Corpus)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	sp := cfg.Specials()
	d, err := lexicon.Build(src, g2p.New(cfg.Options()), sp)
	if err != nil {
		return nil, err
	}
	return lexicon.Visible(d, sp), nil
}

func storeLexicon(session graph.Writer, entries []lexicon.Entry, flagStats bool) error {
	n, err := graph.Store(session, entries)
	if err != nil {
		return fmt.Errorf("storing lexicon: %w", err)
	}
	if flagStats {
		fmt.Fprintln(os.Stderr, "Words:", n)
	}
	return nil
}

func addLexicon(cfg config.Config, flagStats bool) error {
	entries, err := readLexicon(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Connecting to %q as %q.\n", cfg.Neo4J.Uri, cfg.Neo4J.User)
	driver, err := neo4j.NewDriver(cfg.Neo4J.Uri, neo4j.BasicAuth(cfg.Neo4J.User, cfg.Neo4J.Pass, ""))
	if err != nil {
		return fmt.Errorf("could not open database %s: %w", cfg.Neo4J.Uri, err)
	}
	defer driver.Close()

	session := driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	return storeLexicon(session, entries, flagStats)
}
