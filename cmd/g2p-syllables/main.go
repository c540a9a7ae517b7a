/*
Split every word of a cleaned corpus into syllables.

Usage:
> g2p-syllables clean.txt > syllables.txt

Each word is printed on its own line with "@ @" between syllables:

	ка@ @газ
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/corpus"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/syllable"
)

func splitCorpus(src *corpus.Reader, w io.Writer) error {
	out := bufio.NewWriter(w)
	for src.Scan() {
		if _, err := fmt.Fprintln(out, syllable.Split(src.Token())); err != nil {
			return err
		}
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("reading corpus: %w", err)
	}
	return out.Flush()
}

func main() {
	app := &cli.App{
		Name:      "Syllable Splitter",
		Usage:     "Prints every word of a corpus split into syllables.",
		UsageText: "g2p-syllables clean.txt > syllables.txt",
		Version:   "v1.0.0",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				path = "clean.txt"
			}
			src, err := corpus.Open(path)
			if err != nil {
				return err
			}
			defer src.Close()
			return splitCorpus(src, os.Stdout)
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
