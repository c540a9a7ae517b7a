// Package config holds the settings shared by the lexicon tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golobby/dotenv"

	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/g2p"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/lexicon"
)

// Config is read from a .env file and then overridden by flags.
type Config struct {
	Corpus       string `env:"G2P_CORPUS"`
	Lexicon      string `env:"G2P_LEXICON"`
	LexiconNoSil string `env:"G2P_LEXICON_NOSIL"`
	Phones       string `env:"G2P_PHONES"`

	SilenceWord  string `env:"G2P_SILENCE_WORD"`
	SilencePhone string `env:"G2P_SILENCE_PHONE"`
	UnknownWord  string `env:"G2P_UNKNOWN_WORD"`
	UnknownPhone string `env:"G2P_UNKNOWN_PHONE"`

	GraphemeMode bool   `env:"G2P_GRAPHEME_MODE"`
	StressMode   bool   `env:"G2P_STRESS_MODE"`
	StressMarker string `env:"G2P_STRESS_MARKER"`

	Neo4J struct {
		Uri  string `env:"NEO4J_URI"`
		User string `env:"NEO4J_USER"`
		Pass string `env:"NEO4J_PASSWORD"`
	}
}

// Default returns the stock file names and special words.
func Default() Config {
	sp := lexicon.DefaultSpecials()
	c := Config{
		Corpus:       "clean.txt",
		Lexicon:      "lexicon.txt",
		LexiconNoSil: "lexicon_nosil.txt",
		Phones:       "phones.txt",
		SilenceWord:  sp.SilenceWord,
		SilencePhone: sp.SilencePhone,
		UnknownWord:  sp.UnknownWord,
		UnknownPhone: sp.UnknownPhone,
		StressMarker: g2p.DefaultStressMarker,
	}
	c.Neo4J.Uri = "neo4j://localhost:7687"
	c.Neo4J.User = "neo4j"
	return c
}

// Load decodes the .env file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	file, err := os.Open(filepath.Clean(path))
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()

	if err := dotenv.NewDecoder(file).Decode(&c); err != nil {
		return c, fmt.Errorf("could not decode %s: %w", path, err)
	}
	c.fillDefaults(Default())
	return c, nil
}

// fillDefaults restores defaults for keys set to an empty value.
func (c *Config) fillDefaults(d Config) {
	fields := []struct {
		v   *string
		def string
	}{
		{&c.Corpus, d.Corpus},
		{&c.Lexicon, d.Lexicon},
		{&c.LexiconNoSil, d.LexiconNoSil},
		{&c.Phones, d.Phones},
		{&c.SilenceWord, d.SilenceWord},
		{&c.SilencePhone, d.SilencePhone},
		{&c.UnknownWord, d.UnknownWord},
		{&c.UnknownPhone, d.UnknownPhone},
		{&c.StressMarker, d.StressMarker},
		{&c.Neo4J.Uri, d.Neo4J.Uri},
		{&c.Neo4J.User, d.Neo4J.User},
	}
	for _, f := range fields {
		if *f.v == "" {
			*f.v = f.def
		}
	}
}

func (c Config) Options() g2p.Options {
	return g2p.Options{
		GraphemeMode: c.GraphemeMode,
		StressMode:   c.StressMode,
		StressMarker: c.StressMarker,
	}
}

func (c Config) Specials() lexicon.Specials {
	sp := lexicon.DefaultSpecials()
	sp.SilenceWord = c.SilenceWord
	sp.SilencePhone = c.SilencePhone
	sp.UnknownWord = c.UnknownWord
	sp.UnknownPhone = c.UnknownPhone
	return sp
}
