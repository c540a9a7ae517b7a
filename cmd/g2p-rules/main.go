/*
Dump the phone table, the velar rules and the vowel classes as JSON.

Usage:
> g2p-rules > rules.json

Example:

	{
	  "table": {"а": "a", "ъ": ""},
	  "rules": [{"trigger": "к", "class": "back", "position": "onset", "replacement": "kh"}],
	  "vowels": {"back": ["а"], "front": ["е"], "consonants": ["б"], "phones": ["a"]}
	}
*/
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/g2p"
)

type Rule struct {
	Trigger     string `json:"trigger"`
	Class       string `json:"class"`
	Position    string `json:"position"`
	Replacement string `json:"replacement"`
}

type Vowels struct {
	Back       []string `json:"back"`
	Front      []string `json:"front"`
	Consonants []string `json:"consonants"`
	Phones     []string `json:"phones"`
}

// RuleDump is everything the engine uses to pronounce a token.
type RuleDump struct {
	Table  map[string]string `json:"table"`
	Rules  []Rule            `json:"rules"`
	Vowels Vowels            `json:"vowels"`
}

func dump(e *g2p.Engine) RuleDump {
	var d RuleDump
	d.Table = make(map[string]string)
	for g, p := range e.Table().Map() {
		d.Table[string(g)] = p
	}
	for _, r := range e.Rules() {
		d.Rules = append(d.Rules, Rule{
			string(r.Trigger), r.Class.String(), r.Position.String(), r.Replacement,
		})
	}
	v := &d.Vowels
	v.Back, v.Front, v.Consonants, v.Phones = e.Vowels().Sets()
	return d
}

func main() {
	app := &cli.App{
		Name:      "G2P Rule Dump",
		Usage:     "Writes the phone table and context rules as JSON.",
		UsageText: "g2p-rules > rules.json",
		Version:   "v1.0.0",
		Action: func(c *cli.Context) error {
			b, err := json.Marshal(dump(g2p.New(g2p.Options{})))
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(b)
			return err
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
