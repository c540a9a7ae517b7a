/*
Package lexicon builds a pronunciation lexicon from a token stream and
writes it out in Kaldi's lexicon.txt layout.

Usage:

	d, err := lexicon.Build(reader, g2p.New(opts), specials)
	stats, err := lexicon.Emit(d, specials, lexicon.Sinks{...})
*/
package lexicon

import (
	"fmt"
)

// Tokens is a forward only stream of corpus tokens.
type Tokens interface {
	Scan() bool
	Token() string
	Err() error
}

// Pronouncer produces the phone string of a token.
type Pronouncer interface {
	Pronounce(token string) string
}

// Specials are the reserved words of a lexicon.
type Specials struct {
	SilenceWord  string
	SilencePhone string
	UnknownWord  string
	UnknownPhone string
	// Boundaries are never written out.
	Boundaries []string
}

// DefaultSpecials matches the usual Kaldi recipe names.
func DefaultSpecials() Specials {
	return Specials{
		SilenceWord:  "<SIL>",
		SilencePhone: "SIL",
		UnknownWord:  "<unk>",
		UnknownPhone: "SPOKEN_NOISE",
		Boundaries:   []string{"<s>", "</s>"},
	}
}

func (sp Specials) IsBoundary(word string) bool {
	for _, b := range sp.Boundaries {
		if word == b {
			return true
		}
	}
	return false
}

// IsSilence reports whether word is the silence or unknown word.
func (sp Specials) IsSilence(word string) bool {
	return word == sp.SilenceWord || word == sp.UnknownWord
}

// Build reads every token and pronounces each distinct one exactly once.
// The silence and unknown words are seeded first and never pronounced.
func Build(tokens Tokens, p Pronouncer, sp Specials) (*Dictionary, error) {
	d := NewDictionary()
	d.Add(sp.SilenceWord, sp.SilencePhone)
	d.Add(sp.UnknownWord, sp.UnknownPhone)
	for tokens.Scan() {
		token := tokens.Token()
		if d.Has(token) {
			continue
		}
		d.Add(token, p.Pronounce(token))
	}
	if err := tokens.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return d, nil
}
