/*
Package g2p turns a single Kyrgyz token into a space separated phone string.

A token is first rewritten by the ordered velar rules (unless grapheme mode
is on), then every remaining Cyrillic grapheme is looked up in the phone
table. With stress mode on, the rightmost vowel phone gets the stress
marker.

	e := g2p.New(g2p.Options{})
	e.Pronounce("кагаз") // "kh a gh a z"
*/
package g2p

import (
	"strings"

	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/fix"
)

// DefaultStressMarker is appended to the stressed vowel phone.
const DefaultStressMarker = "1"

// Options are the mode flags of the engine.
type Options struct {
	// GraphemeMode skips the context rules.
	GraphemeMode bool
	// StressMode marks the last vowel phone of every token.
	StressMode   bool
	StressMarker string
}

// Engine is immutable once built and safe to share.
type Engine struct {
	table  PhoneTable
	rules  []ContextRule
	vowels *Vowels
	opts   Options
}

// New returns an engine using the default Kyrgyz tables.
func New(opts Options) *Engine {
	return NewEngine(DefaultPhoneTable(), DefaultRules(), DefaultVowels(), opts)
}

func NewEngine(table PhoneTable, rules []ContextRule, vowels *Vowels, opts Options) *Engine {
	if opts.StressMarker == "" {
		opts.StressMarker = DefaultStressMarker
	}
	return &Engine{
		table:  table,
		rules:  append([]ContextRule(nil), rules...),
		vowels: vowels,
		opts:   opts,
	}
}

// Pronounce returns the phone string of token. The result only depends on
// token and the engine configuration. Decomposed letters are composed
// before lookup, so и with a combining breve reads as й.
func (e *Engine) Pronounce(token string) string {
	s := fix.Token(token)
	if !e.opts.GraphemeMode {
		for _, r := range e.rules {
			s = r.Apply(s, e.vowels)
		}
	}
	s = strings.TrimSpace(e.table.Render(s))
	if e.opts.StressMode {
		s = e.stress(s)
	}
	return s
}

// stress marks the rightmost vowel phone.
func (e *Engine) stress(s string) string {
	phones := strings.Split(s, " ")
	for i := len(phones) - 1; i >= 0; i-- {
		if e.vowels.IsVowelPhone(phones[i]) {
			phones[i] += e.opts.StressMarker
			return strings.Join(phones, " ")
		}
	}
	return s
}

func (e *Engine) Table() PhoneTable {
	return e.table
}

func (e *Engine) Rules() []ContextRule {
	return append([]ContextRule(nil), e.rules...)
}

func (e *Engine) Vowels() *Vowels {
	return e.vowels
}

func (e *Engine) Options() Options {
	return e.opts
}
