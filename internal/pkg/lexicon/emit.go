package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Sinks are the three output files. They are expected to be opened for
// appending; Emit never truncates, so emitting twice into the same sinks
// duplicates every line.
type Sinks struct {
	Lexicon io.Writer
	NoSil   io.Writer
	Phones  io.Writer
}

type Stats struct {
	Entries      int
	NoSilEntries int
	Phones       int
}

// PhoneSet collects phones in first occurrence order without duplicates.
type PhoneSet struct {
	seen   map[string]bool
	phones []string
}

func NewPhoneSet() *PhoneSet {
	return &PhoneSet{seen: make(map[string]bool)}
}

// Add pushes every whitespace separated phone of s that is not yet known.
func (ps *PhoneSet) Add(s string) {
	for _, p := range strings.Fields(s) {
		if !ps.seen[p] {
			ps.seen[p] = true
			ps.phones = append(ps.phones, p)
		}
	}
}

func (ps *PhoneSet) Phones() []string {
	return append([]string(nil), ps.phones...)
}

// Visible returns the entries that are written to the full lexicon.
func Visible(d *Dictionary, sp Specials) []Entry {
	var out []Entry
	for _, e := range d.entries {
		if !sp.IsBoundary(e.Word) {
			out = append(out, e)
		}
	}
	return out
}

// Emit writes the full lexicon, the lexicon without silence words and the
// phone inventory derived from the full lexicon.
func Emit(d *Dictionary, sp Specials, sinks Sinks) (Stats, error) {
	var stats Stats
	lex := bufio.NewWriter(sinks.Lexicon)
	nosil := bufio.NewWriter(sinks.NoSil)
	phones := NewPhoneSet()

	for _, e := range Visible(d, sp) {
		if _, err := fmt.Fprintf(lex, "%s %s\n", e.Word, e.Phones); err != nil {
			return stats, fmt.Errorf("writing lexicon: %w", err)
		}
		stats.Entries++
		phones.Add(e.Phones)
		if sp.IsSilence(e.Word) {
			continue
		}
		if _, err := fmt.Fprintf(nosil, "%s %s\n", e.Word, e.Phones); err != nil {
			return stats, fmt.Errorf("writing lexicon without silence: %w", err)
		}
		stats.NoSilEntries++
	}
	if err := lex.Flush(); err != nil {
		return stats, fmt.Errorf("writing lexicon: %w", err)
	}
	if err := nosil.Flush(); err != nil {
		return stats, fmt.Errorf("writing lexicon without silence: %w", err)
	}

	ph := bufio.NewWriter(sinks.Phones)
	for _, p := range phones.Phones() {
		if _, err := fmt.Fprintln(ph, p); err != nil {
			return stats, fmt.Errorf("writing phones: %w", err)
		}
		stats.Phones++
	}
	if err := ph.Flush(); err != nil {
		return stats, fmt.Errorf("writing phones: %w", err)
	}
	return stats, nil
}
