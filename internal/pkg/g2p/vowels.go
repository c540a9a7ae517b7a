package g2p

import (
	"sort"
)

// VowelClass is the phonological class of a vowel grapheme.
type VowelClass int

const (
	Back VowelClass = iota
	Front
)

func (c VowelClass) String() string {
	if c == Front {
		return "front"
	}
	return "back"
}

// Vowels classifies source graphemes and produced phones.
type Vowels struct {
	back       map[rune]bool
	front      map[rune]bool
	consonants map[rune]bool
	phones     map[string]bool
}

// NewVowels builds a classifier. back and front must be disjoint.
func NewVowels(back, front, consonants string, phones []string) *Vowels {
	v := &Vowels{
		back:       runeSet(back),
		front:      runeSet(front),
		consonants: runeSet(consonants),
		phones:     make(map[string]bool, len(phones)),
	}
	for _, p := range phones {
		v.phones[p] = true
	}
	return v
}

// DefaultVowels returns the Kyrgyz vowel classes. The iotated glides
// ё ю я count as back vowels.
func DefaultVowels() *Vowels {
	return NewVowels(
		"аоуыёюя",
		"еэиөү",
		"пбдткгхшщжзсцчйлмнңфвръь",
		[]string{"a", "e", "i", "o", "oe", "u", "ue", "y"},
	)
}

// Class reports the class of g, or false if g is not a vowel.
func (v *Vowels) Class(g rune) (VowelClass, bool) {
	switch {
	case v.back[g]:
		return Back, true
	case v.front[g]:
		return Front, true
	}
	return Back, false
}

func (v *Vowels) Is(g rune, c VowelClass) bool {
	got, ok := v.Class(g)
	return ok && got == c
}

func (v *Vowels) IsConsonant(g rune) bool {
	return v.consonants[g]
}

// IsVowelPhone reports whether p is a produced vowel phone.
func (v *Vowels) IsVowelPhone(p string) bool {
	return v.phones[p]
}

// Sets returns the members of each set, sorted.
func (v *Vowels) Sets() (back, front, consonants []string, phones []string) {
	return keys(v.back), keys(v.front), keys(v.consonants), phoneKeys(v.phones)
}

func runeSet(s string) map[rune]bool {
	m := make(map[rune]bool)
	for _, r := range s {
		m[r] = true
	}
	return m
}

func keys(m map[rune]bool) []string {
	out := make([]string, 0, len(m))
	for r := range m {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}

func phoneKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
