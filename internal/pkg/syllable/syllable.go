// Package syllable splits Kyrgyz words at syllable boundaries.
package syllable

// Boundary is inserted between two syllables.
const Boundary = "@ @"

type class int

const (
	other class = iota
	vowel
	glide
	consonant
)

var classes = func() map[rune][]class {
	m := make(map[rune][]class)
	for _, r := range "пбдткгхшщжзсцчйлмнңфвръь" {
		m[r] = append(m[r], consonant)
	}
	for _, r := range "иэөүаоуые" {
		m[r] = append(m[r], vowel)
	}
	// е is both a vowel and a glide
	for _, r := range "ёяюе" {
		m[r] = append(m[r], glide)
	}
	return m
}()

func is(r rune, cs ...class) bool {
	for _, have := range classes[r] {
		for _, want := range cs {
			if have == want {
				return true
			}
		}
	}
	return false
}

// pass describes a window of classes and where the boundary goes in it.
type pass struct {
	window [][]class
	cut    int
}

var nucleus = []class{vowel, glide}

// Applied in order: VCV, VCCV, VCCC, VG.
var passes = []pass{
	{[][]class{nucleus, {consonant}, {vowel}}, 1},
	{[][]class{nucleus, {consonant}, {consonant}, {vowel}}, 2},
	{[][]class{nucleus, {consonant}, {consonant}, {consonant}}, 3},
	{[][]class{nucleus, {glide}}, 1},
}

func (p pass) matches(w []rune) bool {
	for i, cs := range p.window {
		if !is(w[i], cs...) {
			return false
		}
	}
	return true
}

// apply slides the window over word, inserting a boundary after every
// match and skipping the inserted text.
func (p pass) apply(word []rune) []rune {
	boundary := []rune(Boundary)
	size := len(p.window)
	for i := 0; i+size <= len(word); {
		if !p.matches(word[i : i+size]) {
			i++
			continue
		}
		at := i + p.cut
		out := make([]rune, 0, len(word)+len(boundary))
		out = append(out, word[:at]...)
		out = append(out, boundary...)
		word = append(out, word[at:]...)
		i += len(boundary)
	}
	return word
}

// Split returns word with Boundary between its syllables.
func Split(word string) string {
	w := []rune(word)
	for _, p := range passes {
		w = p.apply(w)
	}
	return string(w)
}
