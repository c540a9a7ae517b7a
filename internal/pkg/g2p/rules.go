package g2p

import (
	"strings"
)

// Position is where a velar sits relative to its conditioning vowel.
type Position int

const (
	// Onset: velar followed by a vowel.
	Onset Position = iota
	// Coda: vowel, velar, consonant.
	Coda
	// Final: vowel then velar at the end of the token.
	Final
)

func (p Position) String() string {
	switch p {
	case Coda:
		return "coda"
	case Final:
		return "final"
	}
	return "onset"
}

/*
ContextRule replaces Trigger with Replacement when the conditioning vowel
is of class Class and the velar is in Position. For Onset the conditioning
vowel follows the trigger, for Coda and Final it precedes it.
*/
type ContextRule struct {
	Trigger     rune
	Class       VowelClass
	Position    Position
	Replacement string
}

// DefaultRules returns the velar rules in application order.
func DefaultRules() []ContextRule {
	var rules []ContextRule
	for _, pos := range []Position{Onset, Coda, Final} {
		rules = append(rules,
			ContextRule{'к', Back, pos, "kh"},
			ContextRule{'к', Front, pos, "k"},
			ContextRule{'г', Back, pos, "gh"},
			ContextRule{'г', Front, pos, "g"},
		)
	}
	return rules
}

// Apply substitutes every non-overlapping match of the rule in s, scanning
// left to right. The replacement is followed by a space so it reads as a
// separate phone once the table has been applied to its neighbours.
func (r ContextRule) Apply(s string, v *Vowels) string {
	in := []rune(s)
	var out strings.Builder
	for i := 0; i < len(in); {
		switch n := r.match(in, i, v); {
		case n == 0:
			out.WriteRune(in[i])
			i++
		case r.Position == Onset:
			out.WriteString(r.Replacement)
			out.WriteByte(' ')
			out.WriteRune(in[i+1])
			i += n
		case r.Position == Coda:
			out.WriteRune(in[i])
			out.WriteString(r.Replacement)
			out.WriteByte(' ')
			out.WriteRune(in[i+2])
			i += n
		default:
			out.WriteRune(in[i])
			out.WriteString(r.Replacement)
			out.WriteByte(' ')
			i += n
		}
	}
	return out.String()
}

// match returns the length of the match starting at in[i], or 0.
func (r ContextRule) match(in []rune, i int, v *Vowels) int {
	rest := len(in) - i
	switch r.Position {
	case Onset:
		if rest >= 2 && in[i] == r.Trigger && v.Is(in[i+1], r.Class) {
			return 2
		}
	case Coda:
		if rest >= 3 && v.Is(in[i], r.Class) && in[i+1] == r.Trigger && v.IsConsonant(in[i+2]) {
			return 3
		}
	case Final:
		if rest == 2 && v.Is(in[i], r.Class) && in[i+1] == r.Trigger {
			return 2
		}
	}
	return 0
}
