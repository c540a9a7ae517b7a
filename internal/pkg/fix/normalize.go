package fix

import (
	"golang.org/x/text/unicode/norm"
)

/**
 * Normalizes a token to NFC.
 * Decomposed letters such as и followed by a combining breve
 * become the precomposed й the phone table is keyed on.
 */
func Token(tok string) string {
	return norm.NFC.String(tok)
}
