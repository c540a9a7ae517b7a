package g2p

import (
	"strings"
)

// PhoneTable maps a single Cyrillic grapheme to its phones.
// An empty value means the grapheme is elided.
type PhoneTable struct {
	phones map[rune]string
}

// NewPhoneTable copies m so the table cannot be changed after construction.
func NewPhoneTable(m map[rune]string) PhoneTable {
	phones := make(map[rune]string, len(m))
	for g, p := range m {
		phones[g] = p
	}
	return PhoneTable{phones}
}

// DefaultPhoneTable is the Kyrgyz table used by the lexicon tools.
func DefaultPhoneTable() PhoneTable {
	return NewPhoneTable(map[rune]string{
		'а': "a",
		'б': "b",
		'в': "v",
		'г': "g",
		'д': "d",
		'е': "e",
		'ё': "j o",
		'ж': "zh",
		'з': "z",
		'и': "i",
		'й': "j",
		'к': "k",
		'л': "l",
		'м': "m",
		'н': "n",
		'ң': "ng",
		'о': "o",
		'ө': "oe",
		'п': "p",
		'р': "r",
		'с': "s",
		'т': "t",
		'у': "u",
		'ү': "ue",
		'ф': "f",
		'х': "h",
		'ц': "ts",
		'ч': "ch",
		'ш': "sh",
		'щ': "shch",
		'ъ': "",
		'ы': "y",
		'ь': "",
		'э': "e",
		'ю': "j u",
		'я': "j a",
	})
}

// Lookup returns the phones for g and whether g is in the table.
func (t PhoneTable) Lookup(g rune) (string, bool) {
	p, ok := t.phones[g]
	return p, ok
}

// Map returns a copy of the table contents.
func (t PhoneTable) Map() map[rune]string {
	return NewPhoneTable(t.phones).phones
}

// Render replaces every grapheme found in the table with its phones
// followed by a space. Anything else is copied through as is.
func (t PhoneTable) Render(s string) string {
	var out strings.Builder
	for _, r := range s {
		p, ok := t.phones[r]
		switch {
		case !ok:
			out.WriteRune(r)
		case p == "":
			// elided
		default:
			out.WriteString(p)
			out.WriteByte(' ')
		}
	}
	return out.String()
}
