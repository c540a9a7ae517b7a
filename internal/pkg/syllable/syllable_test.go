package syllable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		word     string
		expected string
	}{
		{"кагаз", "ка@ @газ"},
		{"мектеп", "мек@ @теп"},
		{"айыл", "а@ @йыл"},
		{"ая", "а@ @я"},
		{"ай", "ай"},
		{"", ""},
		{"<s>", "<s>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Split(tt.word), "word %q", tt.word)
	}
}
