package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/corpus"
)

func TestSplitCorpus(t *testing.T) {
	var out bytes.Buffer
	src := corpus.NewReader(strings.NewReader("кагаз мектеп\nай\n"))
	require.NoError(t, splitCorpus(src, &out))
	assert.Equal(t, "ка@ @газ\nмек@ @теп\nай\n", out.String())
}
