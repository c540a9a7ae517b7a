package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/config"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/graph"
	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/lexicon"
)

type recordingTx struct {
	words []interface{}
	fail  bool
}

func (tx *recordingTx) Run(cypher string, params map[string]interface{}) (neo4j.Result, error) {
	if tx.fail {
		return nil, errors.New("boom")
	}
	if w, ok := params["word"]; ok {
		tx.words = append(tx.words, w)
	}
	return nil, nil
}

func (tx *recordingTx) Commit() error {
	return nil
}

func (tx *recordingTx) Rollback() error {
	return nil
}

func (tx *recordingTx) Close() error {
	return nil
}

type recordingSession struct {
	tx *recordingTx
}

func (s *recordingSession) WriteTransaction(work neo4j.TransactionWork, configurers ...func(*neo4j.TransactionConfig)) (interface{}, error) {
	return work(s.tx)
}

var _ graph.Writer = &recordingSession{}

func corpusConfig(t *testing.T, text string) config.Config {
	cfg := config.Default()
	cfg.Corpus = filepath.Join(t.TempDir(), "clean.txt")
	require.NoError(t, os.WriteFile(cfg.Corpus, []byte(text), 0o644))
	return cfg
}

func TestReadLexicon(t *testing.T) {
	entries, err := readLexicon(corpusConfig(t, "<s> ка ка б </s>\n"))
	require.NoError(t, err)
	assert.Equal(t, []lexicon.Entry{
		{Word: "<SIL>", Phones: "SIL"},
		{Word: "<unk>", Phones: "SPOKEN_NOISE"},
		{Word: "ка", Phones: "kh a"},
		{Word: "б", Phones: "b"},
	}, entries)
}

func TestReadLexiconMissingCorpus(t *testing.T) {
	cfg := config.Default()
	cfg.Corpus = filepath.Join(t.TempDir(), "missing.txt")
	_, err := readLexicon(cfg)
	assert.Error(t, err)
}

func TestStoreLexicon(t *testing.T) {
	entries, err := readLexicon(corpusConfig(t, "<s> ка </s>\n"))
	require.NoError(t, err)

	session := &recordingSession{tx: &recordingTx{}}
	require.NoError(t, storeLexicon(session, entries, false))
	assert.Equal(t, []interface{}{"<SIL>", "<unk>", "ка"}, session.tx.words)
}

func TestStoreLexiconError(t *testing.T) {
	session := &recordingSession{tx: &recordingTx{fail: true}}
	err := storeLexicon(session, []lexicon.Entry{{Word: "а", Phones: "a"}}, false)
	assert.Error(t, err)
}
